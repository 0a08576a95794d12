package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	City       string `json:"city" example:"Mumbai"`
	State      string `json:"state" example:"Maharashtra"`
	District   string `json:"district" example:"Mumbai Suburban"`
	Country    string `json:"country" example:"India"`
	PostalCode string `json:"postal_code" example:"400050"`
	Locality   string `json:"locality" example:"Bandra West"`
	Source     string `json:"source" example:"live"`
}

// UnknownLocation returns the record used when reverse geocoding fails
func UnknownLocation() LocationInfo {
	return LocationInfo{
		City:     "Unknown",
		State:    "Unknown",
		District: "Unknown",
		Country:  "India",
		Source:   SourceFallback,
	}
}

// DisplayName formats the location as "City, State, Country"
func (l LocationInfo) DisplayName() string {
	return l.City + ", " + l.State + ", " + l.Country
}
