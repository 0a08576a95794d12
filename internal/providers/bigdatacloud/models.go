package bigdatacloud

// ReverseGeocodeAPIResponse is the subset of the reverse-geocode-client body we read
type ReverseGeocodeAPIResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	City                 string  `json:"city"`
	Locality             string  `json:"locality"`
	Postcode             string  `json:"postcode"`
	PrincipalSubdivision string  `json:"principalSubdivision"`
	CountryName          string  `json:"countryName"`
	CountryCode          string  `json:"countryCode"`
	LocalityInfo         struct {
		Administrative []AdministrativeArea `json:"administrative"`
	} `json:"localityInfo"`
}

type AdministrativeArea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	AdminLevel  int    `json:"adminLevel"`
}
