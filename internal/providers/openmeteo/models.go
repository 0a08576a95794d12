package openmeteo

// ElevationAPIResponse holds one elevation in meters per requested coordinate
type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}
