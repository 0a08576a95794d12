package types

// TerrainClass is a coarse terrain category derived from elevation
type TerrainClass string

const (
	TerrainHighMountain TerrainClass = "high_mountain"
	TerrainMountain     TerrainClass = "mountain"
	TerrainHill         TerrainClass = "hill"
	TerrainPlain        TerrainClass = "plain"
	TerrainCoastalPlain TerrainClass = "coastal_plain"
	TerrainPlateau      TerrainClass = "plateau"
)

// Mountainous reports whether the terrain is mountain or high_mountain
func (t TerrainClass) Mountainous() bool {
	return t == TerrainMountain || t == TerrainHighMountain
}

// ClimateZone is a named climate region
type ClimateZone string

const (
	ClimateTropicalWet      ClimateZone = "tropical_wet"
	ClimateTropicalWetDry   ClimateZone = "tropical_wet_dry"
	ClimateHotSemiArid      ClimateZone = "hot_semi_arid"
	ClimateHotArid          ClimateZone = "hot_arid"
	ClimateHumidSubtropical ClimateZone = "humid_subtropical"
	ClimateAlpine           ClimateZone = "alpine"
	ClimateMontane          ClimateZone = "montane"
	ClimateTropicalCoastal  ClimateZone = "tropical_coastal"
	ClimateIslandTropical   ClimateZone = "island_tropical"
	ClimateSubtropical      ClimateZone = "subtropical"
)

// GeographicProfile describes the static geography of a coordinate
type GeographicProfile struct {
	ElevationM        float64      `json:"elevation" example:"14"`
	Terrain           TerrainClass `json:"terrain"`
	SeismicZone       int          `json:"seismic_zone" example:"3"`
	ClimateZone       ClimateZone  `json:"climate_zone"`
	CoastalDistanceKm float64      `json:"coastal_distance_km" example:"2.4"`
	Source            string       `json:"source" example:"live"`
}
