package geo

import "github.com/AjayAntoIsDev/SafeRoute/internal/types"

// ClassifyTerrain maps an elevation in meters to a terrain class
func ClassifyTerrain(elevationM float64) types.TerrainClass {
	switch {
	case elevationM > 2500:
		return types.TerrainHighMountain
	case elevationM > 1000:
		return types.TerrainMountain
	case elevationM > 500:
		return types.TerrainHill
	case elevationM < 10:
		return types.TerrainCoastalPlain
	case elevationM < 200:
		return types.TerrainPlain
	default:
		return types.TerrainPlateau
	}
}
