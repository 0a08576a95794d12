package geo

import (
	"testing"

	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestSeismicZone(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      int
	}{
		{name: "Delhi falls in the northern zone V block", latitude: 28.6139, longitude: 77.2090, want: 5},
		{name: "Guwahati", latitude: 26.1445, longitude: 91.7362, want: 5},
		{name: "Bhuj, Kutch", latitude: 23.2420, longitude: 69.6669, want: 5},
		{name: "zone V corner is inclusive", latitude: 24.0, longitude: 74.0, want: 5},
		{name: "Kashmir high latitude", latitude: 35.0, longitude: 76.0, want: 5},
		{name: "Ahmedabad", latitude: 23.0225, longitude: 72.5714, want: 4},
		{name: "Bengaluru", latitude: 12.9716, longitude: 77.5946, want: 4},
		{name: "Kochi", latitude: 9.9312, longitude: 76.2673, want: 4},
		{name: "Hyderabad", latitude: 17.3850, longitude: 78.4867, want: 3},
		{name: "Nagpur matches zone III before zone II", latitude: 21.1458, longitude: 79.0882, want: 3},
		{name: "Madurai", latitude: 9.9252, longitude: 78.1198, want: 2},
		{name: "Mumbai uses the default", latitude: 19.0760, longitude: 72.8777, want: DefaultSeismicZone},
		{name: "Chennai uses the default", latitude: 13.0827, longitude: 80.2707, want: DefaultSeismicZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeismicZone(tt.latitude, tt.longitude)
			if got != tt.want {
				t.Errorf("SeismicZone(%v, %v) = %d, want %d", tt.latitude, tt.longitude, got, tt.want)
			}
		})
	}
}

func TestSeismicZone_AlwaysInRange(t *testing.T) {
	for lat := types.MinLatitude; lat <= types.MaxLatitude; lat += 0.5 {
		for lon := types.MinLongitude; lon <= types.MaxLongitude; lon += 0.5 {
			zone := SeismicZone(lat, lon)
			if zone < 1 || zone > 5 {
				t.Fatalf("SeismicZone(%v, %v) = %d, want 1..5", lat, lon, zone)
			}
		}
	}
}

func TestClimateZoneAt(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      types.ClimateZone
	}{
		{name: "Mumbai, Western Ghats", latitude: 19.0760, longitude: 72.8777, want: types.ClimateTropicalWet},
		{name: "Kolkata, northeast block", latitude: 22.5726, longitude: 88.3639, want: types.ClimateTropicalWet},
		{name: "Chennai", latitude: 13.0827, longitude: 80.2707, want: types.ClimateTropicalWetDry},
		{name: "Jaisalmer", latitude: 26.9157, longitude: 70.9083, want: types.ClimateHotSemiArid},
		{name: "western Thar", latitude: 27.0, longitude: 69.5, want: types.ClimateHotArid},
		{name: "Delhi", latitude: 28.6139, longitude: 77.2090, want: types.ClimateHumidSubtropical},
		{name: "Leh", latitude: 34.1526, longitude: 77.5771, want: types.ClimateAlpine},
		{name: "north-west hills", latitude: 31.0, longitude: 74.0, want: types.ClimateMontane},
		{name: "Gulf of Kutch coast", latitude: 23.0, longitude: 69.0, want: types.ClimateTropicalCoastal},
		{name: "Port Blair", latitude: 11.6234, longitude: 92.7265, want: types.ClimateIslandTropical},
		{name: "uncovered south-east corner", latitude: 6.5, longitude: 80.0, want: types.ClimateSubtropical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClimateZoneAt(tt.latitude, tt.longitude)
			if got != tt.want {
				t.Errorf("ClimateZoneAt(%v, %v) = %v, want %v", tt.latitude, tt.longitude, got, tt.want)
			}
		})
	}
}

func TestClassifyTerrain(t *testing.T) {
	tests := []struct {
		elevation float64
		want      types.TerrainClass
	}{
		{elevation: 3500, want: types.TerrainHighMountain},
		{elevation: 2500.1, want: types.TerrainHighMountain},
		{elevation: 2500, want: types.TerrainMountain},
		{elevation: 1000.5, want: types.TerrainMountain},
		{elevation: 1000, want: types.TerrainHill},
		{elevation: 500.5, want: types.TerrainHill},
		{elevation: 500, want: types.TerrainPlateau},
		{elevation: 200, want: types.TerrainPlateau},
		{elevation: 199, want: types.TerrainPlain},
		{elevation: 10, want: types.TerrainPlain},
		{elevation: 9.9, want: types.TerrainCoastalPlain},
		{elevation: -2, want: types.TerrainCoastalPlain},
	}

	for _, tt := range tests {
		got := ClassifyTerrain(tt.elevation)
		assert.Equal(t, tt.want, got, "ClassifyTerrain(%v)", tt.elevation)
	}
}

func TestNearestCoast(t *testing.T) {
	t.Run("on a reference point", func(t *testing.T) {
		point, km := NearestCoast(19.0760, 72.8777)
		assert.Equal(t, "Mumbai", point.Name)
		assert.InDelta(t, 0, km, 0.001)
	})

	t.Run("inland city", func(t *testing.T) {
		point, km := NearestCoast(28.6139, 77.2090)
		assert.Equal(t, "Ahmedabad", point.Name)
		assert.InDelta(t, 775, km, 30)
	})

	t.Run("distance matches helper", func(t *testing.T) {
		_, km := NearestCoast(12.9716, 77.5946)
		assert.Equal(t, km, CoastalDistanceKm(12.9716, 77.5946))
	})
}
