package assessor

import (
	"fmt"
	"strings"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

// SystemPrompt frames the model as a domain expert
const SystemPrompt = "You are an expert in natural disaster prediction and risk assessment for India. " +
	"Provide accurate, actionable insights based on meteorological and geographic data."

var categoryLabels = map[string]string{
	types.CategoryFloods:      "flooding",
	types.CategoryCyclone:     "cyclone",
	types.CategoryEarthquakes: "earthquake",
	types.CategoryDroughts:    "drought",
	types.CategoryLandslides:  "landslide",
	types.CategoryConclusion:  "overall disaster",
}

// Season returns the Indian meteorological season for a month
func Season(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Summer"
	case time.June, time.July, time.August, time.September:
		return "Monsoon"
	default:
		return "Post-Monsoon"
	}
}

// responseSchema describes the six required keys to the model
func responseSchema() string {
	var b strings.Builder
	b.WriteString("{\n")
	categories := types.Categories()
	for i, category := range categories {
		fmt.Fprintf(&b, "  %q: {\n", category)
		fmt.Fprintf(&b, "    \"probability\": <number 0-100, probability of %s>,\n", categoryLabels[category])
		b.WriteString("    \"risk_level\": \"<Low | Medium | High | Critical>\",\n")
		if category == types.CategoryConclusion {
			b.WriteString("    \"primary_threats\": [\"<threat name, e.g. flooding, cyclone>\"],\n")
		}
		b.WriteString("    \"recommendations\": [\"<safety recommendation>\"],\n")
		fmt.Fprintf(&b, "    \"analysis\": \"<detailed analysis of the %s risk>\"\n", categoryLabels[category])
		b.WriteString("  }")
		if i < len(categories)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// BuildPrompt renders the user prompt. now should already be in the
// coordinate's local time zone.
func BuildPrompt(in Input, now time.Time) string {
	w, g, loc := in.Weather, in.Geo, in.Location

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze natural disaster risk for location: %s, %s, %s\n", loc.City, loc.State, loc.Country)
	fmt.Fprintf(&b, "Coordinates: %.4f, %.4f\n\n", in.Coords.Latitude, in.Coords.Longitude)

	b.WriteString("CURRENT DATE AND TIME:\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s (%s)\n", now.Format("15:04:05"), now.Format("MST"))
	fmt.Fprintf(&b, "Season: %s\n\n", Season(now.Month()))

	b.WriteString("WEATHER DATA:\n")
	fmt.Fprintf(&b, "Current Temperature: %.1f°C\n", w.TemperatureC)
	fmt.Fprintf(&b, "Weather: %s\n", orNA(w.Description))
	fmt.Fprintf(&b, "Wind Speed: %.1f m/s\n", w.WindSpeedMps)
	fmt.Fprintf(&b, "Humidity: %.0f%%\n", w.HumidityPct)
	fmt.Fprintf(&b, "Pressure: %.0f hPa\n", w.PressureHpa)
	fmt.Fprintf(&b, "Rainfall: %.1f mm/h\n", w.RainfallMmPerHour)
	if w.Source == types.SourceFallback {
		b.WriteString("Note: live weather was unavailable; these are typical default values.\n")
	}
	b.WriteString("\n")

	b.WriteString("GEOGRAPHIC DATA:\n")
	fmt.Fprintf(&b, "Elevation: %.0f meters\n", g.ElevationM)
	fmt.Fprintf(&b, "Terrain: %s\n", g.Terrain)
	fmt.Fprintf(&b, "Seismic Zone: %d (1-5 scale)\n", g.SeismicZone)
	fmt.Fprintf(&b, "Climate Zone: %s\n", g.ClimateZone)
	fmt.Fprintf(&b, "Distance to nearest coast: %.0f km\n\n", g.CoastalDistanceKm)

	fmt.Fprintf(&b, "LOCATION: %s, %s, %s\n\n", loc.City, loc.District, loc.State)

	b.WriteString("Based on this data, respond with a JSON object of exactly this shape:\n")
	b.WriteString(responseSchema())
	b.WriteString("\n\n")

	b.WriteString("Consider seasonal patterns, regional vulnerabilities, current weather conditions and geographic factors.\n")
	b.WriteString("Focus on realistic threats for India: floods, cyclones, earthquakes, landslides, heat waves, droughts.\n\n")
	b.WriteString("The response must:\n")
	b.WriteString("1. Include ALL six top-level keys and every field shown above\n")
	b.WriteString("2. Use only the exact field names shown\n")
	b.WriteString("3. Use numbers for probability and strings for everything else\n")
	b.WriteString("4. Contain ONLY the JSON object\n\n")
	b.WriteString("IMPORTANT: Do not include any explanatory text, markdown formatting, or code blocks.\n")

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
