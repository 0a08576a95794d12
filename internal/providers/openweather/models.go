package openweather

// CurrentAPIResponse is the body of /data/2.5/weather with units=metric
type CurrentAPIResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []Condition `json:"weather"`
	Main    Main        `json:"main"`
	Wind    Wind        `json:"wind"`
	Rain    *Rain       `json:"rain,omitempty"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int    `json:"visibility"`
	Dt         int64  `json:"dt"`
	Timezone   int    `json:"timezone"`
	Name       string `json:"name"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

// Rain volume in mm; the one-hour field is absent when it is not raining
type Rain struct {
	OneHour   float64 `json:"1h,omitempty"`
	ThreeHour float64 `json:"3h,omitempty"`
}

// ForecastAPIResponse is the body of /data/2.5/forecast (5 day / 3 hour)
type ForecastAPIResponse struct {
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt"`
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	Rain    *Rain       `json:"rain,omitempty"`
	Pop     float64     `json:"pop"`
}
