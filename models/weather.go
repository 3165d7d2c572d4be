package models

// WeatherSnapshot is one complete forecast.json response. A snapshot is never
// modified after it is decoded; a newer fetch replaces it as a whole.
type WeatherSnapshot struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
	Alerts   Alerts   `json:"alerts"`
}

// Location describes the place the provider matched the query to
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tz_id"`
	LocalTime string  `json:"localtime"` // "2006-01-02 15:04" in the place's own zone
}

// Condition is the provider's textual condition and icon path
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"` // protocol-relative, e.g. //cdn.weatherapi.com/...
	Code int    `json:"code"`
}

// Current holds the current conditions
type Current struct {
	TempC      float64    `json:"temp_c"`
	TempF      float64    `json:"temp_f"`
	Condition  Condition  `json:"condition"`
	WindKph    float64    `json:"wind_kph"`
	WindDegree int        `json:"wind_degree"`
	WindDir    string     `json:"wind_dir"`
	PressureMb float64    `json:"pressure_mb"`
	PrecipMm   float64    `json:"precip_mm"`
	Humidity   int        `json:"humidity"` // percentage
	FeelsLikeC float64    `json:"feelslike_c"`
	UV         float64    `json:"uv"`
	AirQuality AirQuality `json:"air_quality"`
}

// AirQuality is only present when the request asked for aqi=yes
type AirQuality struct {
	GBDefraIndex int     `json:"gb-defra-index"` // 1..10
	USEPAIndex   int     `json:"us-epa-index"`   // 1..6
	PM2_5        float64 `json:"pm2_5"`
	PM10         float64 `json:"pm10"`
	SO2          float64 `json:"so2"`
	NO2          float64 `json:"no2"`
	O3           float64 `json:"o3"`
	CO           float64 `json:"co"`
}

// Alerts wraps the provider's alert list
type Alerts struct {
	Alert []Alert `json:"alert"`
}

// Alert is a single government weather alert
type Alert struct {
	Headline    string `json:"headline"`
	Event       string `json:"event"`
	Description string `json:"desc"`
	Expires     string `json:"expires"`
}
