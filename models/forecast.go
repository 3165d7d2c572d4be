package models

import "encoding/json"

// Forecast holds the per-day forecast in chronological order, starting at the
// query date
type Forecast struct {
	ForecastDays []ForecastDay `json:"forecastday"`
}

// ForecastDay is one calendar day of forecast data
type ForecastDay struct {
	Date  string     `json:"date"` // "2006-01-02"
	Day   DaySummary `json:"day"`
	Astro Astro      `json:"astro"`
	Hours []Hour     `json:"hour"`
}

// DaySummary aggregates a forecast day
type DaySummary struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	Condition         Condition `json:"condition"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"` // percentage
}

// Astro holds sun and moon data for a forecast day
type Astro struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Moonrise  string `json:"moonrise"`
	Moonset   string `json:"moonset"`
	MoonPhase string `json:"moon_phase"`
	// The provider has sent this both as a number and as a quoted number.
	MoonIllumination json.Number `json:"moon_illumination"`
}

// Hour is a single hourly forecast point
type Hour struct {
	Time         string    `json:"time"` // "2006-01-02 15:04"
	TempC        float64   `json:"temp_c"`
	Condition    Condition `json:"condition"`
	WindKph      float64   `json:"wind_kph"`
	Humidity     int       `json:"humidity"`
	FeelsLikeC   float64   `json:"feelslike_c"`
	PrecipMm     float64   `json:"precip_mm"`
	ChanceOfRain int       `json:"chance_of_rain"`
}

// Today returns the first forecast day, which the display treats as today
func (s *WeatherSnapshot) Today() (ForecastDay, bool) {
	if s == nil || len(s.Forecast.ForecastDays) == 0 {
		return ForecastDay{}, false
	}
	return s.Forecast.ForecastDays[0], true
}
