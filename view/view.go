package view

import (
	"errors"
	"fmt"

	"weather-display/i18n"
	"weather-display/models"
)

// View is everything the presentation layer renders for one snapshot
type View struct {
	Language   i18n.Language  `json:"language"`
	Location   LocationView   `json:"location"`
	Current    CurrentView    `json:"current"`
	AirQuality AirQualityView `json:"airQuality"`
	Astro      AstroView      `json:"astro"`
	Forecast   []DayView      `json:"forecast"`
	Hourly     []HourView     `json:"hourly"`
	Alerts     []AlertView    `json:"alerts"`
}

// LocationView is the header block
type LocationView struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
}

// CurrentView holds the current conditions
type CurrentView struct {
	TempC       int     `json:"tempC"`
	TempF       int     `json:"tempF"`
	FeelsLikeC  int     `json:"feelsLikeC"`
	Condition   string  `json:"condition"`
	IconURL     string  `json:"iconUrl"`
	WindKph     float64 `json:"windKph"`
	WindDir     string  `json:"windDir"`
	WindDegree  int     `json:"windDegree"`
	PressureMb  float64 `json:"pressureMb"`
	PrecipMm    float64 `json:"precipMm"`
	HumidityPct int     `json:"humidityPct"`
	UV          float64 `json:"uv"`
}

// AirQualityView is the air quality block
type AirQualityView struct {
	GBDefraIndex int      `json:"gbDefraIndex"`
	Category     Category `json:"category"`
	Label        string   `json:"label"`
	USEPAIndex   int      `json:"usEpaIndex"`
	PM2_5        float64  `json:"pm2_5"`
	PM10         float64  `json:"pm10"`
	SO2          float64  `json:"so2"`
	NO2          float64  `json:"no2"`
	O3           float64  `json:"o3"`
	CO           float64  `json:"co"`
}

// AstroView is today's sun and moon block
type AstroView struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moonPhase"`
	MoonIllumination string `json:"moonIllumination"`
}

// DayView is one entry of the multi-day forecast list
type DayView struct {
	Date            string `json:"date"`
	Weekday         string `json:"weekday"`
	MaxC            int    `json:"maxC"`
	MinC            int    `json:"minC"`
	Condition       string `json:"condition"`
	IconURL         string `json:"iconUrl"`
	ChanceOfRainPct int    `json:"chanceOfRainPct"`
	MoonPhase       string `json:"moonPhase"`
}

// HourView is one entry of today's hourly strip
type HourView struct {
	Label           string `json:"label"`
	TempC           int    `json:"tempC"`
	IconURL         string `json:"iconUrl"`
	ChanceOfRainPct int    `json:"chanceOfRainPct"`
}

// AlertView is a provider weather alert
type AlertView struct {
	Event       string `json:"event"`
	Description string `json:"description"`
	ExpiresAt   string `json:"expiresAt"`
}

// Build derives the display view of s in lang. Data-contract violations in the
// snapshot (unknown moon phase, air quality index outside 1..10, unparseable
// times) are returned as errors instead of being rendered blank.
func Build(s *models.WeatherSnapshot, lang i18n.Language) (*View, error) {
	if s == nil {
		return nil, errors.New("no snapshot")
	}
	tbl, err := i18n.Lookup(lang)
	if err != nil {
		return nil, err
	}
	today, ok := s.Today()
	if !ok {
		return nil, errors.New("snapshot has no forecast days")
	}

	v := &View{Language: lang}

	weekday, date, err := LocalDayLabel(s.Location.LocalTime, lang)
	if err != nil {
		return nil, err
	}
	v.Location = LocationView{
		Name:    s.Location.Name,
		Region:  s.Location.Region,
		Country: s.Location.Country,
		Weekday: weekday,
		Date:    date,
	}

	c := s.Current
	v.Current = CurrentView{
		TempC:       RoundTemp(c.TempC),
		TempF:       RoundTemp(c.TempF),
		FeelsLikeC:  RoundTemp(c.FeelsLikeC),
		Condition:   c.Condition.Text,
		IconURL:     IconURL(c.Condition.Icon),
		WindKph:     c.WindKph,
		WindDir:     c.WindDir,
		WindDegree:  c.WindDegree,
		PressureMb:  c.PressureMb,
		PrecipMm:    c.PrecipMm,
		HumidityPct: c.Humidity,
		UV:          c.UV,
	}

	aq := c.AirQuality
	category, err := AirQualityCategory(aq.GBDefraIndex)
	if err != nil {
		return nil, err
	}
	v.AirQuality = AirQualityView{
		GBDefraIndex: aq.GBDefraIndex,
		Category:     category,
		Label:        category.Label(tbl),
		USEPAIndex:   aq.USEPAIndex,
		PM2_5:        aq.PM2_5,
		PM10:         aq.PM10,
		SO2:          aq.SO2,
		NO2:          aq.NO2,
		O3:           aq.O3,
		CO:           aq.CO,
	}

	phase, err := i18n.MoonPhaseName(lang, today.Astro.MoonPhase)
	if err != nil {
		return nil, err
	}
	v.Astro = AstroView{
		Sunrise:          today.Astro.Sunrise,
		Sunset:           today.Astro.Sunset,
		Moonrise:         today.Astro.Moonrise,
		Moonset:          today.Astro.Moonset,
		MoonPhase:        phase,
		MoonIllumination: today.Astro.MoonIllumination.String(),
	}

	v.Forecast = make([]DayView, 0, len(s.Forecast.ForecastDays))
	for _, d := range s.Forecast.ForecastDays {
		dv, err := buildDay(d, lang)
		if err != nil {
			return nil, err
		}
		v.Forecast = append(v.Forecast, dv)
	}

	v.Hourly = make([]HourView, 0, len(today.Hours))
	for _, h := range today.Hours {
		label, err := HourLabel(h.Time)
		if err != nil {
			return nil, err
		}
		v.Hourly = append(v.Hourly, HourView{
			Label:           label,
			TempC:           RoundTemp(h.TempC),
			IconURL:         IconURL(h.Condition.Icon),
			ChanceOfRainPct: h.ChanceOfRain,
		})
	}

	v.Alerts = make([]AlertView, 0, len(s.Alerts.Alert))
	for _, a := range s.Alerts.Alert {
		v.Alerts = append(v.Alerts, AlertView{
			Event:       a.Event,
			Description: a.Description,
			ExpiresAt:   a.Expires,
		})
	}

	return v, nil
}

func buildDay(d models.ForecastDay, lang i18n.Language) (DayView, error) {
	weekday, err := ForecastWeekday(d.Date, lang)
	if err != nil {
		return DayView{}, err
	}
	phase, err := i18n.MoonPhaseName(lang, d.Astro.MoonPhase)
	if err != nil {
		return DayView{}, fmt.Errorf("forecast %s: %w", d.Date, err)
	}
	return DayView{
		Date:            d.Date,
		Weekday:         weekday,
		MaxC:            RoundTemp(d.Day.MaxTempC),
		MinC:            RoundTemp(d.Day.MinTempC),
		Condition:       d.Day.Condition.Text,
		IconURL:         IconURL(d.Day.Condition.Icon),
		ChanceOfRainPct: d.Day.DailyChanceOfRain,
		MoonPhase:       phase,
	}, nil
}
