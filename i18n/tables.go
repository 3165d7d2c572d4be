package i18n

import (
	"fmt"
)

// Table is the fixed set of strings one language provides.
type Table struct {
	Weekdays   [7]string         // Sunday first
	MoonPhases map[string]string // canonical key -> display name
	AirQuality AirQualityLabels
	DateLayout string // time layout for the local date label
	Details    DetailLabels

	PermissionDenied AlertText
	EmptySearch      AlertText
	FetchFailed      AlertText
}

// AirQualityLabels names the four GB-Defra bands
type AirQualityLabels struct {
	Good     string
	Moderate string
	Poor     string
	VeryPoor string
}

// DetailLabels titles the current-conditions detail rows
type DetailLabels struct {
	FeelsLike  string
	Wind       string
	Humidity   string
	Pressure   string
	UV         string
	AirQuality string
	Sunrise    string
	Sunset     string
	Moon       string
}

// AlertText is the title and body of a one-shot user alert
type AlertText struct {
	Title   string
	Message string
}

var tables = map[Language]*Table{
	Portuguese: {
		Weekdays: [7]string{
			"Domingo",
			"Segunda-feira",
			"Terça-feira",
			"Quarta-feira",
			"Quinta-feira",
			"Sexta-feira",
			"Sábado",
		},
		MoonPhases: map[string]string{
			"New Moon":        "Lua Nova",
			"Waxing Crescent": "Lua Crescente",
			"First Quarter":   "Quarto Crescente",
			"Waxing Gibbous":  "Lua Gibosa Crescente",
			"Full Moon":       "Lua Cheia",
			"Waning Gibbous":  "Lua Gibosa Minguante",
			"Last Quarter":    "Quarto Minguante",
			"Waning Crescent": "Lua Minguante",
		},
		AirQuality: AirQualityLabels{
			Good:     "Qualidade do Ar Boa",
			Moderate: "Qualidade do Ar Moderada",
			Poor:     "Qualidade do Ar Ruim",
			VeryPoor: "Qualidade do Ar Muito Ruim",
		},
		DateLayout: "02/01/2006",
		Details: DetailLabels{
			FeelsLike:  "Sensação Térmica",
			Wind:       "Vento",
			Humidity:   "Umidade",
			Pressure:   "Pressão",
			UV:         "UV",
			AirQuality: "Qualidade do Ar",
			Sunrise:    "Nascer do Sol",
			Sunset:     "Pôr do Sol",
			Moon:       "Lua",
		},
		PermissionDenied: AlertText{
			Title:   "Permissão negada",
			Message: "Permissão para acessar localização foi negada",
		},
		EmptySearch: AlertText{
			Title:   "Erro",
			Message: "Por favor, insira uma localização",
		},
		FetchFailed: AlertText{
			Title:   "Erro",
			Message: "Não foi possível buscar dados meteorológicos. Verifique a localização.",
		},
	},
	English: {
		Weekdays: [7]string{
			"Sunday",
			"Monday",
			"Tuesday",
			"Wednesday",
			"Thursday",
			"Friday",
			"Saturday",
		},
		MoonPhases: identityPhases(),
		AirQuality: AirQualityLabels{
			Good:     "Good Air Quality",
			Moderate: "Moderate Air Quality",
			Poor:     "Poor Air Quality",
			VeryPoor: "Very Poor Air Quality",
		},
		DateLayout: "1/2/2006",
		Details: DetailLabels{
			FeelsLike:  "Feels Like",
			Wind:       "Wind",
			Humidity:   "Humidity",
			Pressure:   "Pressure",
			UV:         "UV",
			AirQuality: "Air Quality",
			Sunrise:    "Sunrise",
			Sunset:     "Sunset",
			Moon:       "Moon",
		},
		PermissionDenied: AlertText{
			Title:   "Permission denied",
			Message: "Permission to access location was denied",
		},
		EmptySearch: AlertText{
			Title:   "Error",
			Message: "Please enter a location",
		},
		FetchFailed: AlertText{
			Title:   "Error",
			Message: "Could not fetch weather data. Check the location.",
		},
	},
}

func identityPhases() map[string]string {
	m := make(map[string]string, len(MoonPhases))
	for _, k := range MoonPhases {
		m[k] = k
	}
	return m
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate checks that every supported language has a complete table
func Validate() error {
	for _, lang := range Supported {
		t, ok := tables[lang]
		if !ok {
			return fmt.Errorf("i18n: no table for %q", lang)
		}
		if err := t.validate(); err != nil {
			return fmt.Errorf("i18n: %q: %w", lang, err)
		}
	}
	return nil
}

func (t *Table) validate() error {
	for i, d := range t.Weekdays {
		if d == "" {
			return fmt.Errorf("weekday %d is empty", i)
		}
	}
	for _, k := range MoonPhases {
		if t.MoonPhases[k] == "" {
			return fmt.Errorf("moon phase %q is missing", k)
		}
	}
	if len(t.MoonPhases) != len(MoonPhases) {
		return fmt.Errorf("moon phase table has %d entries, want %d", len(t.MoonPhases), len(MoonPhases))
	}
	labels := []string{t.AirQuality.Good, t.AirQuality.Moderate, t.AirQuality.Poor, t.AirQuality.VeryPoor}
	for _, l := range labels {
		if l == "" {
			return fmt.Errorf("air quality label is empty")
		}
	}
	if t.DateLayout == "" {
		return fmt.Errorf("date layout is empty")
	}
	d := t.Details
	for _, l := range []string{d.FeelsLike, d.Wind, d.Humidity, d.Pressure, d.UV, d.AirQuality, d.Sunrise, d.Sunset, d.Moon} {
		if l == "" {
			return fmt.Errorf("detail label is empty")
		}
	}
	return nil
}
