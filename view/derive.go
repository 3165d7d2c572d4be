// Package view turns a weather snapshot into display-ready values. Everything
// here is pure and recomputed on every call.
package view

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"weather-display/i18n"
)

const (
	localTimeLayout = "2006-01-02 15:04"
	dateLayout      = "2006-01-02"
)

// ErrAirQualityIndex is returned for a GB-Defra index outside 1..10
var ErrAirQualityIndex = errors.New("air quality index out of range")

// Category is a GB-Defra air quality band
type Category int

const (
	Good Category = iota + 1
	Moderate
	Poor
	VeryPoor
)

func (c Category) String() string {
	switch c {
	case Good:
		return "Good"
	case Moderate:
		return "Moderate"
	case Poor:
		return "Poor"
	case VeryPoor:
		return "Very Poor"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Label returns the localized band name
func (c Category) Label(t *i18n.Table) string {
	switch c {
	case Good:
		return t.AirQuality.Good
	case Moderate:
		return t.AirQuality.Moderate
	case Poor:
		return t.AirQuality.Poor
	case VeryPoor:
		return t.AirQuality.VeryPoor
	default:
		return ""
	}
}

// AirQualityCategory bands a GB-Defra index: 1-3 Good, 4-6 Moderate,
// 7-9 Poor, 10 Very Poor
func AirQualityCategory(index int) (Category, error) {
	switch {
	case index >= 1 && index <= 3:
		return Good, nil
	case index >= 4 && index <= 6:
		return Moderate, nil
	case index >= 7 && index <= 9:
		return Poor, nil
	case index == 10:
		return VeryPoor, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrAirQualityIndex, index)
	}
}

// RoundTemp rounds half away from zero: 21.5 -> 22, -0.5 -> -1
func RoundTemp(v float64) int {
	return int(math.Round(v))
}

// IconURL prepends https: to the provider's protocol-relative icon paths
func IconURL(ref string) string {
	if strings.HasPrefix(ref, "//") {
		return "https:" + ref
	}
	return ref
}

// LocalDayLabel returns the localized weekday and date of the location's
// local time
func LocalDayLabel(localTime string, lang i18n.Language) (weekday, date string, err error) {
	t, err := time.Parse(localTimeLayout, localTime)
	if err != nil {
		return "", "", fmt.Errorf("invalid local time %q: %w", localTime, err)
	}
	tbl, err := i18n.Lookup(lang)
	if err != nil {
		return "", "", err
	}
	weekday, err = i18n.WeekdayName(lang, int(t.Weekday()))
	if err != nil {
		return "", "", err
	}
	return weekday, t.Format(tbl.DateLayout), nil
}

// ForecastWeekday names the weekday of a forecast calendar date. The date is
// read as a calendar day, so no zone shift can move it to a neighbour.
func ForecastWeekday(date string, lang i18n.Language) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid forecast date %q: %w", date, err)
	}
	return i18n.WeekdayName(lang, int(t.Weekday()))
}

// HourLabel formats a "2006-01-02 15:04" time as "15:00"
func HourLabel(ts string) (string, error) {
	t, err := time.Parse(localTimeLayout, ts)
	if err != nil {
		return "", fmt.Errorf("invalid hour time %q: %w", ts, err)
	}
	return fmt.Sprintf("%d:00", t.Hour()), nil
}
