// Package i18n holds the display strings for the two supported languages.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported display language code, sent to the provider as lang=
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownMoonPhase    = errors.New("unknown moon phase")
	ErrWeekdayIndex        = errors.New("weekday index out of range")
)

// MoonPhases lists the canonical provider keys every language must translate.
var MoonPhases = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// Supported lists the languages in matcher preference order.
var Supported = []Language{Portuguese, English}

var matcher = language.NewMatcher([]language.Tag{language.Portuguese, language.English})

// ParseLanguage maps user or locale input such as "pt-BR", "en_US" or "EN"
// onto a supported language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return Supported[idx], nil
}

// Valid reports whether l is one of the supported languages
func (l Language) Valid() bool {
	_, ok := tables[l]
	return ok
}

// WeekdayName returns the weekday name for index 0..6, 0 being Sunday
func WeekdayName(lang Language, i int) (string, error) {
	t, err := Lookup(lang)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(t.Weekdays) {
		return "", fmt.Errorf("%w: %d", ErrWeekdayIndex, i)
	}
	return t.Weekdays[i], nil
}

// MoonPhaseName translates a canonical moon phase key. A key outside
// MoonPhases is an error rather than an empty string.
func MoonPhaseName(lang Language, key string) (string, error) {
	t, err := Lookup(lang)
	if err != nil {
		return "", err
	}
	name, ok := t.MoonPhases[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMoonPhase, key)
	}
	return name, nil
}

// Lookup returns the table for lang
func Lookup(lang Language) (*Table, error) {
	t, ok := tables[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(lang))
	}
	return t, nil
}
