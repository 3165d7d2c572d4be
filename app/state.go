package app

import (
	"weather-display/i18n"
	"weather-display/models"
)

// UIState is the single record the orchestrator owns. It lives for the
// process lifetime and is never persisted.
type UIState struct {
	Snapshot   *models.WeatherSnapshot `json:"snapshot,omitempty"`
	SearchText string                  `json:"searchText"`
	Language   i18n.Language           `json:"language"`

	// IsLoading gates the first load only; Refreshing covers later fetches
	IsLoading  bool `json:"isLoading"`
	Refreshing bool `json:"refreshing"`

	// Generation is the token of the most recently issued fetch
	Generation uint64 `json:"generation"`
}

// NewUIState returns the state at app start
func NewUIState(lang i18n.Language) UIState {
	return UIState{Language: lang, IsLoading: true}
}
