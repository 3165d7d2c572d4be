package datasource

import (
	"context"

	"weather-display/i18n"
	"weather-display/models"
)

// ForecastDays is the fixed forecast horizon requested from the provider
const ForecastDays = 3

// WeatherFetcher retrieves one forecast snapshot per call. Implementations make
// exactly one provider round trip: no retry and no caching.
type WeatherFetcher interface {
	// FetchWeather fetches current conditions, air quality and the forecast
	// for a free-text or "lat,lon" query, localized to lang
	FetchWeather(ctx context.Context, query string, lang i18n.Language) (*models.WeatherSnapshot, error)

	// Name returns the fetcher's name
	Name() string
}
