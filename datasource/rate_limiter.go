package datasource

import (
	"context"
	"fmt"

	"weather-display/i18n"
	"weather-display/models"

	"golang.org/x/time/rate"
)

// RateLimitedFetcher wraps a WeatherFetcher with rate limiting. Calls over the
// budget wait for a token; nothing is retried.
type RateLimitedFetcher struct {
	fetcher WeatherFetcher
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedFetcher creates a new rate limited fetcher
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedFetcher(fetcher WeatherFetcher, rps float64, burst int) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", fetcher.Name()),
	}
}

// FetchWeather fetches a snapshot, respecting rate limits
func (r *RateLimitedFetcher) FetchWeather(ctx context.Context, query string, lang i18n.Language) (*models.WeatherSnapshot, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Kind: KindThrottled, Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}

	return r.fetcher.FetchWeather(ctx, query, lang)
}

// Name returns the fetcher name
func (r *RateLimitedFetcher) Name() string {
	return r.name
}

var _ WeatherFetcher = (*RateLimitedFetcher)(nil)
