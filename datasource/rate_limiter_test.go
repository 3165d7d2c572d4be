package datasource

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"weather-display/i18n"
	"weather-display/models"
)

type countingFetcher struct {
	calls atomic.Int32
}

func (c *countingFetcher) FetchWeather(ctx context.Context, query string, lang i18n.Language) (*models.WeatherSnapshot, error) {
	c.calls.Add(1)
	return &models.WeatherSnapshot{Location: models.Location{Name: query}}, nil
}

func (c *countingFetcher) Name() string { return "Counting" }

func TestRateLimitedFetcherForwards(t *testing.T) {
	inner := &countingFetcher{}
	f := NewRateLimitedFetcher(inner, 100, 2)

	if f.Name() != "Counting [Rate Limited]" {
		t.Errorf("unexpected name %q", f.Name())
	}

	snap, err := f.FetchWeather(context.Background(), "Lisbon", i18n.Portuguese)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Location.Name != "Lisbon" {
		t.Errorf("expected forwarded query, got %q", snap.Location.Name)
	}
	if inner.calls.Load() != 1 {
		t.Errorf("expected exactly one underlying call, got %d", inner.calls.Load())
	}
}

func TestRateLimitedFetcherCanceledWait(t *testing.T) {
	inner := &countingFetcher{}
	// One token, refilled every 1000s: the second call has to wait.
	f := NewRateLimitedFetcher(inner, 0.001, 1)

	if _, err := f.FetchWeather(context.Background(), "a", i18n.English); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.FetchWeather(ctx, "b", i18n.English)
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindThrottled {
		t.Errorf("expected throttled FetchError, got %#v", err)
	}
	if inner.calls.Load() != 1 {
		t.Errorf("throttled call must not reach the provider, calls=%d", inner.calls.Load())
	}
}

func TestFetchErrorMessages(t *testing.T) {
	tests := []struct {
		err  *FetchError
		want string
	}{
		{&FetchError{Kind: KindStatus, StatusCode: 400, ProviderCode: 1006, ProviderMessage: "No matching location found."}, "code 1006"},
		{&FetchError{Kind: KindStatus, StatusCode: 403}, "status 403"},
		{&FetchError{Kind: KindNetwork, Err: errors.New("dial tcp: refused")}, "dial tcp"},
		{&FetchError{Kind: KindDecode}, "decode"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
		}
		if !errors.Is(tt.err, ErrFetch) {
			t.Errorf("%v should match ErrFetch", tt.err)
		}
	}
}
