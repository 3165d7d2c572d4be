package weatherapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"weather-display/datasource"
	"weather-display/i18n"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func fixture(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/forecast.json")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return b
}

func TestFetchWeatherRequest(t *testing.T) {
	body := fixture(t)
	ts, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v1/forecast.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{
			"key":  "secret",
			"q":    "-23.55,-46.63",
			"lang": "pt",
			"days": "3",
			"aqi":  "yes",
		}
		for k, v := range want {
			if got := q.Get(k); got != v {
				t.Errorf("query param %s = %q, want %q", k, got, v)
			}
		}
		if q.Has("alerts") {
			t.Errorf("alerts should not be requested by default")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	})

	c := NewClient("secret", WithBaseURL(ts.URL+"/v1/"))
	snap, err := c.FetchWeather(context.Background(), "-23.55,-46.63", i18n.Portuguese)
	if err != nil {
		t.Fatalf("FetchWeather failed: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly one request, got %d", calls.Load())
	}

	if snap.Location.Name != "Sao Paulo" || snap.Location.LocalTime != "2024-05-02 14:30" {
		t.Errorf("unexpected location %+v", snap.Location)
	}
	if snap.Current.AirQuality.GBDefraIndex != 5 {
		t.Errorf("expected gb-defra-index 5, got %d", snap.Current.AirQuality.GBDefraIndex)
	}
	if snap.Current.AirQuality.PM2_5 != 12.4 {
		t.Errorf("expected pm2_5 12.4, got %v", snap.Current.AirQuality.PM2_5)
	}
	if len(snap.Forecast.ForecastDays) != 3 {
		t.Fatalf("expected 3 forecast days, got %d", len(snap.Forecast.ForecastDays))
	}
	today, ok := snap.Today()
	if !ok || today.Astro.MoonPhase != "Full Moon" {
		t.Errorf("unexpected today %+v", today.Astro)
	}
	if today.Astro.MoonIllumination.String() != "98" {
		t.Errorf("expected numeric moon illumination 98, got %q", today.Astro.MoonIllumination)
	}
	if got := snap.Forecast.ForecastDays[1].Astro.MoonIllumination.String(); got != "91" {
		t.Errorf("expected quoted moon illumination 91, got %q", got)
	}
	if len(today.Hours) != 2 || today.Hours[1].TempC != -0.5 {
		t.Errorf("unexpected hours %+v", today.Hours)
	}
	if len(snap.Alerts.Alert) != 1 || snap.Alerts.Alert[0].Description != "Gusts up to 60 km/h expected." {
		t.Errorf("unexpected alerts %+v", snap.Alerts)
	}
}

func TestFetchWeatherAlertsParam(t *testing.T) {
	body := fixture(t)
	ts, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("alerts"); got != "yes" {
			t.Errorf("expected alerts=yes, got %q", got)
		}
		if got := r.URL.Query().Get("lang"); got != "en" {
			t.Errorf("expected lang=en, got %q", got)
		}
		w.Write(body)
	})

	c := NewClientFromConfig(&datasource.Config{APIKey: "k", BaseURL: ts.URL, Timeout: 5 * time.Second, Alerts: true})
	if _, err := c.FetchWeather(context.Background(), "London", i18n.English); err != nil {
		t.Fatalf("FetchWeather failed: %v", err)
	}
}

func TestFetchWeatherFailures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantKind   datasource.FetchKind
		wantStatus int
		wantCode   int
	}{
		{
			name: "unknown location",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
			},
			wantKind:   datasource.KindStatus,
			wantStatus: http.StatusBadRequest,
			wantCode:   1006,
		},
		{
			name: "invalid key without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantKind:   datasource.KindStatus,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"location": [`))
			},
			wantKind: datasource.KindDecode,
		},
		{
			name: "no forecast days",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"location":{"name":"X"},"forecast":{"forecastday":[]}}`))
			},
			wantKind: datasource.KindDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, calls := newTestServer(t, tt.handler)
			c := NewClient("k", WithBaseURL(ts.URL))

			snap, err := c.FetchWeather(context.Background(), "Nowhere", i18n.Portuguese)
			if snap != nil {
				t.Errorf("expected nil snapshot, got %+v", snap)
			}
			if !errors.Is(err, datasource.ErrFetch) {
				t.Fatalf("expected ErrFetch, got %v", err)
			}
			var fe *datasource.FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FetchError, got %T", err)
			}
			if fe.Kind != tt.wantKind || fe.StatusCode != tt.wantStatus || fe.ProviderCode != tt.wantCode {
				t.Errorf("unexpected error detail %+v", fe)
			}
			if calls.Load() != 1 {
				t.Errorf("expected a single attempt, got %d", calls.Load())
			}
		})
	}
}

func TestFetchWeatherNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewClient("k", WithBaseURL(url))
	_, err := c.FetchWeather(context.Background(), "Lisbon", i18n.English)

	var fe *datasource.FetchError
	if !errors.As(err, &fe) || fe.Kind != datasource.KindNetwork {
		t.Fatalf("expected network FetchError, got %v", err)
	}
}
