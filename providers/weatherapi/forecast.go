package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"weather-display/datasource"
	"weather-display/i18n"
	"weather-display/models"
)

// errorResponse is the body the provider sends with non-200 statuses
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchWeather gets current conditions, air quality and a 3 day forecast from
// WeatherAPI.com with a single request
func (c *Client) FetchWeather(ctx context.Context, query string, lang i18n.Language) (*models.WeatherSnapshot, error) {
	params := map[string]string{
		"key":  c.apiKey,
		"q":    query,
		"lang": string(lang),
		"days": strconv.Itoa(datasource.ForecastDays),
		"aqi":  "yes",
	}
	if c.alerts {
		params["alerts"] = "yes"
	}

	slog.Debug("requesting WeatherAPI forecast", "query", query, "lang", lang)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/forecast.json")
	if err != nil {
		return nil, &datasource.FetchError{Kind: datasource.KindNetwork, Err: fmt.Errorf("failed to send request: %w", err)}
	}

	if resp.StatusCode() != http.StatusOK {
		fe := &datasource.FetchError{Kind: datasource.KindStatus, StatusCode: resp.StatusCode()}
		var body errorResponse
		if json.Unmarshal(resp.Body(), &body) == nil {
			fe.ProviderCode = body.Error.Code
			fe.ProviderMessage = body.Error.Message
		}
		return nil, fe
	}

	var snapshot models.WeatherSnapshot
	if err := json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return nil, &datasource.FetchError{Kind: datasource.KindDecode, Err: fmt.Errorf("failed to parse API response: %w", err)}
	}
	if len(snapshot.Forecast.ForecastDays) == 0 {
		return nil, &datasource.FetchError{Kind: datasource.KindDecode, Err: errors.New("response has no forecast days")}
	}

	return &snapshot, nil
}
