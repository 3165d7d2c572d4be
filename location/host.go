package location

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// StaticPermissions answers the permission prompt with a fixed decision,
// normally the operator's configured consent
type StaticPermissions struct {
	Granted bool
}

// RequestForeground returns the configured decision
func (p StaticPermissions) RequestForeground(ctx context.Context) (bool, error) {
	return p.Granted, nil
}

// StaticPosition reports fixed coordinates
type StaticPosition struct {
	Coordinates Coordinates
}

// CurrentPosition returns the fixed coordinates
func (p StaticPosition) CurrentPosition(ctx context.Context) (Coordinates, error) {
	return p.Coordinates, nil
}

// IPPositionReader approximates the device position from its public IP using
// an ip-api.com compatible endpoint
type IPPositionReader struct {
	url    string
	client *resty.Client
}

// ipAPIResponse represents the API response structure
type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPPositionReader creates a reader querying url
func NewIPPositionReader(url string) *IPPositionReader {
	return &IPPositionReader{
		url: url,
		client: resty.New().
			SetTimeout(5*time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// CurrentPosition performs one lookup
func (r *IPPositionReader) CurrentPosition(ctx context.Context) (Coordinates, error) {
	var out ipAPIResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,lat,lon").
		SetResult(&out).
		Get(r.url)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to query IP locator: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return Coordinates{}, fmt.Errorf("IP locator returned status %d", resp.StatusCode())
	}
	if out.Status != "success" {
		msg := out.Message
		if msg == "" {
			msg = "lookup failed"
		}
		return Coordinates{}, errors.New("IP locator: " + msg)
	}
	return Coordinates{Lat: out.Lat, Lon: out.Lon}, nil
}

var (
	_ Permissions    = StaticPermissions{}
	_ PositionReader = StaticPosition{}
	_ PositionReader = (*IPPositionReader)(nil)
)
