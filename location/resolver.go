// Package location works out where to fetch weather for: a one-shot device
// position read behind a permission prompt, or text the user typed.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrInvalidInput        = errors.New("search text is empty")
	ErrPositionUnavailable = errors.New("device position unavailable")
)

// Coordinates is a single position reading
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query renders the coordinates as the provider's "lat,lon" query
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// ParseCoordinates parses "lat,lon"
func ParseCoordinates(s string) (Coordinates, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q: want \"lat,lon\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("coordinates out of range: %v,%v", lat, lon)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// Permissions asks the host for foreground location access
type Permissions interface {
	RequestForeground(ctx context.Context) (granted bool, err error)
}

// PositionReader reads the device position once
type PositionReader interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// Resolver turns host capabilities and user input into provider queries
type Resolver struct {
	permissions Permissions
	position    PositionReader
}

// NewResolver creates a resolver backed by the given host collaborators
func NewResolver(permissions Permissions, position PositionReader) *Resolver {
	return &Resolver{permissions: permissions, position: position}
}

// ResolveInitialLocation requests permission and, only if granted, takes a
// single position reading. There is no retry and no continuous tracking.
func (r *Resolver) ResolveInitialLocation(ctx context.Context) (Coordinates, error) {
	granted, err := r.permissions.RequestForeground(ctx)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	if !granted {
		return Coordinates{}, ErrPermissionDenied
	}

	coords, err := r.position.CurrentPosition(ctx)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}
	slog.Debug("device position acquired", "lat", coords.Lat, "lon", coords.Lon)
	return coords, nil
}

// ResolveSearchLocation validates free-text input
func (r *Resolver) ResolveSearchLocation(text string) (string, error) {
	return ResolveSearchLocation(text)
}

// ResolveSearchLocation trims text; empty or whitespace-only input is rejected
func ResolveSearchLocation(text string) (string, error) {
	q := strings.TrimSpace(text)
	if q == "" {
		return "", ErrInvalidInput
	}
	return q, nil
}
