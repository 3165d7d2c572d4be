package datasource

import (
	"errors"
	"fmt"
)

// ErrFetch matches every *FetchError
var ErrFetch = errors.New("weather fetch failed")

// FetchKind tells apart the causes the user never sees
type FetchKind string

const (
	KindNetwork   FetchKind = "network"
	KindStatus    FetchKind = "status"
	KindDecode    FetchKind = "decode"
	KindThrottled FetchKind = "throttled"
)

// FetchError describes a failed provider call
type FetchError struct {
	Kind       FetchKind
	StatusCode int // set for KindStatus

	// Provider error payload, when the body carried one
	ProviderCode    int
	ProviderMessage string

	Err error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == KindStatus && e.ProviderMessage != "":
		return fmt.Sprintf("%s: provider returned status %d (code %d): %s", ErrFetch, e.StatusCode, e.ProviderCode, e.ProviderMessage)
	case e.Kind == KindStatus:
		return fmt.Sprintf("%s: provider returned status %d", ErrFetch, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s (%s): %v", ErrFetch, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s (%s)", ErrFetch, e.Kind)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFetch) hold for any FetchError
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
