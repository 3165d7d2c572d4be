// Package app sequences location, fetch and state updates for the display.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"weather-display/datasource"
	"weather-display/i18n"
	"weather-display/location"
	"weather-display/models"
	"weather-display/view"

	"github.com/google/uuid"
)

var (
	// ErrStaleResponse is returned when a newer fetch was issued while this
	// one was in flight; its result was discarded
	ErrStaleResponse = errors.New("response superseded by a newer request")
	ErrNoSnapshot    = errors.New("no weather data loaded")
)

type trigger string

const (
	triggerMount    trigger = "mount"
	triggerLanguage trigger = "language"
	triggerSearch   trigger = "search"
)

// Orchestrator drives UIState from the three user-facing events: mount,
// language change and search. Methods block until their fetch completes and
// are safe to call concurrently; the lock is never held across I/O.
type Orchestrator struct {
	resolver *location.Resolver
	fetcher  datasource.WeatherFetcher
	alerter  Alerter
	logger   *slog.Logger

	mu    sync.Mutex
	state UIState
}

// New creates an orchestrator in the initial loading state
func New(resolver *location.Resolver, fetcher datasource.WeatherFetcher, alerter Alerter, lang i18n.Language) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		fetcher:  fetcher,
		alerter:  alerter,
		logger:   slog.Default().With("component", "orchestrator"),
		state:    NewUIState(lang),
	}
}

// State returns a copy of the current state
func (o *Orchestrator) State() UIState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// View derives the display view for the current snapshot and language
func (o *Orchestrator) View() (*view.View, error) {
	o.mu.Lock()
	snap, lang := o.state.Snapshot, o.state.Language
	o.mu.Unlock()

	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return view.Build(snap, lang)
}

// SetSearchText records what the user has typed so far
func (o *Orchestrator) SetSearchText(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.SearchText = text
}

// Mount resolves the device location and loads the first snapshot. IsLoading
// is cleared however it ends.
func (o *Orchestrator) Mount(ctx context.Context) error {
	coords, err := o.resolver.ResolveInitialLocation(ctx)
	if err != nil {
		o.mu.Lock()
		o.state.IsLoading = false
		o.mu.Unlock()

		if errors.Is(err, location.ErrPermissionDenied) {
			o.logger.Info("location permission denied")
			o.alert(func(t *i18n.Table) i18n.AlertText { return t.PermissionDenied })
		} else {
			o.logger.Warn("could not read device position", "error", err)
			o.alert(func(t *i18n.Table) i18n.AlertText { return t.FetchFailed })
		}
		return err
	}

	o.mu.Lock()
	lang := o.state.Language
	o.mu.Unlock()

	return o.fetch(ctx, coords.Query(), lang, triggerMount)
}

// ChangeLanguage switches the display language. With a snapshot loaded, the
// place is fetched again by name so provider texts come back localized.
func (o *Orchestrator) ChangeLanguage(ctx context.Context, lang i18n.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", i18n.ErrUnsupportedLanguage, string(lang))
	}

	o.mu.Lock()
	if o.state.Language == lang {
		o.mu.Unlock()
		return nil
	}
	o.state.Language = lang
	snap := o.state.Snapshot
	o.mu.Unlock()

	if snap == nil {
		return nil
	}
	return o.fetch(ctx, snap.Location.Name, lang, triggerLanguage)
}

// SubmitSearch fetches weather for user-typed text. Empty input is rejected
// before any network call; on failure the current snapshot is kept.
func (o *Orchestrator) SubmitSearch(ctx context.Context, text string) error {
	o.mu.Lock()
	o.state.SearchText = text
	lang := o.state.Language
	o.mu.Unlock()

	query, err := o.resolver.ResolveSearchLocation(text)
	if err != nil {
		o.alert(func(t *i18n.Table) i18n.AlertText { return t.EmptySearch })
		return err
	}
	return o.fetch(ctx, query, lang, triggerSearch)
}

// fetch runs one provider call under a fresh generation token and applies the
// result only if no newer call was issued meanwhile
func (o *Orchestrator) fetch(ctx context.Context, query string, lang i18n.Language, why trigger) error {
	o.mu.Lock()
	o.state.Generation++
	gen := o.state.Generation
	if why != triggerMount {
		o.state.Refreshing = true
	}
	o.mu.Unlock()

	log := o.logger.With("request_id", uuid.NewString(), "generation", gen, "trigger", string(why))
	log.Info("fetching weather", "query", query, "lang", lang, "fetcher", o.fetcher.Name())

	snap, err := o.fetcher.FetchWeather(ctx, query, lang)

	o.mu.Lock()
	if why == triggerMount {
		o.state.IsLoading = false
	}
	if latest := o.state.Generation; gen != latest {
		o.mu.Unlock()
		log.Info("discarding stale response", "latest", latest, "error", err)
		return ErrStaleResponse
	}
	o.state.Refreshing = false
	if err != nil {
		o.mu.Unlock()
		log.Error("weather fetch failed", "error", err)
		o.alert(func(t *i18n.Table) i18n.AlertText { return t.FetchFailed })
		return err
	}
	o.state.Snapshot = snap
	if why == triggerSearch {
		o.state.SearchText = ""
	}
	current := o.state.Language
	o.mu.Unlock()

	log.Info("weather updated", "location", snap.Location.Name, "country", snap.Location.Country)

	// A language switch with no snapshot loaded only flips the language, so a
	// result fetched in the old one is fetched again by name.
	if current != lang {
		log.Info("language changed while fetching, reloading", "lang", current)
		return o.fetch(ctx, snap.Location.Name, current, triggerLanguage)
	}
	return nil
}

// alert shows the text pick selects from the current language's table
func (o *Orchestrator) alert(pick func(*i18n.Table) i18n.AlertText) {
	if o.alerter == nil {
		return
	}
	o.mu.Lock()
	lang := o.state.Language
	o.mu.Unlock()

	tbl, err := i18n.Lookup(lang)
	if err != nil {
		o.logger.Error("no table for alert", "lang", lang, "error", err)
		return
	}
	text := pick(tbl)
	o.alerter.Alert(text.Title, text.Message)
}

// Snapshot returns the current snapshot, or nil before the first success
func (o *Orchestrator) Snapshot() *models.WeatherSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Snapshot
}
