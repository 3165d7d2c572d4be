package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-display/api"
	"weather-display/app"
	"weather-display/datasource"
	"weather-display/location"
	"weather-display/providers/weatherapi"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("weather display stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	// Parse command line arguments; they override the environment
	port := flag.String("port", "", "Port to run the server on (overrides PORT)")
	lang := flag.String("lang", "", "Display language, pt or en (overrides DEFAULT_LANGUAGE)")
	once := flag.Bool("once", false, "Resolve the location, print the forecast and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := datasource.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *lang != "" {
		cfg.DefaultLanguage = *lang
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	setupLogging(cfg.LogLevel)

	fetcher := newFetcher(cfg)
	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}

	if *once {
		orch := app.New(resolver, fetcher, app.AlertFunc(func(title, message string) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
		}), cfg.Language())
		if err := orch.Mount(ctx); err != nil {
			return err
		}
		v, err := orch.View()
		if err != nil {
			return err
		}
		return renderText(os.Stdout, v)
	}

	alerts := app.NewAlertQueue()
	orch := app.New(resolver, fetcher, alerts, cfg.Language())
	server := api.NewServer(orch, alerts, cfg.Port)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	// Initial load runs alongside the server so clients can watch isLoading
	g.Go(func() error {
		if err := orch.Mount(gctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("initial load failed", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

// newFetcher builds the WeatherAPI client, throttled when enabled
func newFetcher(cfg *datasource.Config) datasource.WeatherFetcher {
	var fetcher datasource.WeatherFetcher = weatherapi.NewClientFromConfig(cfg)
	if cfg.RateLimitEnabled {
		// WeatherAPI free tier allows ~23 calls/minute
		fetcher = datasource.NewRateLimitedFetcher(fetcher, cfg.RateLimitRPS, cfg.RateLimitBurst)
		slog.Info("applied rate limiting", "fetcher", fetcher.Name(), "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	}
	return fetcher
}

// newResolver stands in for the device: consent comes from config, the
// position from fixed coordinates or an IP lookup
func newResolver(cfg *datasource.Config) (*location.Resolver, error) {
	perms := location.StaticPermissions{Granted: cfg.LocationConsent}

	if cfg.DeviceCoords != "" {
		coords, err := location.ParseCoordinates(cfg.DeviceCoords)
		if err != nil {
			return nil, fmt.Errorf("invalid DEVICE_COORDS: %w", err)
		}
		return location.NewResolver(perms, location.StaticPosition{Coordinates: coords}), nil
	}
	return location.NewResolver(perms, location.NewIPPositionReader(cfg.IPLocatorURL)), nil
}
