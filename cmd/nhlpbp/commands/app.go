package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/config"
	"nhl-playbyplay/internal/discovery"
	"nhl-playbyplay/internal/fetcher"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/metrics"
	"nhl-playbyplay/internal/providers/nhlapi"
	"nhl-playbyplay/internal/season"
)

const serviceName = "nhl-playbyplay"

var metricsSetup = metrics.Setup

// app holds the components shared by the fetching commands.
type app struct {
	cfg         config.Config
	logger      *slog.Logger
	recorder    *metrics.Recorder
	store       *cache.FSStore
	client      *nhlapi.Client
	fetcher     *fetcher.Fetcher
	runner      *season.Runner
	metricsStop func(context.Context) error
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: Version,
		Writer:  w,
	})
}

// buildApp wires config, telemetry, the upstream client, the cache and the
// season runner. The cache directory is created here.
func (c *CLI) buildApp(ctx context.Context, cfg config.Config, logs io.Writer) (*app, error) {
	logger := newLogger(cfg, logs)

	recorder, _, stop, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		recorder, stop = metrics.NewRecorder(), nil
	}

	store := cache.NewFSStore(cfg.Cache.RawDir)
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	client := nhlapi.NewClient(nhlapi.Config{
		BaseURL:        cfg.API.BaseURL,
		HTTPClient:     c.httpClient,
		Timeout:        cfg.API.Timeout,
		MaxRetries:     cfg.API.MaxRetries,
		InitialBackoff: cfg.API.InitialBackoff,
		Logger:         logger,
		Recorder:       recorder,
	})

	f := fetcher.New(fetcher.Config{
		Source:    client,
		Cache:     store,
		RateLimit: cfg.API.RateLimit,
		Logger:    logger,
		Recorder:  recorder,
	})

	runner := season.NewRunner(season.Config{
		IDs:      discovery.NewDiscoverer(client, logger),
		Fetcher:  f,
		Force:    cfg.Fetch.Force,
		Logger:   logger,
		Recorder: recorder,
	})

	return &app{
		cfg:         cfg,
		logger:      logger,
		recorder:    recorder,
		store:       store,
		client:      client,
		fetcher:     f,
		runner:      runner,
		metricsStop: stop,
	}, nil
}

// Close flushes telemetry.
func (a *app) Close(ctx context.Context) {
	if a == nil || a.metricsStop == nil {
		return
	}
	if err := a.metricsStop(ctx); err != nil {
		logging.Warn(a.logger, "metrics shutdown failed", "error", err)
	}
}
