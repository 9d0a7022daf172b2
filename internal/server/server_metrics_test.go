package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/config"
	"nhl-playbyplay/internal/metrics"
	"nhl-playbyplay/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Default()
	cfg.Metrics.Enabled = true

	srv := newServerWithMetrics(cfg, cache.NewFSStore(t.TempDir()), nil, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics listener after setup failure")
	}
}

func TestNewServerWithMetricsEnabledBuildsListener(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = "9999"

	srv := newServerWithMetrics(cfg, cache.NewFSStore(t.TempDir()), nil, nil)
	if srv.metricsServer == nil || srv.metricsServer.Addr() != ":9999" {
		t.Fatalf("expected metrics listener on :9999")
	}
	if srv.metricsStop == nil {
		t.Fatalf("expected metrics shutdown hook")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := config.Default()
	cfg.Metrics.Enabled = true

	srv := newServerWithMetrics(cfg, cache.NewFSStore(t.TempDir()), nil, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for injected recorder")
	}
	_ = shutdown
}

func TestHTTPRequestsAreRecorded(t *testing.T) {
	rec := metrics.NewRecorder()
	srv := newServerWithMetrics(config.Default(), cache.NewFSStore(t.TempDir()), nil, rec)

	testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)

	if got := rec.HTTPRequests(); got != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", got)
	}
}
