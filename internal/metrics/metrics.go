package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	attempts        int
	errors          int
	retries         int
	lastRetryWait   time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory metrics about upstream calls and fetch runs,
// mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*endpointStats
	outcomes map[string]int
	seasons  int
	requests int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*endpointStats),
		outcomes: make(map[string]int),
		otel:     otel,
	}
}

// RecordAttempt counts one HTTP attempt against an upstream endpoint.
func (r *Recorder) RecordAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.attempts++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAttempt(endpoint, duration, err)
	}
}

// RecordRetry tracks a scheduled retry and the wait before it.
func (r *Recorder) RecordRetry(endpoint string, wait time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.retries++
	if wait > 0 {
		stats.lastRetryWait = wait
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRetry(endpoint, wait)
	}
}

// RecordOutcome counts a per-game fetch outcome.
func (r *Recorder) RecordOutcome(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOutcome(outcome)
	}
}

// RecordSeason tracks a completed season run.
func (r *Recorder) RecordSeason(season string, saved, failed int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.seasons++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSeason(season, saved, failed, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many served requests were recorded.
func (r *Recorder) HTTPRequests() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Attempts        int
	Errors          int
	Retries         int
	LastRetryWait   time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Attempts:        stats.attempts,
		Errors:          stats.errors,
		Retries:         stats.retries,
		LastRetryWait:   stats.lastRetryWait,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Outcomes returns how many times the given outcome was recorded.
func (r *Recorder) Outcomes(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[outcome]
}

// Seasons returns the number of completed season runs.
func (r *Recorder) Seasons() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seasons
}

// caller holds r.mu
func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
