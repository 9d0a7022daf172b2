package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordAttempt(EndpointPlayByPlay, 10*time.Millisecond, nil)
	rec.RecordAttempt(EndpointPlayByPlay, 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot(EndpointPlayByPlay)
	if snap.Attempts != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if other := rec.Snapshot(EndpointSchedule); other.Attempts != 0 {
		t.Fatalf("expected schedule stats to be empty, got %+v", other)
	}
}

func TestRecorderTracksRetries(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRetry(EndpointSchedule, 500*time.Millisecond)
	rec.RecordRetry(EndpointSchedule, 0)

	snap := rec.Snapshot(EndpointSchedule)
	if snap.Retries != 2 {
		t.Fatalf("expected 2 retries, got %d", snap.Retries)
	}
	if snap.LastRetryWait != 500*time.Millisecond {
		t.Fatalf("expected last wait to be 500ms, got %s", snap.LastRetryWait)
	}
}

func TestRecorderTracksOutcomesAndSeasons(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOutcome("fetched")
	rec.RecordOutcome("fetched")
	rec.RecordOutcome("not_found")
	rec.RecordSeason("20222023", 2, 1, time.Second)

	if got := rec.Outcomes("fetched"); got != 2 {
		t.Fatalf("expected 2 fetched, got %d", got)
	}
	if got := rec.Outcomes("not_found"); got != 1 {
		t.Fatalf("expected 1 not_found, got %d", got)
	}
	if got := rec.Seasons(); got != 1 {
		t.Fatalf("expected 1 season, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordAttempt(EndpointSchedule, time.Millisecond, nil)
	rec.RecordRetry(EndpointSchedule, time.Millisecond)
	rec.RecordOutcome("fetched")
	rec.RecordSeason("20222023", 0, 0, 0)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if snap := rec.Snapshot(EndpointSchedule); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
	if rec.Outcomes("fetched") != 0 || rec.Seasons() != 0 {
		t.Fatal("expected zero counts from nil recorder")
	}
}
