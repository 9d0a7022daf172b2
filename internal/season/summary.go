package season

import (
	"time"

	"nhl-playbyplay/internal/discovery"
	"nhl-playbyplay/internal/domain/nhl"
)

// Summary aggregates one season run.
type Summary struct {
	Season   nhl.Season
	Types    []nhl.GameType
	Strategy discovery.Strategy
	TotalIDs int
	// Saved counts newly fetched games; Failed counts every other outcome.
	Saved  int
	Failed int

	CacheHits int
	NotFound  int
	Exhausted int

	Duration time.Duration
}

// SuccessRate is Saved as a percentage of TotalIDs, clamped to [0,100].
func (s Summary) SuccessRate() float64 {
	if s.TotalIDs <= 0 {
		return 0
	}
	rate := float64(s.Saved) / float64(s.TotalIDs) * 100
	switch {
	case rate < 0:
		return 0
	case rate > 100:
		return 100
	default:
		return rate
	}
}

func (s *Summary) add(outcome nhl.FetchOutcome) {
	if outcome.Saved() {
		s.Saved++
		return
	}
	s.Failed++
	switch outcome {
	case nhl.OutcomeCacheHit:
		s.CacheHits++
	case nhl.OutcomeNotFound:
		s.NotFound++
	case nhl.OutcomeRetriesExhausted:
		s.Exhausted++
	}
}

// Totals sums a set of summaries into one row.
func Totals(summaries []Summary) Summary {
	var total Summary
	for _, s := range summaries {
		total.TotalIDs += s.TotalIDs
		total.Saved += s.Saved
		total.Failed += s.Failed
		total.CacheHits += s.CacheHits
		total.NotFound += s.NotFound
		total.Exhausted += s.Exhausted
		total.Duration += s.Duration
	}
	return total
}
