package nhl

// FetchOutcome describes what happened to one identifier during a fetch.
type FetchOutcome string

const (
	OutcomeCacheHit         FetchOutcome = "cache_hit"
	OutcomeFetched          FetchOutcome = "fetched"
	OutcomeNotFound         FetchOutcome = "not_found"
	OutcomeRetriesExhausted FetchOutcome = "retries_exhausted"
)

// Saved reports whether the outcome wrote a new cache entry.
func (o FetchOutcome) Saved() bool {
	return o == OutcomeFetched
}
