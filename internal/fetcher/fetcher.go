package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/metrics"
	"nhl-playbyplay/internal/providers/nhlapi"
)

// DefaultRateLimit is the minimum spacing between upstream requests.
const DefaultRateLimit = 250 * time.Millisecond

// ErrGameUnavailable is returned by LoadGame when the game could not be fetched.
var ErrGameUnavailable = errors.New("fetcher: game unavailable")

// GameSource retrieves raw play-by-play payloads.
type GameSource interface {
	FetchPlayByPlay(ctx context.Context, id nhl.GameID) (json.RawMessage, error)
}

// Cache is the persistence the fetcher needs.
type Cache interface {
	Read(id nhl.GameID) (json.RawMessage, error)
	Write(id nhl.GameID, payload []byte) error
}

// Config wires a Fetcher.
type Config struct {
	Source GameSource
	Cache  Cache
	// RateLimit is the pause after each upstream request before the next may
	// start; <= 0 disables limiting.
	RateLimit time.Duration
	Logger    *slog.Logger
	Recorder  *metrics.Recorder
}

// Result is the outcome of resolving one game id.
type Result struct {
	Outcome nhl.FetchOutcome
	// Payload is set only for OutcomeFetched.
	Payload json.RawMessage
}

// Saved reports whether this call wrote a new cache entry.
func (r Result) Saved() bool {
	return r.Outcome.Saved()
}

// Fetcher resolves game ids to cached payloads, hitting the network only on a miss.
type Fetcher struct {
	source   GameSource
	cache    Cache
	limiter  *rate.Limiter
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

func New(cfg Config) *Fetcher {
	return &Fetcher{
		source:   cfg.Source,
		cache:    cfg.Cache,
		limiter:  newLimiter(cfg.RateLimit),
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		now:      time.Now,
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// pause is how long a call starting at now must wait so that it begins at
// least one interval after the previous upstream call ended.
func (f *Fetcher) pause(now time.Time) time.Duration {
	limit := f.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	missing := 1 - f.limiter.TokensAt(now)
	if missing <= 0 {
		return 0
	}
	return time.Duration(missing / float64(limit) * float64(time.Second))
}

// callEnded takes the single token at the end of a call, so the interval is
// measured from completion rather than from the start of the request.
func (f *Fetcher) callEnded(at time.Time) {
	f.limiter.ReserveN(at, 1)
}

func (f *Fetcher) awaitSlot(ctx context.Context) error {
	d := f.pause(f.now())
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchGame returns OutcomeCacheHit without network work when a valid entry
// exists and force is false. Otherwise it fetches and persists the payload.
// Upstream failures are reported through the outcome; the error is reserved
// for cache write failures and cancellation.
func (f *Fetcher) FetchGame(ctx context.Context, id nhl.GameID, force bool) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	logger := logging.FromContext(ctx, f.logger)

	if !force {
		_, err := f.cache.Read(id)
		if err == nil {
			logging.Debug(logger, "cache hit", logging.FieldGameID, id.String())
			return f.done(Result{Outcome: nhl.OutcomeCacheHit}), nil
		}
		if !errors.Is(err, cache.ErrNotCached) {
			logging.Warn(logger, "unusable cache entry, refetching", logging.FieldGameID, id.String(), "err", err)
		}
	}

	if err := f.awaitSlot(ctx); err != nil {
		return Result{}, err
	}

	payload, err := f.source.FetchPlayByPlay(ctx, id)
	f.callEnded(f.now())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		outcome := nhl.OutcomeNotFound
		if nhlapi.IsTransient(err) {
			outcome = nhl.OutcomeRetriesExhausted
		}
		logging.Debug(logger, "game not fetched",
			logging.FieldGameID, id.String(),
			logging.FieldOutcome, string(outcome),
			"err", err,
		)
		return f.done(Result{Outcome: outcome}), nil
	}

	if err := f.cache.Write(id, payload); err != nil {
		return Result{}, fmt.Errorf("persist game %s: %w", id, err)
	}
	logging.Debug(logger, "game fetched", logging.FieldGameID, id.String())
	return f.done(Result{Outcome: nhl.OutcomeFetched, Payload: payload}), nil
}

// LoadGame returns the payload for id from the cache, fetching it first when needed.
func (f *Fetcher) LoadGame(ctx context.Context, id nhl.GameID, force bool) (json.RawMessage, nhl.FetchOutcome, error) {
	res, err := f.FetchGame(ctx, id, force)
	if err != nil {
		return nil, "", err
	}
	switch res.Outcome {
	case nhl.OutcomeFetched:
		return res.Payload, res.Outcome, nil
	case nhl.OutcomeCacheHit:
		payload, err := f.cache.Read(id)
		if err != nil {
			return nil, res.Outcome, err
		}
		return payload, res.Outcome, nil
	default:
		return nil, res.Outcome, fmt.Errorf("%w: %s (%s)", ErrGameUnavailable, id, res.Outcome)
	}
}

func (f *Fetcher) done(res Result) Result {
	f.recorder.RecordOutcome(string(res.Outcome))
	return res
}
