package season

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nhl-playbyplay/internal/discovery"
	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/fetcher"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/metrics"
)

const (
	// NoLimit disables the per-season cap on saved games.
	NoLimit = -1

	defaultProgressEvery = 50
)

// IDSource enumerates candidate game ids.
type IDSource interface {
	DiscoverIDs(ctx context.Context, season nhl.Season, types []nhl.GameType) (discovery.Discovery, error)
}

// GameFetcher resolves one game id.
type GameFetcher interface {
	FetchGame(ctx context.Context, id nhl.GameID, force bool) (fetcher.Result, error)
}

// Config wires a Runner.
type Config struct {
	IDs     IDSource
	Fetcher GameFetcher
	// Force refetches games even when cached.
	Force         bool
	ProgressEvery int
	Logger        *slog.Logger
	Recorder      *metrics.Recorder
	Now           func() time.Time
}

// Runner drives discovery and fetching across whole seasons.
type Runner struct {
	ids           IDSource
	fetcher       GameFetcher
	force         bool
	progressEvery int
	logger        *slog.Logger
	recorder      *metrics.Recorder
	now           func() time.Time
}

func NewRunner(cfg Config) *Runner {
	progress := cfg.ProgressEvery
	if progress <= 0 {
		progress = defaultProgressEvery
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		ids:           cfg.IDs,
		fetcher:       cfg.Fetcher,
		force:         cfg.Force,
		progressEvery: progress,
		logger:        cfg.Logger,
		recorder:      cfg.Recorder,
		now:           now,
	}
}

// FetchSeason enumerates and fetches one season, stopping once maxGames games
// were saved (NoLimit for no cap). A single game failing never aborts the
// season; a fatal error returns the partial summary alongside the error.
func (r *Runner) FetchSeason(ctx context.Context, season nhl.Season, types []nhl.GameType, maxGames int) (Summary, error) {
	start := r.now()
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger = logger.With(logging.FieldSeason, season.String())
	}
	summary := Summary{Season: season, Types: types}

	logging.Info(logger, "season phase", "phase", "enumerating", logging.FieldGameTypes, typeCodes(types))
	found, err := r.ids.DiscoverIDs(ctx, season, types)
	if err != nil {
		return summary, fmt.Errorf("enumerate %s: %w", season, err)
	}
	summary.Strategy = found.Strategy
	summary.TotalIDs = len(found.IDs)

	logging.Info(logger, "season phase", "phase", "iterating", logging.FieldTotal, summary.TotalIDs, "max_games", maxGames)
	err = r.iterate(ctx, logger, found.IDs, maxGames, &summary)
	summary.Duration = r.now().Sub(start)

	r.recorder.RecordSeason(season.String(), summary.Saved, summary.Failed, summary.Duration)
	logging.Info(logger, "season phase",
		"phase", "done",
		logging.FieldSaved, summary.Saved,
		logging.FieldFailed, summary.Failed,
		logging.FieldTotal, summary.TotalIDs,
		"success_rate", fmt.Sprintf("%.2f", summary.SuccessRate()),
		logging.FieldDurationMS, summary.Duration.Milliseconds(),
	)
	return summary, err
}

func (r *Runner) iterate(ctx context.Context, logger *slog.Logger, ids []nhl.GameID, maxGames int, summary *Summary) error {
	for _, id := range ids {
		if maxGames >= 0 && summary.Saved >= maxGames {
			return nil
		}
		res, err := r.fetcher.FetchGame(ctx, id, r.force)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", id, err)
		}
		summary.add(res.Outcome)
		if res.Saved() && summary.Saved%r.progressEvery == 0 {
			logging.Info(logger, "season progress", logging.FieldSaved, summary.Saved, logging.FieldGameID, id.String())
		}
	}
	return nil
}

// FetchSeasons runs FetchSeason for each season in order. On a fatal error
// the summaries gathered so far, including the partial one, are returned.
func (r *Runner) FetchSeasons(ctx context.Context, seasons []nhl.Season, types []nhl.GameType, maxGames int) ([]Summary, error) {
	out := make([]Summary, 0, len(seasons))
	for _, s := range seasons {
		summary, err := r.FetchSeason(ctx, s, types, maxGames)
		out = append(out, summary)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func typeCodes(types []nhl.GameType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
