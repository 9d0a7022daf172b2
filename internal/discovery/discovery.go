package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/logging"
)

// ErrNoGameTypes is returned when discovery is asked for an empty type list.
var ErrNoGameTypes = errors.New("discovery: no game types requested")

// Strategy names the source of a discovered id list.
type Strategy string

const (
	StrategySchedule Strategy = "schedule"
	StrategyFallback Strategy = "fallback"
)

// ScheduleSource fetches the raw schedule document for a season.
type ScheduleSource interface {
	FetchSchedule(ctx context.Context, season nhl.Season) (json.RawMessage, error)
}

// Discovery is the ordered candidate list for one season.
type Discovery struct {
	Season   nhl.Season
	IDs      []nhl.GameID
	Strategy Strategy
}

// Discoverer produces candidate game ids, preferring the schedule and falling
// back to a deterministic range.
type Discoverer struct {
	source ScheduleSource
	logger *slog.Logger
}

// NewDiscoverer builds a discoverer; a nil source always uses the fallback range.
func NewDiscoverer(source ScheduleSource, logger *slog.Logger) *Discoverer {
	return &Discoverer{source: source, logger: logger}
}

// DiscoverIDs returns the candidate ids for season restricted to types.
// Schedule failures are logged and absorbed; only bad input is an error.
func (d *Discoverer) DiscoverIDs(ctx context.Context, season nhl.Season, types []nhl.GameType) (Discovery, error) {
	season, err := nhl.ParseSeason(string(season))
	if err != nil {
		return Discovery{}, err
	}
	if len(types) == 0 {
		return Discovery{}, ErrNoGameTypes
	}
	logger := logging.FromContext(ctx, d.logger)

	if ids := d.fromSchedule(ctx, season, types, logger); len(ids) > 0 {
		logging.Info(logger, "discovered game ids",
			logging.FieldSeason, season.String(),
			logging.FieldStrategy, string(StrategySchedule),
			logging.FieldCount, len(ids),
		)
		return Discovery{Season: season, IDs: ids, Strategy: StrategySchedule}, nil
	}
	if err := ctx.Err(); err != nil {
		return Discovery{}, fmt.Errorf("discover %s: %w", season, err)
	}

	ids := FallbackIDs(season, types, logger)
	logging.Info(logger, "discovered game ids",
		logging.FieldSeason, season.String(),
		logging.FieldStrategy, string(StrategyFallback),
		logging.FieldCount, len(ids),
	)
	return Discovery{Season: season, IDs: ids, Strategy: StrategyFallback}, nil
}

func (d *Discoverer) fromSchedule(ctx context.Context, season nhl.Season, types []nhl.GameType, logger *slog.Logger) []nhl.GameID {
	if d.source == nil {
		return nil
	}
	payload, err := d.source.FetchSchedule(ctx, season)
	if err != nil {
		logging.Warn(logger, "schedule unavailable", logging.FieldSeason, season.String(), "err", err)
		return nil
	}
	ids, err := ScanScheduleIDs(payload)
	if err != nil {
		logging.Warn(logger, "schedule unreadable", logging.FieldSeason, season.String(), "err", err)
		return nil
	}
	return FilterByType(ids, types)
}
