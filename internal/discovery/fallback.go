package discovery

import (
	"log/slog"

	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/logging"
)

// FallbackIDs enumerates sequence 1..cap for each type in request order.
// Types without a known cap are skipped with a warning.
func FallbackIDs(season nhl.Season, types []nhl.GameType, logger *slog.Logger) []nhl.GameID {
	var ids []nhl.GameID
	for _, t := range types {
		limit, ok := t.SequenceCap(season)
		if !ok {
			logging.Warn(logger, "no fallback range for game type",
				logging.FieldSeason, season.String(),
				"game_type", string(t),
			)
			continue
		}
		for seq := 1; seq <= limit; seq++ {
			id, err := nhl.NewGameID(season, t, seq)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}
