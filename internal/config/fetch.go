package config

import (
	"nhl-playbyplay/internal/domain/nhl"
)

// FetchConfig selects what the fetch command downloads.
type FetchConfig struct {
	FromSeason string   `yaml:"from_season"`
	ToSeason   string   `yaml:"to_season"`
	GameTypes  []string `yaml:"game_types"`
	// MaxGames caps saved games per season; -1 means no cap.
	MaxGames int  `yaml:"max_games"`
	Force    bool `yaml:"force"`
}

// Seasons resolves the configured range; empty bounds default to the known seasons.
func (f FetchConfig) Seasons() ([]nhl.Season, error) {
	return nhl.ResolveRange(f.FromSeason, f.ToSeason)
}

// Types parses the configured game type codes.
func (f FetchConfig) Types() ([]nhl.GameType, error) {
	return nhl.ParseGameTypes(f.GameTypes)
}
