package nhl

import "fmt"

// GameType is the two-digit code embedded in every game identifier.
type GameType string

const (
	GameTypePreseason GameType = "01"
	GameTypeRegular   GameType = "02"
	GameTypePlayoffs  GameType = "03"
	GameTypeAllStar   GameType = "04"
)

const (
	// regularSeasonRuleChangeYear is the first season start year with the shorter regular-season cap.
	regularSeasonRuleChangeYear = 2020

	regularCapBeforeChange = 1300
	regularCapAfterChange  = 1275
	playoffCap             = 400
)

// DefaultGameTypes are fetched when no types are configured.
var DefaultGameTypes = []GameType{GameTypeRegular, GameTypePlayoffs}

// ParseGameType validates a two-digit game type code.
func ParseGameType(raw string) (GameType, error) {
	switch t := GameType(raw); t {
	case GameTypePreseason, GameTypeRegular, GameTypePlayoffs, GameTypeAllStar:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGameType, raw)
	}
}

// ParseGameTypes validates a list of game type codes, dropping duplicates while keeping order.
func ParseGameTypes(raw []string) ([]GameType, error) {
	out := make([]GameType, 0, len(raw))
	seen := make(map[GameType]struct{}, len(raw))
	for _, r := range raw {
		t, err := ParseGameType(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

// String returns a readable name for logs and reports.
func (t GameType) String() string {
	switch t {
	case GameTypePreseason:
		return "preseason"
	case GameTypeRegular:
		return "regular"
	case GameTypePlayoffs:
		return "playoffs"
	case GameTypeAllStar:
		return "all-star"
	default:
		return string(t)
	}
}

// SequenceCap returns the highest sequence number worth trying for this type in the given
// season, and false when the type has no deterministic range.
func (t GameType) SequenceCap(season Season) (int, bool) {
	switch t {
	case GameTypeRegular:
		if season.StartYear() < regularSeasonRuleChangeYear {
			return regularCapBeforeChange, true
		}
		return regularCapAfterChange, true
	case GameTypePlayoffs:
		return playoffCap, true
	default:
		return 0, false
	}
}
