package nhl

import (
	"fmt"
	"strconv"
)

const (
	gameIDLength = 10
	maxSequence  = 9999
)

// GameID locates one game's play-by-play resource: season start year, game type, and a
// zero-padded sequence number, e.g. "2022030411".
type GameID string

// NewGameID encodes a game identifier from its parts.
func NewGameID(season Season, gameType GameType, sequence int) (GameID, error) {
	if season.StartYear() == 0 {
		return "", fmt.Errorf("%w: season %q", ErrInvalidGameID, season)
	}
	if len(gameType) != 2 {
		return "", fmt.Errorf("%w: game type %q", ErrInvalidGameID, string(gameType))
	}
	if sequence < 1 || sequence > maxSequence {
		return "", fmt.Errorf("%w: sequence %d", ErrInvalidGameID, sequence)
	}
	return GameID(season.Prefix() + string(gameType) + fmt.Sprintf("%04d", sequence)), nil
}

// ParseGameID validates the fixed-width numeric form.
func ParseGameID(raw string) (GameID, error) {
	if !IsGameIDShape(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGameID, raw)
	}
	return GameID(raw), nil
}

// IsGameIDShape reports whether raw is a ten-digit numeric string.
func IsGameIDShape(raw string) bool {
	return len(raw) == gameIDLength && isDigits(raw)
}

// isDigits reports whether raw is non-empty and all ASCII digits.
func isDigits(raw string) bool {
	if raw == "" {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// StartYear returns the season start year encoded in the identifier.
func (id GameID) StartYear() int {
	year, _ := strconv.Atoi(string(id[:4]))
	return year
}

// Season returns the season the identifier belongs to.
func (id GameID) Season() Season {
	s, err := NewSeason(id.StartYear())
	if err != nil {
		return ""
	}
	return s
}

// Type returns the two-digit game type code.
func (id GameID) Type() GameType {
	return GameType(id[4:6])
}

// Sequence returns the sequence number within the season and type.
func (id GameID) Sequence() int {
	seq, _ := strconv.Atoi(string(id[6:]))
	return seq
}

func (id GameID) String() string {
	return string(id)
}
