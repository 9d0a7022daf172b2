package nhl

import "errors"

var (
	ErrInvalidSeason   = errors.New("invalid season")
	ErrInvalidGameID   = errors.New("invalid game id")
	ErrInvalidGameType = errors.New("invalid game type")
)
