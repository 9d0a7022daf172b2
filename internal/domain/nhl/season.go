package nhl

import (
	"fmt"
	"strconv"
)

// Season is an eight-digit code pairing two consecutive years, e.g. "20222023".
type Season string

// KnownSeasons is the default download range.
var KnownSeasons = []Season{
	"20162017",
	"20172018",
	"20182019",
	"20192020",
	"20202021",
	"20212022",
	"20222023",
	"20232024",
	"20242025",
	"20252026",
}

// NewSeason builds the season starting in the given year.
func NewSeason(startYear int) (Season, error) {
	if startYear < 1000 || startYear > 9998 {
		return "", fmt.Errorf("%w: start year %d", ErrInvalidSeason, startYear)
	}
	return Season(fmt.Sprintf("%04d%04d", startYear, startYear+1)), nil
}

// ParseSeason accepts either the eight-digit form ("20192020") or a bare start year ("2019").
func ParseSeason(raw string) (Season, error) {
	if !isDigits(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
	}
	switch len(raw) {
	case 4:
		year, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
		}
		return NewSeason(year)
	case 8:
		start, err1 := strconv.Atoi(raw[:4])
		end, err2 := strconv.Atoi(raw[4:])
		if err1 != nil || err2 != nil || end != start+1 {
			return "", fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
		}
		return Season(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
	}
}

// StartYear returns the first calendar year of the season.
func (s Season) StartYear() int {
	if len(s) < 4 {
		return 0
	}
	year, err := strconv.Atoi(string(s[:4]))
	if err != nil {
		return 0
	}
	return year
}

// Prefix is the leading four digits shared by every game identifier of the season.
func (s Season) Prefix() string {
	if len(s) < 4 {
		return ""
	}
	return string(s[:4])
}

func (s Season) String() string {
	return string(s)
}

// SeasonRange lists every season from..to inclusive, in order.
func SeasonRange(from, to Season) ([]Season, error) {
	start, end := from.StartYear(), to.StartYear()
	if start == 0 || end == 0 {
		return nil, fmt.Errorf("%w: range %q..%q", ErrInvalidSeason, from, to)
	}
	if start > end {
		return nil, fmt.Errorf("%w: range %q..%q is reversed", ErrInvalidSeason, from, to)
	}
	out := make([]Season, 0, end-start+1)
	for year := start; year <= end; year++ {
		s, err := NewSeason(year)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ResolveRange parses optional from/to bounds. Empty bounds default to the first and last
// known seasons.
func ResolveRange(from, to string) ([]Season, error) {
	start := KnownSeasons[0]
	end := KnownSeasons[len(KnownSeasons)-1]
	if from != "" {
		s, err := ParseSeason(from)
		if err != nil {
			return nil, err
		}
		start = s
	}
	if to != "" {
		s, err := ParseSeason(to)
		if err != nil {
			return nil, err
		}
		end = s
	}
	return SeasonRange(start, end)
}
