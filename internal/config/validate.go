package config

import (
	"errors"
	"fmt"
	"strings"

	"nhl-playbyplay/internal/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate rejects configurations the commands cannot run with.
func (c Config) Validate() error {
	var problems []error

	if strings.TrimSpace(c.API.BaseURL) == "" {
		problems = append(problems, errors.New("api base url is empty"))
	}
	if c.API.Timeout <= 0 {
		problems = append(problems, fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout))
	}
	if c.API.MaxRetries <= 0 {
		problems = append(problems, fmt.Errorf("api max retries must be positive, got %d", c.API.MaxRetries))
	}
	if c.API.InitialBackoff <= 0 {
		problems = append(problems, fmt.Errorf("api initial backoff must be positive, got %s", c.API.InitialBackoff))
	}
	if c.API.RateLimit < 0 {
		problems = append(problems, fmt.Errorf("rate limit must not be negative, got %s", c.API.RateLimit))
	}
	if strings.TrimSpace(c.Cache.RawDir) == "" {
		problems = append(problems, errors.New("cache raw dir is empty"))
	}
	if _, err := c.Fetch.Seasons(); err != nil {
		problems = append(problems, err)
	}
	if len(c.Fetch.GameTypes) == 0 {
		problems = append(problems, errors.New("at least one game type is required"))
	} else if _, err := c.Fetch.Types(); err != nil {
		problems = append(problems, err)
	}
	if c.Fetch.MaxGames < -1 {
		problems = append(problems, fmt.Errorf("max games must be -1 (no limit) or >= 0, got %d", c.Fetch.MaxGames))
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON, logging.FormatPretty:
	default:
		problems = append(problems, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
