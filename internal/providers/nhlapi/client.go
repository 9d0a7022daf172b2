package nhlapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/metrics"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	// Timer replaces the real backoff sleep; nil uses wall-clock timers.
	Timer backoff.Timer
}

// Client issues GET requests against the NHL web API with retry and backoff.
type Client struct {
	baseURL        string
	http           *resty.Client
	maxRetries     int
	initialBackoff time.Duration
	logger         *slog.Logger
	recorder       *metrics.Recorder
	timer          backoff.Timer
	now            func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := resolveTimeout(cfg.Timeout)
	rc := resty.NewWithClient(resolveHTTPClient(cfg.HTTPClient, timeout)).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetLogger(restyLogger{logger: cfg.Logger})

	return &Client{
		baseURL:        normalizeBaseURL(cfg.BaseURL),
		http:           rc,
		maxRetries:     resolveMaxRetries(cfg.MaxRetries),
		initialBackoff: resolveInitialBackoff(cfg.InitialBackoff),
		logger:         cfg.Logger,
		recorder:       cfg.Recorder,
		timer:          cfg.Timer,
		now:            time.Now,
	}
}

// BaseURL returns the normalized upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PlayByPlayURL returns the play-by-play endpoint for one game.
func (c *Client) PlayByPlayURL(id nhl.GameID) string {
	return fmt.Sprintf("%s/gamecenter/%s/play-by-play", c.baseURL, id)
}

// ScheduleURL returns the full-season schedule endpoint.
func (c *Client) ScheduleURL(season nhl.Season) string {
	return fmt.Sprintf("%s/schedule/season/%s", c.baseURL, season)
}

// FetchPlayByPlay retrieves the raw play-by-play payload for one game.
func (c *Client) FetchPlayByPlay(ctx context.Context, id nhl.GameID) (json.RawMessage, error) {
	return c.request(ctx, metrics.EndpointPlayByPlay, c.PlayByPlayURL(id))
}

// FetchSchedule retrieves the raw season schedule payload.
func (c *Client) FetchSchedule(ctx context.Context, season nhl.Season) (json.RawMessage, error) {
	return c.request(ctx, metrics.EndpointSchedule, c.ScheduleURL(season))
}

// RequestJSON performs a GET with retries and returns the body once it is
// known to be valid JSON.
//
// Status 429/500/502/503/504 and transport errors are retried with exponential
// backoff (InitialBackoff, doubling, no jitter) up to MaxRetries attempts in
// total. Any other non-200 status fails immediately with *StatusError;
// exhausting the attempts yields *RetryExhaustedError.
func (c *Client) RequestJSON(ctx context.Context, url string) (json.RawMessage, error) {
	return c.request(ctx, endpointFor(url), url)
}

func (c *Client) request(ctx context.Context, endpoint, url string) (json.RawMessage, error) {
	logger := logging.FromContext(ctx, c.logger)

	var (
		payload   json.RawMessage
		attempts  int
		permanent bool
		lastErr   error
	)

	operation := func() error {
		attempts++
		start := c.now()
		resp, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			c.recorder.RecordAttempt(endpoint, c.now().Sub(start), err)
			if ctxErr := ctx.Err(); ctxErr != nil {
				permanent = true
				return backoff.Permanent(ctxErr)
			}
			lastErr = err
			return err
		}

		status := resp.StatusCode()
		if status == http.StatusOK {
			body := resp.Body()
			if !json.Valid(body) {
				c.recorder.RecordAttempt(endpoint, c.now().Sub(start), ErrInvalidJSON)
				permanent = true
				return backoff.Permanent(fmt.Errorf("%w: %s", ErrInvalidJSON, url))
			}
			c.recorder.RecordAttempt(endpoint, c.now().Sub(start), nil)
			payload = json.RawMessage(body)
			return nil
		}

		statusErr := &StatusError{URL: url, StatusCode: status, Body: snippet(resp.Body())}
		c.recorder.RecordAttempt(endpoint, c.now().Sub(start), statusErr)
		lastErr = statusErr
		if statusErr.Retryable() {
			return statusErr
		}
		permanent = true
		return backoff.Permanent(statusErr)
	}

	notify := func(err error, wait time.Duration) {
		c.recorder.RecordRetry(endpoint, wait)
		logging.Warn(logger, "upstream request retry",
			logging.FieldURL, url,
			logging.FieldAttempt, attempts,
			"max_attempts", c.maxRetries,
			"wait_ms", wait.Milliseconds(),
			"err", err,
		)
	}

	err := backoff.RetryNotifyWithTimer(operation, c.newBackOff(ctx), notify, c.timer)
	if err == nil {
		return payload, nil
	}
	if permanent || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	if lastErr == nil {
		lastErr = err
	}
	logging.Warn(logger, "upstream request failed", logging.FieldURL, url, "attempts", attempts, "err", lastErr)
	return nil, &RetryExhaustedError{URL: url, Attempts: attempts, Err: lastErr}
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.initialBackoff
	expo.RandomizationFactor = 0
	expo.Multiplier = backoffMultiplier
	expo.MaxElapsedTime = 0
	expo.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(expo, uint64(c.maxRetries-1)), ctx)
}

func endpointFor(url string) string {
	if strings.Contains(url, "/schedule/") {
		return metrics.EndpointSchedule
	}
	return metrics.EndpointPlayByPlay
}

func snippet(body []byte) string {
	if len(body) > errorBodyLimit {
		body = body[:errorBodyLimit]
	}
	return strings.TrimSpace(string(body))
}
