package nhlapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nhl-playbyplay/internal/logging"
)

// resolveHTTPClient returns a client resty may configure freely. A caller's
// client is copied so its own Timeout and settings stay untouched.
func resolveHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client == nil {
		return &http.Client{Timeout: timeout}
	}
	clone := *client
	clone.Timeout = timeout
	return &clone
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

func resolveMaxRetries(max int) int {
	if max <= 0 {
		return DefaultMaxRetries
	}
	return max
}

func resolveInitialBackoff(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultInitialBackoff
	}
	return d
}

// restyLogger routes resty's internal messages through slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	logging.Error(l.logger, "resty", fmt.Errorf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	logging.Warn(l.logger, fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	logging.Debug(l.logger, fmt.Sprintf(format, v...))
}
