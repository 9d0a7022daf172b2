package nhlapi

import "time"

const (
	DefaultBaseURL        = "https://api-web.nhle.com/v1"
	DefaultTimeout        = 20 * time.Second
	DefaultMaxRetries     = 3
	DefaultInitialBackoff = 500 * time.Millisecond

	backoffMultiplier = 2
	errorBodyLimit    = 512
	userAgent         = "nhl-playbyplay"
)

var retryableStatus = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}
