package config

import "time"

const (
	envConfigFile     = "NHL_CONFIG_FILE"
	envBaseURL        = "NHL_API_BASE_URL"
	envTimeout        = "NHL_API_TIMEOUT"
	envMaxRetries     = "NHL_API_MAX_RETRIES"
	envInitialBackoff = "NHL_API_INITIAL_BACKOFF"
	envRateLimit      = "NHL_RATE_LIMIT"
	envRawDir         = "NHL_RAW_DIR"
	envFromSeason     = "NHL_FROM_SEASON"
	envToSeason       = "NHL_TO_SEASON"
	envGameTypes      = "NHL_GAME_TYPES"
	envMaxGames       = "NHL_MAX_GAMES"
	envForce          = "NHL_FORCE"
	envPort           = "PORT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"

	defaultEnvFile        = ".env"
	defaultBaseURL        = "https://api-web.nhle.com/v1"
	defaultTimeout        = 20 * time.Second
	defaultMaxRetries     = 3
	defaultInitialBackoff = 500 * time.Millisecond
	// Spacing between upstream requests.
	defaultRateLimit   = 250 * time.Millisecond
	defaultRawDir      = "data/raw"
	defaultMaxGames    = -1
	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-playbyplay"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

var defaultGameTypes = []string{"02", "03"}
