package config

import (
	"time"
)

// Config holds runtime configuration for every command.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Cache   CacheConfig   `yaml:"cache"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig controls how the upstream API is reached.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	RateLimit      time.Duration `yaml:"rate_limit"`
}

type CacheConfig struct {
	RawDir string `yaml:"raw_dir"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadOptions names the optional files consulted by Load.
type LoadOptions struct {
	// ConfigFile is a YAML file; falls back to $NHL_CONFIG_FILE.
	ConfigFile string
	// EnvFile is a dotenv file; ".env" is tried when empty.
	EnvFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:        defaultBaseURL,
			Timeout:        defaultTimeout,
			MaxRetries:     defaultMaxRetries,
			InitialBackoff: defaultInitialBackoff,
			RateLimit:      defaultRateLimit,
		},
		Cache: CacheConfig{RawDir: defaultRawDir},
		Fetch: FetchConfig{
			GameTypes: append([]string(nil), defaultGameTypes...),
			MaxGames:  defaultMaxGames,
		},
		Server: ServerConfig{Port: defaultPort},
		Metrics: MetricsConfig{
			Enabled:      false,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		Log: LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// Load layers defaults, the dotenv file, the YAML file and the environment,
// in that order. CLI flags are applied by the caller afterwards.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	path := opts.ConfigFile
	if path == "" {
		path = envOrDefault(envConfigFile, "")
	}
	if path != "" {
		if err := loadYAMLFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = envOrDefault(envBaseURL, cfg.API.BaseURL)
	cfg.API.Timeout = durationEnvOrDefault(envTimeout, cfg.API.Timeout)
	cfg.API.MaxRetries = intEnvOrDefault(envMaxRetries, cfg.API.MaxRetries)
	cfg.API.InitialBackoff = durationEnvOrDefault(envInitialBackoff, cfg.API.InitialBackoff)
	cfg.API.RateLimit = durationEnvOrDefault(envRateLimit, cfg.API.RateLimit)

	cfg.Cache.RawDir = envOrDefault(envRawDir, cfg.Cache.RawDir)

	cfg.Fetch.FromSeason = envOrDefault(envFromSeason, cfg.Fetch.FromSeason)
	cfg.Fetch.ToSeason = envOrDefault(envToSeason, cfg.Fetch.ToSeason)
	cfg.Fetch.GameTypes = listEnvOrDefault(envGameTypes, cfg.Fetch.GameTypes)
	cfg.Fetch.MaxGames = signedIntEnvOrDefault(envMaxGames, cfg.Fetch.MaxGames)
	cfg.Fetch.Force = boolEnvOrDefault(envForce, cfg.Fetch.Force)

	cfg.Server.Port = envOrDefault(envPort, cfg.Server.Port)
	cfg.Metrics = loadMetrics(cfg.Metrics)

	cfg.Log.Level = envOrDefault(envLogLevel, cfg.Log.Level)
	cfg.Log.Format = envOrDefault(envLogFormat, cfg.Log.Format)
}
