// Package commands implements the nhlpbp command line.
package commands

import (
	"context"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"nhl-playbyplay/internal/config"
)

// Version is stamped at build time.
var Version = "dev"

// CLI is the nhlpbp command tree.
type CLI struct {
	rootCmd    *cobra.Command
	global     globalOptions
	httpClient *http.Client
}

type globalOptions struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
	rawDir     string
}

// Option customizes a CLI.
type Option func(*CLI)

// WithHTTPClient routes upstream requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *CLI) { c.httpClient = hc }
}

// New builds the command tree.
func New(opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nhlpbp",
		Short:         "Download and cache NHL play-by-play data",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	c := &CLI{rootCmd: rootCmd}
	for _, opt := range opts {
		opt(c)
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.global.configFile, "config", "", "YAML config file (default $NHL_CONFIG_FILE)")
	flags.StringVar(&c.global.envFile, "env-file", "", "dotenv file to load (default .env)")
	flags.StringVar(&c.global.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&c.global.logFormat, "log-format", "", "log format: text, json, pretty")
	flags.StringVar(&c.global.rawDir, "raw-dir", "", "cache directory for raw payloads")

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newGameCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// loadConfig layers the persistent flags over config.Load.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: c.global.configFile,
		EnvFile:    c.global.envFile,
	})
	if err != nil {
		return config.Config{}, err
	}
	if c.global.logLevel != "" {
		cfg.Log.Level = c.global.logLevel
	}
	if c.global.logFormat != "" {
		cfg.Log.Format = c.global.logFormat
	}
	if c.global.rawDir != "" {
		cfg.Cache.RawDir = c.global.rawDir
	}
	return cfg, nil
}
