package commands

import (
	"github.com/spf13/cobra"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/server"
)

func (c *CLI) newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cached games over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, cmd.ErrOrStderr())
			store := cache.NewFSStore(cfg.Cache.RawDir)
			if err := store.Check(); err != nil {
				logging.Warn(logger, "cache not readable yet", "error", err)
			}
			return server.New(cfg, store, logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port (default $PORT or 4000)")
	return cmd
}
