package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"nhl-playbyplay/internal/config"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/report"
)

type fetchOptions struct {
	fromSeason string
	toSeason   string
	gameTypes  []string
	maxGames   int
	rateLimit  time.Duration
	force      bool
}

func (c *CLI) newFetchCmd() *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download play-by-play for a range of seasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyFetchFlags(cmd, opts, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runFetch(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.fromSeason, "from-season", "", "first season, e.g. 20162017 (default first known season)")
	flags.StringVar(&opts.toSeason, "to-season", "", "last season, e.g. 20252026 (default last known season)")
	flags.StringSliceVar(&opts.gameTypes, "game-types", nil, "game type codes, e.g. 02,03")
	flags.IntVar(&opts.maxGames, "max-games", 0, "stop each season after this many newly saved games (-1 for no cap)")
	flags.DurationVar(&opts.rateLimit, "rate-limit", 0, "minimum interval between upstream requests, e.g. 250ms")
	flags.BoolVar(&opts.force, "force", false, "refetch games even when cached")

	return cmd
}

func applyFetchFlags(cmd *cobra.Command, opts fetchOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("from-season") {
		cfg.Fetch.FromSeason = opts.fromSeason
	}
	if flags.Changed("to-season") {
		cfg.Fetch.ToSeason = opts.toSeason
	}
	if flags.Changed("game-types") {
		cfg.Fetch.GameTypes = opts.gameTypes
	}
	if flags.Changed("max-games") {
		cfg.Fetch.MaxGames = opts.maxGames
	}
	if flags.Changed("force") {
		cfg.Fetch.Force = opts.force
	}
	if flags.Changed("rate-limit") {
		cfg.API.RateLimit = opts.rateLimit
	}
}

func (c *CLI) runFetch(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	seasons, err := cfg.Fetch.Seasons()
	if err != nil {
		return err
	}
	types, err := cfg.Fetch.Types()
	if err != nil {
		return err
	}

	a, err := c.buildApp(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close(context.WithoutCancel(ctx))

	ctx = logging.WithLogger(ctx, a.logger)
	logging.Info(a.logger, "fetch starting",
		"from", seasons[0].String(),
		"to", seasons[len(seasons)-1].String(),
		logging.FieldGameTypes, cfg.Fetch.GameTypes,
		"max_games", cfg.Fetch.MaxGames,
		"raw_dir", a.store.Root(),
	)

	summaries, err := a.runner.FetchSeasons(ctx, seasons, types, cfg.Fetch.MaxGames)
	if len(summaries) > 0 {
		report.Seasons(cmd.OutOrStdout(), summaries)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logging.Warn(a.logger, "fetch interrupted; rerun to resume from the cache")
		}
		return err
	}
	return nil
}
