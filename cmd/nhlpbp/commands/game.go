package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/pbp"
	"nhl-playbyplay/internal/report"
)

func (c *CLI) newGameCmd() *cobra.Command {
	var (
		force  bool
		goals  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "game <id>",
		Short: "Fetch one game and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := nhl.ParseGameID(args[0])
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := c.buildApp(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close(context.WithoutCancel(ctx))

			payload, outcome, err := a.fetcher.LoadGame(ctx, id, force)
			if err != nil {
				return err
			}
			logging.Info(a.logger, "game loaded", logging.FieldGameID, id.String(), logging.FieldOutcome, string(outcome))

			game, err := pbp.Decode(payload)
			if err != nil {
				return fmt.Errorf("decode %s: %w", id, err)
			}
			summary := pbp.Summarize(game, goals)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			report.Game(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "refetch even when cached")
	cmd.Flags().IntVar(&goals, "goals", pbp.DefaultGoalEvents, "number of goal events to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}
