package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/report"
)

func (c *CLI) newListCmd() *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:   "list [season]",
		Short: "List cached games, optionally for one season",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var season nhl.Season
			if len(args) == 1 {
				s, err := nhl.ParseSeason(args[0])
				if err != nil {
					return err
				}
				season = s
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			entries, err := cache.NewFSStore(cfg.Cache.RawDir).Entries(season)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showIDs {
				for _, e := range entries {
					_, _ = fmt.Fprintln(out, e.ID.String())
				}
			}
			report.Cache(out, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "print every cached game id before the totals")
	return cmd
}
