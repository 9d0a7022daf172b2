package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/pbp"
	"nhl-playbyplay/internal/season"
)

// NewTable returns a rounded table writer mirrored to w.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Seasons renders one row per season summary plus a totals footer.
func Seasons(w io.Writer, summaries []season.Summary) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"Season", "Strategy", "Total IDs", "Saved", "Failed", "Cached", "Not found", "Exhausted", "Success rate"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Season.String(),
			string(s.Strategy),
			s.TotalIDs,
			s.Saved,
			s.Failed,
			s.CacheHits,
			s.NotFound,
			s.Exhausted,
			percent(s.SuccessRate()),
		})
	}
	if len(summaries) > 1 {
		total := season.Totals(summaries)
		t.AppendFooter(table.Row{"Total", "", total.TotalIDs, total.Saved, total.Failed, total.CacheHits, total.NotFound, total.Exhausted, percent(total.SuccessRate())})
	}
	t.Render()
}

// Game renders the game header and its listed goal events.
func Game(w io.Writer, s pbp.GameSummary) {
	header := NewTable(w)
	header.SetTitle(fmt.Sprintf("Game %d", s.GameID))
	header.AppendRows([]table.Row{
		{"Date", s.Date},
		{"Teams", fmt.Sprintf("%s @ %s", s.AwayTeam, s.HomeTeam)},
		{"Total events", s.TotalEvents},
		{"Shots on goal", s.ShotsOnGoal},
		{"Goals", s.Goals},
	})
	header.Render()

	if len(s.GoalEvents) == 0 {
		fmt.Fprintln(w, "No goals recorded in this game.")
		return
	}

	goals := NewTable(w)
	goals.AppendHeader(table.Row{"#", "Event", "Team", "Scorer", "Assists", "Period", "Time", "Coordinates", "Score"})
	for i, g := range s.GoalEvents {
		goals.AppendRow(table.Row{
			i + 1,
			g.EventID,
			g.Team,
			g.Scorer,
			joinAssists(g.Assists),
			period(g.Period),
			orUnknown(g.Time),
			coords(g.X, g.Y),
			score(g.AwayScore, g.HomeScore),
		})
	}
	goals.Render()
}

// Cache renders cached game counts and sizes grouped by season.
func Cache(w io.Writer, entries []cache.Entry) {
	type group struct {
		count int
		bytes uint64
	}
	groups := make(map[nhl.Season]*group)
	var total group
	for _, e := range entries {
		s := e.ID.Season()
		g, ok := groups[s]
		if !ok {
			g = &group{}
			groups[s] = g
		}
		g.count++
		g.bytes += uint64(e.Size)
		total.count++
		total.bytes += uint64(e.Size)
	}

	seasons := make([]nhl.Season, 0, len(groups))
	for s := range groups {
		seasons = append(seasons, s)
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i] < seasons[j] })

	t := NewTable(w)
	t.AppendHeader(table.Row{"Season", "Games", "Size"})
	for _, s := range seasons {
		t.AppendRow(table.Row{s.String(), groups[s].count, humanize.Bytes(groups[s].bytes)})
	}
	t.AppendFooter(table.Row{"Total", total.count, humanize.Bytes(total.bytes)})
	t.Render()
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func joinAssists(assists []string) string {
	switch len(assists) {
	case 0:
		return "-"
	case 1:
		return assists[0]
	default:
		return assists[0] + ", " + assists[1]
	}
}

func period(n int) string {
	if n <= 0 {
		return "?"
	}
	return fmt.Sprint(n)
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func coords(x, y *float64) string {
	return fmt.Sprintf("(%s, %s)", num(x), num(y))
}

func num(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%g", *v)
}

func score(away, home *int) string {
	a, h := "?", "?"
	if away != nil {
		a = fmt.Sprint(*away)
	}
	if home != nil {
		h = fmt.Sprint(*home)
	}
	return a + " - " + h
}
