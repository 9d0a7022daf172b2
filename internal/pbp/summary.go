package pbp

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// DefaultGoalEvents is how many goals a summary lists.
	DefaultGoalEvents = 3

	unknown   = "Unknown"
	noAssist  = "-"
	notListed = "N/A"
)

// GameSummary is a compact view of one game.
type GameSummary struct {
	GameID      int64       `json:"game_id"`
	Date        string      `json:"date"`
	AwayTeam    string      `json:"away_team"`
	HomeTeam    string      `json:"home_team"`
	TotalEvents int         `json:"total_events"`
	ShotsOnGoal int         `json:"shots_on_goal"`
	Goals       int         `json:"goals"`
	GoalEvents  []GoalEvent `json:"goal_events"`
}

// GoalEvent describes one goal with names resolved.
type GoalEvent struct {
	EventID   int      `json:"event_id"`
	Team      string   `json:"team"`
	Scorer    string   `json:"scorer"`
	Assists   []string `json:"assists"`
	Period    int      `json:"period,omitempty"`
	Time      string   `json:"time,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	AwayScore *int     `json:"away_score,omitempty"`
	HomeScore *int     `json:"home_score,omitempty"`
}

// Decode parses a raw play-by-play payload.
func Decode(payload []byte) (Game, error) {
	var g Game
	if err := json.Unmarshal(payload, &g); err != nil {
		return Game{}, fmt.Errorf("decode play-by-play: %w", err)
	}
	return g, nil
}

// Players returns the first non-empty roster list; payloads have used
// rosterSpots, roster and playerList over time.
func (g Game) Players() []RosterSpot {
	for _, list := range [][]RosterSpot{g.RosterSpots, g.Roster, g.PlayerList} {
		if len(list) > 0 {
			return list
		}
	}
	return nil
}

// PlayerNames maps player ids to "First Last".
func (g Game) PlayerNames() map[int64]string {
	names := make(map[int64]string)
	for _, p := range g.Players() {
		if p.PlayerID == 0 {
			continue
		}
		names[p.PlayerID] = strings.TrimSpace(p.FirstName.Default + " " + p.LastName.Default)
	}
	return names
}

// TeamNames maps the two team ids to their common names.
func (g Game) TeamNames() map[int]string {
	names := make(map[int]string, 2)
	for _, t := range []Team{g.HomeTeam, g.AwayTeam} {
		if t.ID != nil {
			names[*t.ID] = teamName(t)
		}
	}
	return names
}

// Summarize builds a GameSummary listing at most maxGoals goal events.
func Summarize(g Game, maxGoals int) GameSummary {
	if maxGoals < 0 {
		maxGoals = DefaultGoalEvents
	}
	players := g.PlayerNames()
	teams := g.TeamNames()

	date := g.GameDate
	if date == "" {
		date = notListed
	}
	summary := GameSummary{
		GameID:      g.ID,
		Date:        date,
		AwayTeam:    teamName(g.AwayTeam),
		HomeTeam:    teamName(g.HomeTeam),
		TotalEvents: len(g.Plays),
		GoalEvents:  []GoalEvent{},
	}

	for _, p := range g.Plays {
		switch p.TypeDescKey {
		case EventShotOnGoal:
			summary.ShotsOnGoal++
		case EventGoal:
			summary.Goals++
			if len(summary.GoalEvents) < maxGoals {
				summary.GoalEvents = append(summary.GoalEvents, goalEvent(p, players, teams))
			}
		}
	}
	return summary
}

func goalEvent(p Play, players map[int64]string, teams map[int]string) GoalEvent {
	d := p.Details
	return GoalEvent{
		EventID: p.EventID,
		Team:    lookupTeam(teams, d.EventOwnerTeamID),
		Scorer:  lookupScorer(players, d.ScoringPlayerID),
		Assists: []string{
			lookupAssist(players, d.Assist1PlayerID),
			lookupAssist(players, d.Assist2PlayerID),
		},
		Period:    p.PeriodDescriptor.Number,
		Time:      p.TimeInPeriod,
		X:         d.XCoord,
		Y:         d.YCoord,
		AwayScore: d.AwayScore,
		HomeScore: d.HomeScore,
	}
}

func teamName(t Team) string {
	if t.CommonName.Default == "" {
		return unknown
	}
	return t.CommonName.Default
}

func lookupTeam(teams map[int]string, id *int) string {
	if id == nil {
		return unknown
	}
	if name, ok := teams[*id]; ok {
		return name
	}
	return fmt.Sprintf("%s (ID %d)", unknown, *id)
}

func lookupScorer(players map[int64]string, id *int64) string {
	if id == nil {
		return unknown
	}
	if name, ok := players[*id]; ok {
		return name
	}
	return fmt.Sprintf("%s (ID %d)", unknown, *id)
}

func lookupAssist(players map[int64]string, id *int64) string {
	if id == nil {
		return noAssist
	}
	if name, ok := players[*id]; ok {
		return name
	}
	return noAssist
}
