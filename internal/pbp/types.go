package pbp

// Game is the subset of the play-by-play payload the summary reads.
type Game struct {
	ID          int64        `json:"id"`
	Season      int          `json:"season"`
	GameType    int          `json:"gameType"`
	GameDate    string       `json:"gameDate"`
	HomeTeam    Team         `json:"homeTeam"`
	AwayTeam    Team         `json:"awayTeam"`
	Plays       []Play       `json:"plays"`
	RosterSpots []RosterSpot `json:"rosterSpots"`
	Roster      []RosterSpot `json:"roster"`
	PlayerList  []RosterSpot `json:"playerList"`
}

type LocalizedString struct {
	Default string `json:"default"`
}

type Team struct {
	ID         *int            `json:"id"`
	Abbrev     string          `json:"abbrev"`
	CommonName LocalizedString `json:"commonName"`
}

type RosterSpot struct {
	PlayerID  int64           `json:"playerId"`
	TeamID    int             `json:"teamId"`
	FirstName LocalizedString `json:"firstName"`
	LastName  LocalizedString `json:"lastName"`
}

type PeriodDescriptor struct {
	Number int `json:"number"`
}

type Play struct {
	EventID          int              `json:"eventId"`
	TypeDescKey      string           `json:"typeDescKey"`
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     string           `json:"timeInPeriod"`
	Details          PlayDetails      `json:"details"`
}

type PlayDetails struct {
	XCoord           *float64 `json:"xCoord"`
	YCoord           *float64 `json:"yCoord"`
	EventOwnerTeamID *int     `json:"eventOwnerTeamId"`
	ScoringPlayerID  *int64   `json:"scoringPlayerId"`
	Assist1PlayerID  *int64   `json:"assist1PlayerId"`
	Assist2PlayerID  *int64   `json:"assist2PlayerId"`
	ShootingPlayerID *int64   `json:"shootingPlayerId"`
	AwayScore        *int     `json:"awayScore"`
	HomeScore        *int     `json:"homeScore"`
}

const (
	EventGoal       = "goal"
	EventShotOnGoal = "shot-on-goal"
)
