package testutil

// PlayByPlayJSON is a trimmed play-by-play payload for game 2022030411.
const PlayByPlayJSON = `{
  "id": 2022030411,
  "season": 20222023,
  "gameType": 3,
  "gameDate": "2023-06-03",
  "awayTeam": {"id": 13, "abbrev": "FLA", "commonName": {"default": "Panthers"}},
  "homeTeam": {"id": 54, "abbrev": "VGK", "commonName": {"default": "Golden Knights"}},
  "plays": [
    {"eventId": 101, "typeDescKey": "faceoff", "periodDescriptor": {"number": 1}, "timeInPeriod": "00:00"},
    {"eventId": 102, "typeDescKey": "shot-on-goal", "periodDescriptor": {"number": 1}, "timeInPeriod": "04:10",
     "details": {"xCoord": 61, "yCoord": -12, "eventOwnerTeamId": 54, "shootingPlayerId": 8475913}},
    {"eventId": 103, "typeDescKey": "goal", "periodDescriptor": {"number": 1}, "timeInPeriod": "09:20",
     "details": {"xCoord": -77, "yCoord": 3, "eventOwnerTeamId": 13, "scoringPlayerId": 8477493,
                 "assist1PlayerId": 8478055, "awayScore": 1, "homeScore": 0}},
    {"eventId": 104, "typeDescKey": "shot-on-goal", "periodDescriptor": {"number": 2}, "timeInPeriod": "01:02",
     "details": {"xCoord": 80, "yCoord": 5, "eventOwnerTeamId": 54, "shootingPlayerId": 8474565}},
    {"eventId": 105, "typeDescKey": "goal", "periodDescriptor": {"number": 2}, "timeInPeriod": "06:45",
     "details": {"xCoord": 82, "yCoord": -4, "eventOwnerTeamId": 54, "scoringPlayerId": 8474565,
                 "assist1PlayerId": 8475913, "assist2PlayerId": 8478403, "awayScore": 1, "homeScore": 1}}
  ],
  "rosterSpots": [
    {"playerId": 8477493, "teamId": 13, "firstName": {"default": "Aleksander"}, "lastName": {"default": "Barkov"}},
    {"playerId": 8478055, "teamId": 13, "firstName": {"default": "Sam"}, "lastName": {"default": "Reinhart"}},
    {"playerId": 8474565, "teamId": 54, "firstName": {"default": "Alex"}, "lastName": {"default": "Pietrangelo"}},
    {"playerId": 8475913, "teamId": 54, "firstName": {"default": "Mark"}, "lastName": {"default": "Stone"}},
    {"playerId": 8478403, "teamId": 54, "firstName": {"default": "Jack"}, "lastName": {"default": "Eichel"}}
  ]
}`

// ScheduleJSON is a schedule payload with mixed id shapes: nested objects,
// numeric and string ids, non-10-digit noise and a preseason game.
const ScheduleJSON = `{
  "season": 20222023,
  "gameWeek": [
    {"date": "2022-10-01", "games": [
      {"id": 2022010005, "gameType": 1, "awayTeam": {"id": 13}, "homeTeam": {"id": 54}}
    ]},
    {"date": "2022-10-07", "games": [
      {"id": 2022020002, "gameType": 2, "venue": {"id": 5100}},
      {"gameId": "2022020001", "gameType": 2}
    ]},
    {"date": "2023-06-03", "games": [
      {"gamePk": 2022030411, "gameType": 3, "tvBroadcasts": [{"id": 281}]}
    ]}
  ],
  "notes": [2022020999, "2022020998"]
}`

// PlayByPlayPath returns the upstream path for a game.
func PlayByPlayPath(id string) string {
	return "/v1/gamecenter/" + id + "/play-by-play"
}

// SchedulePath returns the upstream path for a season schedule.
func SchedulePath(season string) string {
	return "/v1/schedule/season/" + season
}
