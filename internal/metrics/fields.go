package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrEndpoint = "endpoint"
	AttrOutcome  = "outcome"
	AttrSeason   = "season"
)

// Endpoint labels for upstream calls.
const (
	EndpointSchedule   = "schedule"
	EndpointPlayByPlay = "play-by-play"
)
