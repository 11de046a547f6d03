package model

// Leaderboard sort modes for the event dashboard.
const (
	SortByPoints = "points"
	SortByMetric = "metric"
)

type LeaderboardEntry struct {
	Rank        int             `json:"rank"`
	Participant ParticipantInfo `json:"participant"`
	TotalPoints float64         `json:"totalPoints"`
}

// SpoonEntry ranks a participant by a points/gained ratio. A zero denominator
// always yields Ratio 0, never NaN or Inf.
type SpoonEntry struct {
	Participant ParticipantInfo `json:"participant"`
	Ratio       float64         `json:"ratio"`
}

type SpoonRankings struct {
	BiggestSpoons []SpoonEntry `json:"biggestSpoons"`
	MostUnlucky   []SpoonEntry `json:"mostUnlucky"`
}

// DayRow is one calendar day of the competition chart, keyed by participant
// nickname. Every participant has a value for every day, zero included.
type DayRow struct {
	Day    string             `json:"day"`
	Points map[string]float64 `json:"points"`
}

// EventDashboard is the full view-model for a single competition page.
type EventDashboard struct {
	Competition *Competition       `json:"competition"`
	Series      []DayRow           `json:"series"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Spoons      SpoonRankings      `json:"spoons"`
}
