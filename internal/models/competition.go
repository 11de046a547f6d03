package model

import "time"

// Aggregate competition metrics that span all bosses/skills. Any other metric
// value names a single skill or boss.
const (
	MetricEHB = "ehb"
	MetricEHP = "ehp"
)

// CompetitionListItem is the shape returned by the group competitions
// endpoint, without participant details.
type CompetitionListItem struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Metric           string    `json:"metric"`
	StartsAt         time.Time `json:"startsAt"`
	EndsAt           time.Time `json:"endsAt"`
	ParticipantCount int       `json:"participantCount"`
}

// Competition is the full competition detail from the Wise Old Man API.
type Competition struct {
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Metric         string          `json:"metric"`
	StartsAt       time.Time       `json:"startsAt"`
	EndsAt         time.Time       `json:"endsAt"`
	Participations []Participation `json:"participations"`
}

type Participation struct {
	Player   Player   `json:"player"`
	Progress Progress `json:"progress"`
}

type Player struct {
	DisplayName string `json:"displayName"`
}

type Progress struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Gained float64 `json:"gained"`
}

// GroupMembership is one clan member as known to the Wise Old Man group.
type GroupMembership struct {
	PlayerID int    `json:"playerId"`
	Role     string `json:"role"`
	Player   Player `json:"player"`
}

// ParticipantInfo joins a competition participation to a clan member. Built
// fresh per request and discarded with the response; participations whose
// display name matches no known nickname never become one of these.
type ParticipantInfo struct {
	DiscordID     string  `json:"discordId"`
	Nickname      string  `json:"nickname"`
	DisplayName   string  `json:"displayName"`
	StartProgress float64 `json:"startProgress"`
	EndProgress   float64 `json:"endProgress"`
	Gained        float64 `json:"gained"`
}
