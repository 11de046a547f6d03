package model

import "time"

// Point audit record types written by the ingestion bot.
const (
	AuditTypeAutomated = "AUTOMATED"
	AuditTypeOneTime   = "ONE_TIME"
)

// AuditRecord is an immutable point-grant event. ItemID and BossName are only
// set for drop-based grants.
type AuditRecord struct {
	ID                   int       `json:"id"`
	DestinationDiscordID string    `json:"destinationDiscordId"`
	PointsGiven          float64   `json:"pointsGiven"`
	CreatedAt            time.Time `json:"createdAt"`
	Type                 string    `json:"type"`
	ItemID               *int64    `json:"itemId,omitempty"`
	BossName             *string   `json:"bossName,omitempty"`
}

// Drop is an audit record enriched for the drops feed.
type Drop struct {
	AuditRecord
	Nickname string `json:"nickname,omitempty"`
	OSRSData *Item  `json:"osrsData,omitempty"`
	Display  string `json:"display"`
}

// MonthlyBucket is one bar of the per-member points chart.
type MonthlyBucket struct {
	Month  string  `json:"date"`
	Points float64 `json:"points"`
}
