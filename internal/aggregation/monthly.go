package aggregation

import (
	model "github.com/aleccaputo/sanguine-web/internal/models"
)

const monthFormat = "2006-Jan"

// MonthlyPoints groups one member's audit records into year-month buckets and
// sums the points per bucket. Buckets appear in first-seen order, so callers
// who want chronological bars must feed records ordered by created_at (the
// store query does).
func MonthlyPoints(records []model.AuditRecord) []model.MonthlyBucket {
	buckets := make([]model.MonthlyBucket, 0)
	index := make(map[string]int)

	for _, rec := range records {
		label := rec.CreatedAt.UTC().Format(monthFormat)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, model.MonthlyBucket{Month: label})
		}
		buckets[i].Points += rec.PointsGiven
	}
	return buckets
}
