package aggregation

import (
	"testing"
	"time"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAt(created time.Time, points float64) model.AuditRecord {
	return model.AuditRecord{CreatedAt: created, PointsGiven: points}
}

func TestMonthlyPointsSumsPerBucket(t *testing.T) {
	records := []model.AuditRecord{
		recordAt(time.Date(2025, time.January, 3, 10, 0, 0, 0, time.UTC), 5),
		recordAt(time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC), 7),
		recordAt(time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC), 2),
	}

	buckets := MonthlyPoints(records)

	require.Len(t, buckets, 2)
	assert.Equal(t, model.MonthlyBucket{Month: "2025-Jan", Points: 12}, buckets[0])
	assert.Equal(t, model.MonthlyBucket{Month: "2025-Feb", Points: 2}, buckets[1])
}

func TestMonthlyPointsPreservesFirstSeenOrder(t *testing.T) {
	// Out-of-order input keeps first-seen bucket order; chronological bars
	// rely on the store query ordering records by created_at.
	records := []model.AuditRecord{
		recordAt(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 1),
		recordAt(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 2),
		recordAt(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), 4),
	}

	buckets := MonthlyPoints(records)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-Mar", buckets[0].Month)
	assert.Equal(t, 5.0, buckets[0].Points)
	assert.Equal(t, "2025-Jan", buckets[1].Month)
}

func TestMonthlyPointsYearsSeparateBuckets(t *testing.T) {
	records := []model.AuditRecord{
		recordAt(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), 3),
		recordAt(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 4),
	}

	buckets := MonthlyPoints(records)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-Dec", buckets[0].Month)
	assert.Equal(t, "2025-Dec", buckets[1].Month)
}

func TestMonthlyPointsEmpty(t *testing.T) {
	assert.Empty(t, MonthlyPoints(nil))
}
