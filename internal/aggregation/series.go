package aggregation

import (
	"strings"
	"time"

	model "github.com/aleccaputo/sanguine-web/internal/models"
)

// dayFormat is the calendar-day key used to bucket audit records. Day
// membership is decided by formatted-date equality, not time-of-day math.
const dayFormat = "2006-01-02"

// NormalizeBossName converts a stored boss name into the competition metric
// form: lowercased with spaces replaced by underscores.
func NormalizeBossName(raw string) string {
	return strings.ReplaceAll(strings.ToLower(raw), " ", "_")
}

// IsAggregateMetric reports whether the metric spans all bosses or skills
// rather than a single one.
func IsAggregateMetric(metric string) bool {
	return strings.EqualFold(metric, model.MetricEHB) || strings.EqualFold(metric, model.MetricEHP)
}

// recordMatchesMetric applies the competition metric filter to one audit
// record. Aggregate metrics count every record; per-boss metrics only count
// records whose normalized boss name equals the raw metric string.
func recordMatchesMetric(rec model.AuditRecord, metric string) bool {
	if IsAggregateMetric(metric) {
		return true
	}
	if rec.BossName == nil {
		return false
	}
	return NormalizeBossName(*rec.BossName) == metric
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BuildDailySeries buckets audit records into one row per calendar day over
// [start, end] inclusive. Each row carries a value for every participant,
// zero when no records matched, so a later cumulative pass never sees a
// missing key. Pure: no inputs are mutated.
func BuildDailySeries(participants []model.ParticipantInfo, records []model.AuditRecord, start, end time.Time, metric string) []model.DayRow {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	if endDay.Before(startDay) {
		return []model.DayRow{}
	}
	days := int(endDay.Sub(startDay)/(24*time.Hour)) + 1

	series := make([]model.DayRow, 0, days)
	for i := 0; i < days; i++ {
		day := startDay.AddDate(0, 0, i).Format(dayFormat)
		row := model.DayRow{Day: day, Points: make(map[string]float64, len(participants))}
		for _, p := range participants {
			sum := 0.0
			for _, rec := range records {
				if rec.DestinationDiscordID != p.DiscordID {
					continue
				}
				if rec.CreatedAt.UTC().Format(dayFormat) != day {
					continue
				}
				if !recordMatchesMetric(rec, metric) {
					continue
				}
				sum += rec.PointsGiven
			}
			row.Points[p.Nickname] = sum
		}
		series = append(series, row)
	}
	return series
}

// Accumulate converts a daily series into a running-total series of the same
// length. The input is left untouched; the last row of the result equals the
// per-key column sums of the input.
func Accumulate(series []model.DayRow) []model.DayRow {
	out := make([]model.DayRow, 0, len(series))
	running := make(map[string]float64)
	for _, row := range series {
		acc := model.DayRow{Day: row.Day, Points: make(map[string]float64, len(row.Points))}
		for key, value := range row.Points {
			running[key] += value
			acc.Points[key] = running[key]
		}
		out = append(out, acc)
	}
	return out
}
