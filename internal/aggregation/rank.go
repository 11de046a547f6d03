package aggregation

import (
	"cmp"
	"slices"

	model "github.com/aleccaputo/sanguine-web/internal/models"
)

const spoonListSize = 3

// totalPoints sums every matching audit record for one participant over the
// whole competition window. The window itself is enforced by the caller's
// date-ranged query; only the metric filter applies here.
func totalPoints(p model.ParticipantInfo, records []model.AuditRecord, metric string) float64 {
	sum := 0.0
	for _, rec := range records {
		if rec.DestinationDiscordID != p.DiscordID {
			continue
		}
		if !recordMatchesMetric(rec, metric) {
			continue
		}
		sum += rec.PointsGiven
	}
	return sum
}

// RankLeaderboard ranks participants descending by total clan points earned
// during the competition (sortBy "points") or by the metric gain reported by
// the competition provider (sortBy "metric"). Ties keep the original
// participant enumeration order; no secondary key is applied.
func RankLeaderboard(participants []model.ParticipantInfo, records []model.AuditRecord, metric string, sortBy string) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, model.LeaderboardEntry{
			Participant: p,
			TotalPoints: totalPoints(p, records, metric),
		})
	}

	slices.SortStableFunc(entries, func(a, b model.LeaderboardEntry) int {
		if sortBy == model.SortByMetric {
			return cmp.Compare(b.Participant.Gained, a.Participant.Gained)
		}
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RankSpoons computes the two luck rankings. Biggest spoons are the top 3 by
// points per unit of metric gained, most unlucky the top 3 by the inverse.
// Ratios with a zero denominator are 0 so both sorts stay well-defined and
// those participants fall to the bottom. The lists are independent; a
// participant can appear on both.
func RankSpoons(participants []model.ParticipantInfo, records []model.AuditRecord, metric string) model.SpoonRankings {
	biggest := make([]model.SpoonEntry, 0, len(participants))
	unlucky := make([]model.SpoonEntry, 0, len(participants))

	for _, p := range participants {
		points := totalPoints(p, records, metric)

		spoonRatio := 0.0
		if p.Gained > 0 {
			spoonRatio = points / p.Gained
		}
		biggest = append(biggest, model.SpoonEntry{Participant: p, Ratio: spoonRatio})

		unluckyRatio := 0.0
		if points > 0 {
			unluckyRatio = p.Gained / points
		}
		unlucky = append(unlucky, model.SpoonEntry{Participant: p, Ratio: unluckyRatio})
	}

	byRatioDesc := func(a, b model.SpoonEntry) int {
		return cmp.Compare(b.Ratio, a.Ratio)
	}
	slices.SortStableFunc(biggest, byRatioDesc)
	slices.SortStableFunc(unlucky, byRatioDesc)

	return model.SpoonRankings{
		BiggestSpoons: topN(biggest, spoonListSize),
		MostUnlucky:   topN(unlucky, spoonListSize),
	}
}

func topN(entries []model.SpoonEntry, n int) []model.SpoonEntry {
	if len(entries) < n {
		n = len(entries)
	}
	return entries[:n]
}
