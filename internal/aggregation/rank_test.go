package aggregation

import (
	"testing"
	"time"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointsFor(discordID string, points float64) model.AuditRecord {
	return model.AuditRecord{
		DestinationDiscordID: discordID,
		PointsGiven:          points,
		CreatedAt:            time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRankLeaderboardByPoints(t *testing.T) {
	participants := []model.ParticipantInfo{
		{DiscordID: "1", Nickname: "Alice"},
		{DiscordID: "2", Nickname: "Bob"},
		{DiscordID: "3", Nickname: "Cara"},
	}
	records := []model.AuditRecord{
		pointsFor("1", 30),
		pointsFor("2", 10),
		pointsFor("3", 20),
	}

	entries := RankLeaderboard(participants, records, "ehb", model.SortByPoints)

	require.Len(t, entries, 3)
	assert.Equal(t, []float64{30, 20, 10}, []float64{entries[0].TotalPoints, entries[1].TotalPoints, entries[2].TotalPoints})
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, "Alice", entries[0].Participant.Nickname)
	assert.Equal(t, "Cara", entries[1].Participant.Nickname)
}

func TestRankLeaderboardByMetric(t *testing.T) {
	participants := []model.ParticipantInfo{
		{DiscordID: "1", Nickname: "Alice", Gained: 50},
		{DiscordID: "2", Nickname: "Bob", Gained: 200},
	}
	records := []model.AuditRecord{pointsFor("1", 99)}

	entries := RankLeaderboard(participants, records, "ehb", model.SortByMetric)

	require.Len(t, entries, 2)
	assert.Equal(t, "Bob", entries[0].Participant.Nickname)
	assert.Equal(t, "Alice", entries[1].Participant.Nickname)
}

func TestRankLeaderboardTiesKeepEnumerationOrder(t *testing.T) {
	participants := []model.ParticipantInfo{
		{DiscordID: "1", Nickname: "First"},
		{DiscordID: "2", Nickname: "Second"},
		{DiscordID: "3", Nickname: "Third"},
	}
	records := []model.AuditRecord{
		pointsFor("1", 10),
		pointsFor("2", 10),
		pointsFor("3", 10),
	}

	entries := RankLeaderboard(participants, records, "ehp", model.SortByPoints)

	require.Len(t, entries, 3)
	assert.Equal(t, "First", entries[0].Participant.Nickname)
	assert.Equal(t, "Second", entries[1].Participant.Nickname)
	assert.Equal(t, "Third", entries[2].Participant.Nickname)
}

func TestRankLeaderboardMetricFilter(t *testing.T) {
	participants := []model.ParticipantInfo{{DiscordID: "1", Nickname: "Alice"}}
	zulrah := "zulrah"
	vorkath := "vorkath"
	records := []model.AuditRecord{
		{DestinationDiscordID: "1", PointsGiven: 5, BossName: &zulrah},
		{DestinationDiscordID: "1", PointsGiven: 7, BossName: &vorkath},
	}

	entries := RankLeaderboard(participants, records, "zulrah", model.SortByPoints)

	require.Len(t, entries, 1)
	assert.Equal(t, 5.0, entries[0].TotalPoints)
}

func TestRankSpoonsReciprocalRatios(t *testing.T) {
	participants := []model.ParticipantInfo{{DiscordID: "1", Nickname: "Alice", Gained: 40}}
	records := []model.AuditRecord{pointsFor("1", 10)}

	spoons := RankSpoons(participants, records, "ehb")

	require.Len(t, spoons.BiggestSpoons, 1)
	require.Len(t, spoons.MostUnlucky, 1)
	assert.Equal(t, 0.25, spoons.BiggestSpoons[0].Ratio)
	assert.Equal(t, 4.0, spoons.MostUnlucky[0].Ratio)
	assert.InDelta(t, 1.0, spoons.BiggestSpoons[0].Ratio*spoons.MostUnlucky[0].Ratio, 1e-9)
}

func TestRankSpoonsZeroDenominators(t *testing.T) {
	participants := []model.ParticipantInfo{
		{DiscordID: "1", Nickname: "NoGain", Gained: 0},
		{DiscordID: "2", Nickname: "NoPoints", Gained: 100},
	}
	records := []model.AuditRecord{pointsFor("1", 50)}

	spoons := RankSpoons(participants, records, "ehp")

	var noGainSpoon, noPointsUnlucky *model.SpoonEntry
	for i := range spoons.BiggestSpoons {
		if spoons.BiggestSpoons[i].Participant.Nickname == "NoGain" {
			noGainSpoon = &spoons.BiggestSpoons[i]
		}
	}
	for i := range spoons.MostUnlucky {
		if spoons.MostUnlucky[i].Participant.Nickname == "NoPoints" {
			noPointsUnlucky = &spoons.MostUnlucky[i]
		}
	}

	require.NotNil(t, noGainSpoon)
	assert.Zero(t, noGainSpoon.Ratio)
	require.NotNil(t, noPointsUnlucky)
	assert.Zero(t, noPointsUnlucky.Ratio)
}

func TestRankSpoonsTopThree(t *testing.T) {
	participants := make([]model.ParticipantInfo, 0, 5)
	records := make([]model.AuditRecord, 0, 5)
	ids := []string{"1", "2", "3", "4", "5"}
	for i, id := range ids {
		participants = append(participants, model.ParticipantInfo{
			DiscordID: id,
			Nickname:  "P" + id,
			Gained:    10,
		})
		records = append(records, pointsFor(id, float64((i+1)*10)))
	}

	spoons := RankSpoons(participants, records, "ehb")

	require.Len(t, spoons.BiggestSpoons, 3)
	require.Len(t, spoons.MostUnlucky, 3)
	// Highest points-per-gained first.
	assert.Equal(t, "P5", spoons.BiggestSpoons[0].Participant.Nickname)
	// Highest gained-per-point first.
	assert.Equal(t, "P1", spoons.MostUnlucky[0].Participant.Nickname)
}

func TestRankSpoonsEmpty(t *testing.T) {
	spoons := RankSpoons(nil, nil, "ehb")
	assert.Empty(t, spoons.BiggestSpoons)
	assert.Empty(t, spoons.MostUnlucky)
}
