package aggregation

import (
	"testing"
	"time"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNickname(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "strips rank suffix", raw: "Foo Bar[Captain]", want: "Foo Bar"},
		{name: "strips suffix with space before bracket", raw: "Foo Bar [120]", want: "Foo Bar"},
		{name: "no suffix passes through", raw: "Foo Bar", want: "Foo Bar"},
		{name: "empty string", raw: "", want: ""},
		{name: "bracket first", raw: "[Captain]", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveNickname(tt.raw))
		})
	}
}

func TestMatchParticipant(t *testing.T) {
	users := []model.UserWithNickname{
		{User: model.User{DiscordID: "1"}, Nickname: "Alice"},
		{User: model.User{DiscordID: "2"}, Nickname: "Bob Smith"},
		{User: model.User{DiscordID: "3"}},
	}

	tests := []struct {
		name        string
		displayName string
		wantID      string
		wantOK      bool
	}{
		{name: "exact match", displayName: "Alice", wantID: "1", wantOK: true},
		{name: "case insensitive", displayName: "bob smith", wantID: "2", wantOK: true},
		{name: "surrounding whitespace ignored", displayName: "  Alice  ", wantID: "1", wantOK: true},
		{name: "no match", displayName: "Nobody", wantOK: false},
		{name: "empty display name never matches the nickname-less user", displayName: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := MatchParticipant(tt.displayName, users)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, user.DiscordID)
			}
		})
	}
}

func TestBuildParticipantsExcludesUnmatched(t *testing.T) {
	comp := &model.Competition{
		ID:       1,
		Metric:   "zulrah",
		StartsAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
		Participations: []model.Participation{
			{Player: model.Player{DisplayName: "Alice"}, Progress: model.Progress{Start: 10, End: 30, Gained: 20}},
			{Player: model.Player{DisplayName: "Stranger"}, Progress: model.Progress{Gained: 500}},
		},
	}
	users := []model.UserWithNickname{
		{User: model.User{DiscordID: "1"}, Nickname: "Alice"},
	}

	participants := BuildParticipants(comp, users)

	require.Len(t, participants, 1)
	assert.Equal(t, "1", participants[0].DiscordID)
	assert.Equal(t, "Alice", participants[0].Nickname)
	assert.Equal(t, 20.0, participants[0].Gained)

	// The unmatched participation contributes nothing downstream either.
	series := BuildDailySeries(participants, nil, comp.StartsAt, comp.EndsAt, comp.Metric)
	require.Len(t, series, 3)
	for _, row := range series {
		assert.NotContains(t, row.Points, "Stranger")
	}
	entries := RankLeaderboard(participants, nil, comp.Metric, model.SortByPoints)
	require.Len(t, entries, 1)
}

func TestBuildParticipantsEmptyDirectory(t *testing.T) {
	comp := &model.Competition{
		Participations: []model.Participation{
			{Player: model.Player{DisplayName: "Alice"}},
		},
	}
	assert.Empty(t, BuildParticipants(comp, nil))
}
