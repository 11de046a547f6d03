package aggregation

import (
	"strings"

	model "github.com/aleccaputo/sanguine-web/internal/models"
)

// ResolveNickname strips the bracketed rank suffix the points bot embeds in
// stored nicknames ("Foo Bar[Captain]" -> "Foo Bar"). Names without a bracket
// pass through unchanged.
func ResolveNickname(raw string) string {
	if i := strings.Index(raw, "["); i >= 0 {
		return strings.TrimSpace(raw[:i])
	}
	return raw
}

// MatchParticipant finds the clan member whose nickname equals the
// competition display name, comparing case-insensitively after trimming
// whitespace. The first match wins; users without a nickname never match.
func MatchParticipant(displayName string, users []model.UserWithNickname) (model.UserWithNickname, bool) {
	want := strings.TrimSpace(displayName)
	for _, u := range users {
		if u.Nickname == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(u.Nickname), want) {
			return u, true
		}
	}
	return model.UserWithNickname{}, false
}

// BuildParticipants joins competition participations to the clan member
// directory. Participations with no nickname match are dropped silently:
// their raw competition stats may still render, but they earn no leaderboard
// or chart entry.
func BuildParticipants(comp *model.Competition, users []model.UserWithNickname) []model.ParticipantInfo {
	participants := make([]model.ParticipantInfo, 0, len(comp.Participations))
	for _, part := range comp.Participations {
		user, ok := MatchParticipant(part.Player.DisplayName, users)
		if !ok {
			continue
		}
		participants = append(participants, model.ParticipantInfo{
			DiscordID:     user.DiscordID,
			Nickname:      user.Nickname,
			DisplayName:   part.Player.DisplayName,
			StartProgress: part.Progress.Start,
			EndProgress:   part.Progress.End,
			Gained:        part.Progress.Gained,
		})
	}
	return participants
}
