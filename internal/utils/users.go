package utils

import (
	"context"
	"fmt"

	"github.com/aleccaputo/sanguine-web/internal/aggregation"
	"github.com/aleccaputo/sanguine-web/internal/database"
	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/scanner"
)

// GetUsersWithNicknames loads the whole member directory joined with each
// member's first nickname record, rank suffixes stripped. Rows missing a
// discord ID or join date are filtered out, matching the ingestion bot's
// partial writes.
func GetUsersWithNicknames(ctx context.Context) ([]model.UserWithNickname, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.discord_id,
			COALESCE(u.points, 0) AS points,
			u.joined,
			COALESCE(n.nickname, '') AS nickname
		FROM users u
		LEFT JOIN LATERAL (
			SELECT nickname FROM user_nicknames
			WHERE discord_id = u.discord_id
			ORDER BY id
			LIMIT 1
		) n ON true
		WHERE u.discord_id IS NOT NULL AND u.joined IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	var users []model.UserWithNickname
	for rows.Next() {
		user, err := scanner.ScanUserWithNickname(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user row: %w", err)
		}
		user.Nickname = aggregation.ResolveNickname(user.Nickname)
		users = append(users, *user)
	}
	return users, rows.Err()
}

// GetUserWithNickname loads a single member by discord ID. Returns nil when
// the member does not exist.
func GetUserWithNickname(ctx context.Context, discordID string) (*model.UserWithNickname, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.discord_id,
			COALESCE(u.points, 0) AS points,
			u.joined,
			COALESCE(n.nickname, '') AS nickname
		FROM users u
		LEFT JOIN LATERAL (
			SELECT nickname FROM user_nicknames
			WHERE discord_id = u.discord_id
			ORDER BY id
			LIMIT 1
		) n ON true
		WHERE u.discord_id = $1 AND u.joined IS NOT NULL
	`, discordID)
	if err != nil {
		return nil, fmt.Errorf("could not query user %s: %w", discordID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	user, err := scanner.ScanUserWithNickname(rows)
	if err != nil {
		return nil, fmt.Errorf("could not scan user row: %w", err)
	}
	user.Nickname = aggregation.ResolveNickname(user.Nickname)
	return user, nil
}
