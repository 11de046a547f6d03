package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/aleccaputo/sanguine-web/internal/database"
	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/scanner"
)

const auditColumns = `id, destination_discord_id, points_given, created_at, type, item_id, boss_name`

// GetAuditForDateRange loads every point-grant event inside [start, end]
// inclusive, for competition aggregation.
func GetAuditForDateRange(ctx context.Context, start, end time.Time) ([]model.AuditRecord, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+auditColumns+`
		FROM point_audit
		WHERE created_at >= $1 AND created_at <= $2
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not query audit range: %w", err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

// GetAuditForUser loads one member's full point history ordered by creation
// time. The ordering matters: the monthly bucketing downstream preserves
// first-seen order.
func GetAuditForUser(ctx context.Context, discordID string) ([]model.AuditRecord, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+auditColumns+`
		FROM point_audit
		WHERE destination_discord_id = $1
		ORDER BY created_at
	`, discordID)
	if err != nil {
		return nil, fmt.Errorf("could not query audit for user %s: %w", discordID, err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

// GetDropsPaginated loads one page of item drops (audit records carrying an
// item ID), newest first, along with the total drop count.
func GetDropsPaginated(ctx context.Context, page, pageSize int) ([]model.AuditRecord, int, error) {
	var total int
	err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM point_audit WHERE item_id IS NOT NULL`,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count drops: %w", err)
	}

	rows, err := database.DB.Query(ctx, `
		SELECT `+auditColumns+`
		FROM point_audit
		WHERE item_id IS NOT NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("could not query drops: %w", err)
	}
	defer rows.Close()

	drops, err := scanAuditRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return drops, total, nil
}

func scanAuditRows(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]model.AuditRecord, error) {
	var records []model.AuditRecord
	for rows.Next() {
		rec, err := scanner.ScanAuditRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan audit row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
