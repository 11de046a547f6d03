package scanner

import (
	"database/sql"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/lib/pq"
)

// rowScanner matches both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserWithNickname scans a users row joined with its first nickname.
// The nickname comes back raw; rank-suffix stripping happens in the caller.
func ScanUserWithNickname(s rowScanner) (*model.UserWithNickname, error) {
	var user model.UserWithNickname
	err := s.Scan(&user.DiscordID, &user.Points, &user.Joined, &user.Nickname)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ScanAuditRecord scans a point_audit row, converting nullable columns.
func ScanAuditRecord(s rowScanner) (*model.AuditRecord, error) {
	var rec model.AuditRecord
	var itemID sql.NullInt64
	var bossName sql.NullString

	err := s.Scan(
		&rec.ID, &rec.DestinationDiscordID, &rec.PointsGiven,
		&rec.CreatedAt, &rec.Type, &itemID, &bossName,
	)
	if err != nil {
		return nil, err
	}

	if itemID.Valid {
		rec.ItemID = &itemID.Int64
	}
	if bossName.Valid {
		rec.BossName = &bossName.String
	}

	return &rec, nil
}

// ScanStarCollector scans a star_collectors row with its item ID array.
func ScanStarCollector(s rowScanner) (*model.StarCollector, error) {
	var c model.StarCollector
	var itemIDs pq.Int64Array

	err := s.Scan(
		&c.Nickname, &c.DiscordID, &c.TotalSubmissions,
		&c.UniqueItems, &itemIDs, &c.ItemsSubmitted,
	)
	if err != nil {
		return nil, err
	}

	c.ItemIDs = []int64(itemIDs)

	return &c, nil
}
