package handler

import (
	"net/http"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/utils"
	"golang.org/x/sync/errgroup"
)

const dropsPageSize = 7

type dropsPage struct {
	Drops       []model.Drop `json:"recentDrops"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalCount  int          `json:"totalCount"`
}

// GetDrops serves the paginated drops feed, newest first. Item metadata is
// resolved through the price service; a drop whose item cannot be resolved
// still renders with its raw ID.
func GetDrops(w http.ResponseWriter, r *http.Request) {
	page := utils.QueryInt(r, "page", 1)

	var (
		records []model.AuditRecord
		total   int
		users   []model.UserWithNickname
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		records, total, err = utils.GetDropsPaginated(ctx, page, dropsPageSize)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = utils.GetUsersWithNicknames(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load drops", err)
		return
	}

	nicknames := make(map[string]string, len(users))
	for _, u := range users {
		nicknames[u.DiscordID] = u.Nickname
	}

	drops := make([]model.Drop, 0, len(records))
	for _, rec := range records {
		var item *model.Item
		if rec.ItemID != nil {
			item = priceService.ResolveItem(r.Context(), *rec.ItemID)
		}
		drops = append(drops, model.Drop{
			AuditRecord: rec,
			Nickname:    nicknames[rec.DestinationDiscordID],
			OSRSData:    item,
			Display:     utils.DisplayItemName(rec.ItemID, item),
		})
	}

	totalPages := (total + dropsPageSize - 1) / dropsPageSize

	utils.Success(w, dropsPage{
		Drops:       drops,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
	})
}
