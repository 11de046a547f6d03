package handler

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/aleccaputo/sanguine-web/internal/aggregation"
	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/utils"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

// GetMembers lists every member that has a nickname on record, highest points
// first.
func GetMembers(w http.ResponseWriter, r *http.Request) {
	users, err := utils.GetUsersWithNicknames(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load members", err)
		return
	}

	members := make([]model.UserWithNickname, 0, len(users))
	for _, u := range users {
		if u.Nickname != "" {
			members = append(members, u)
		}
	}

	slices.SortStableFunc(members, func(a, b model.UserWithNickname) int {
		return cmp.Compare(b.Points, a.Points)
	})

	utils.Success(w, members)
}

type memberDetail struct {
	User          model.UserWithNickname     `json:"user"`
	MonthlyPoints []model.MonthlyBucket      `json:"monthlyPoints"`
	CollectionLog *model.RecentCollectionLog `json:"collectionLog,omitempty"`
}

// GetMemberByID serves a member's profile page data: the profile itself,
// their points bucketed by month, and their latest collection log unlocks.
// The collection log is best-effort; the other two fetches run in parallel
// and any failure fails the request.
func GetMemberByID(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["id"]

	user, err := utils.GetUserWithNickname(r.Context(), discordID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load member", err)
		return
	}
	if user == nil {
		utils.Error(w, http.StatusNotFound, "member not found", nil)
		return
	}

	var (
		records []model.AuditRecord
		recent  *model.RecentCollectionLog
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		records, err = utils.GetAuditForUser(ctx, discordID)
		return err
	})
	g.Go(func() error {
		// Degrades to nil on upstream failure, never errors the page.
		var err error
		recent, err = collectionLog.RecentItems(ctx, user.Nickname)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load member details", err)
		return
	}

	utils.Success(w, memberDetail{
		User:          *user,
		MonthlyPoints: aggregation.MonthlyPoints(records),
		CollectionLog: recent,
	})
}
