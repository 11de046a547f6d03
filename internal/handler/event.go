package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aleccaputo/sanguine-web/internal/aggregation"
	"github.com/aleccaputo/sanguine-web/internal/logger"
	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/utils"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const recentEventLimit = 10

// GetEvents lists the pinned bingo competitions followed by the group's most
// recent started competitions. A failed group listing degrades to just the
// pinned boards; a failed pinned fetch fails the request.
func GetEvents(w http.ResponseWriter, r *http.Request) {
	pinned := make([]*model.Competition, len(pinnedCompetitionIDs))
	var groupComps []model.CompetitionListItem

	g, ctx := errgroup.WithContext(r.Context())
	for i, id := range pinnedCompetitionIDs {
		i, id := i, id
		g.Go(func() error {
			comp, err := womClient.GetCompetitionDetails(ctx, id)
			if err != nil {
				return err
			}
			pinned[i] = comp
			return nil
		})
	}
	g.Go(func() error {
		comps, err := womClient.GetGroupCompetitions(ctx)
		if err != nil {
			logger.Warning("could not list group competitions: %v", err)
			return nil
		}
		groupComps = comps
		return nil
	})
	if err := g.Wait(); err != nil {
		utils.Error(w, http.StatusBadGateway, "could not fetch competitions", err)
		return
	}

	combined := make([]model.CompetitionListItem, 0, len(pinned)+len(groupComps))
	for _, comp := range pinned {
		combined = append(combined, model.CompetitionListItem{
			ID:               comp.ID,
			Title:            comp.Title,
			Metric:           comp.Metric,
			StartsAt:         comp.StartsAt,
			EndsAt:           comp.EndsAt,
			ParticipantCount: len(comp.Participations),
		})
	}
	combined = append(combined, groupComps...)

	now := time.Now()
	started := make([]model.CompetitionListItem, 0, recentEventLimit)
	for _, comp := range combined {
		if !comp.StartsAt.Before(now) {
			continue
		}
		started = append(started, comp)
		if len(started) == recentEventLimit {
			break
		}
	}

	utils.Success(w, started)
}

// GetEventDashboard builds the full competition dashboard: cumulative daily
// point series, ranked leaderboard and the spoon rankings. The competition,
// member directory and audit window are fetched in parallel and joined
// before aggregation starts.
func GetEventDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "competition not found", nil)
		return
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy != model.SortByMetric {
		sortBy = model.SortByPoints
	}

	comp, err := womClient.GetCompetitionDetails(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not fetch competition", err)
		return
	}

	var (
		users   []model.UserWithNickname
		records []model.AuditRecord
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		users, err = utils.GetUsersWithNicknames(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = utils.GetAuditForDateRange(ctx, comp.StartsAt, comp.EndsAt)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load competition data", err)
		return
	}

	participants := aggregation.BuildParticipants(comp, users)
	series := aggregation.BuildDailySeries(participants, records, comp.StartsAt, comp.EndsAt, comp.Metric)

	utils.Success(w, model.EventDashboard{
		Competition: comp,
		Series:      aggregation.Accumulate(series),
		Leaderboard: aggregation.RankLeaderboard(participants, records, comp.Metric, sortBy),
		Spoons:      aggregation.RankSpoons(participants, records, comp.Metric),
	})
}
