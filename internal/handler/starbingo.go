package handler

import (
	"net/http"

	"github.com/aleccaputo/sanguine-web/internal/database"
	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/scanner"
	"github.com/aleccaputo/sanguine-web/internal/services"
	"github.com/aleccaputo/sanguine-web/internal/utils"
)

type starCollectorsPage struct {
	Collectors []model.StarCollector `json:"collectors"`
	TotalValue int64                 `json:"totalValue"`
}

// GetStarCollectors serves the star-bingo leaderboard with each collector's
// submissions valued against the current price snapshot.
func GetStarCollectors(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT nickname, discord_id, total_submissions, unique_items, item_ids, items_submitted
		FROM star_collectors
		ORDER BY total_submissions DESC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query star collectors", err)
		return
	}
	defer rows.Close()

	var collectors []model.StarCollector
	for rows.Next() {
		collector, err := scanner.ScanStarCollector(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan star collector row", err)
			return
		}
		collectors = append(collectors, *collector)
	}
	if err := rows.Err(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read star collectors", err)
		return
	}

	prices, err := priceService.AllPrices(r.Context())
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not fetch price snapshot", err)
		return
	}

	var grandTotal int64
	for i := range collectors {
		var value int64
		for _, itemID := range collectors[i].ItemIDs {
			value += services.PriceFor(prices, itemID)
		}
		collectors[i].TotalValue = value
		grandTotal += value
	}

	utils.Success(w, starCollectorsPage{
		Collectors: collectors,
		TotalValue: grandTotal,
	})
}
