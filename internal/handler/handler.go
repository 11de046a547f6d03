package handler

import (
	"net/http"

	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/aleccaputo/sanguine-web/internal/services"
	"github.com/aleccaputo/sanguine-web/internal/utils"
)

var (
	womClient            *services.WOMClient
	priceService         *services.PriceService
	collectionLog        *services.CollectionLogClient
	pinnedCompetitionIDs []int
)

// Init wires the upstream clients used by the handlers. Must run before the
// router serves traffic.
func Init(cfg *config.Config) {
	womClient = services.NewWOMClient(cfg)
	priceService = services.NewPriceService(cfg)
	collectionLog = services.NewCollectionLogClient(cfg)
	pinnedCompetitionIDs = cfg.PinnedCompetitionIDs
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
