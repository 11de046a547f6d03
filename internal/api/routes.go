package api

import (
	"net/http"

	"github.com/aleccaputo/sanguine-web/internal/handler"
	"github.com/aleccaputo/sanguine-web/internal/metrics"
	"github.com/aleccaputo/sanguine-web/internal/middleware"
	"github.com/aleccaputo/sanguine-web/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Members
	r.HandleFunc("/members", handler.GetMembers).Methods(http.MethodGet)
	r.HandleFunc("/members/{id}", handler.GetMemberByID).Methods(http.MethodGet)

	// Events / competitions
	r.HandleFunc("/events", handler.GetEvents).Methods(http.MethodGet)
	r.HandleFunc("/events/{id}", handler.GetEventDashboard).Methods(http.MethodGet)

	// Drops feed
	r.HandleFunc("/drops", handler.GetDrops).Methods(http.MethodGet)

	// Bingo
	r.HandleFunc("/bingo/rules", handler.GetBingoRules).Methods(http.MethodGet)
	r.HandleFunc("/bingo/star-collectors", handler.GetStarCollectors).Methods(http.MethodGet)

	// Clan roster
	r.HandleFunc("/clan/roster", handler.GetClanRoster).Methods(http.MethodGet)

	// Health check + metrics
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found", nil)
	})

	return r
}
