package handler

import (
	"net/http"

	"github.com/aleccaputo/sanguine-web/internal/utils"
)

// RootHandler lists every available API route.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Sanguine API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"members": []map[string]string{
				{"method": "GET", "path": "/members", "description": "All clan members with nicknames, by points"},
				{"method": "GET", "path": "/members/{id}", "description": "Member profile, monthly points and recent collection log"},
			},
			"events": []map[string]string{
				{"method": "GET", "path": "/events", "description": "Recent competitions (pinned bingo boards first)"},
				{"method": "GET", "path": "/events/{id}", "description": "Competition dashboard (params: sort=points|metric)"},
			},
			"drops": []map[string]string{
				{"method": "GET", "path": "/drops", "description": "Recent clan drops, paginated (params: page)"},
			},
			"bingo": []map[string]string{
				{"method": "GET", "path": "/bingo/rules", "description": "Bingo tile rulings"},
				{"method": "GET", "path": "/bingo/star-collectors", "description": "Star collectors leaderboard with GP values"},
			},
			"clan": []map[string]string{
				{"method": "GET", "path": "/clan/roster", "description": "Clan membership from the competition tracker"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
				{"method": "GET", "path": "/metrics", "description": "Prometheus metrics"},
			},
		},
		"documentation": map[string]string{
			"description": "REST API for the Sanguine clan website",
			"contact":     "sanguine.pvm@gmail.com",
		},
	}

	utils.Success(w, routes)
}
