package handler

import (
	"net/http"

	"github.com/aleccaputo/sanguine-web/internal/utils"
)

// GetClanRoster serves the clan membership list as known to the competition
// tracker. Backed by a five minute cache; see services.WOMClient.
func GetClanRoster(w http.ResponseWriter, r *http.Request) {
	members, err := womClient.GetGroupMembers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not fetch clan roster", err)
		return
	}
	utils.Success(w, members)
}
