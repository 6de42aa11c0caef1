package handlers

import (
	"net/http"

	"github.com/Dosada05/league-standings/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// ListTeams godoc
// @Summary  Teams of a tournament, optionally fuzzy searched by name
// @Tags     teams
// @Produce  json
// @Param    tournamentID path  string true  "Tournament ID"
// @Param    q            query string false "Fuzzy name search"
// @Success  200 {object} map[string]interface{}
// @Router   /tournaments/{tournamentID}/teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.Search(r.Context(), tournamentID, r.URL.Query().Get("q"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
