package handlers

import (
	"net/http"

	"github.com/Dosada05/league-standings/services"
	"github.com/Dosada05/league-standings/standings"
)

type StandingHandler struct {
	standingService services.StandingService
}

func NewStandingHandler(ss services.StandingService) *StandingHandler {
	return &StandingHandler{standingService: ss}
}

// GetStandings godoc
// @Summary  League table of a tournament
// @Tags     standings
// @Produce  json
// @Param    tournamentID path  string true  "Tournament ID"
// @Param    discipline   query bool   false "Include yellow/red card counts"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]string
// @Router   /tournaments/{tournamentID}/standings [get]
func (h *StandingHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	withDiscipline, err := queryBool(r, "discipline")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rows, err := h.standingService.GetTable(r.Context(), tournamentID, withDiscipline)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetGroupStandings godoc
// @Summary  Per-group tables of a tournament
// @Tags     standings
// @Produce  json
// @Param    tournamentID path string true "Tournament ID"
// @Success  200 {object} map[string]interface{}
// @Router   /tournaments/{tournamentID}/standings/groups [get]
func (h *StandingHandler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	groups, err := h.standingService.GetGroupTables(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"groups": groups,
		"labels": standings.GroupLabels(groups),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTopScorers godoc
// @Summary  Top scorers of a tournament
// @Tags     standings
// @Produce  json
// @Param    tournamentID path  string true  "Tournament ID"
// @Param    limit        query int    false "Maximum rows (default 10)"
// @Success  200 {object} map[string]interface{}
// @Router   /tournaments/{tournamentID}/scorers [get]
func (h *StandingHandler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", standings.DefaultScorerLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scorers, err := h.standingService.TopScorers(r.Context(), tournamentID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scorers": scorers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingHandler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.standingService.PlayerStats(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PublishSnapshot godoc
// @Summary   Persist and publish the current table
// @Tags      standings
// @Security  BearerAuth
// @Produce   json
// @Param     tournamentID path string true "Tournament ID"
// @Success   201 {object} map[string]interface{}
// @Failure   503 {object} map[string]string
// @Router    /tournaments/{tournamentID}/standings/snapshot [post]
func (h *StandingHandler) PublishSnapshot(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snapshot, err := h.standingService.PublishSnapshot(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
