package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Dosada05/league-standings/middleware"
	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

// ListMatches godoc
// @Summary  Matches of a tournament
// @Tags     matches
// @Produce  json
// @Param    tournamentID path  string true  "Tournament ID"
// @Param    status       query string false "Comma separated statuses"
// @Param    phase        query string false "grupos, eliminatoria, semifinal, final"
// @Param    round        query string false "Round label"
// @Success  200 {object} map[string]interface{}
// @Router   /tournaments/{tournamentID}/matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	filter, err := matchFilterFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.List(r.Context(), tournamentID, filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type confirmResultInput struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// ConfirmResult godoc
// @Summary   Record the final score of a match
// @Tags      matches
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     matchID path string true "Match ID"
// @Param     input body confirmResultInput true "Final score"
// @Success   200 {object} map[string]interface{}
// @Failure   400 {object} map[string]string
// @Failure   404 {object} map[string]string
// @Router    /matches/{matchID}/result [post]
func (h *MatchHandler) ConfirmResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := getStringParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input confirmResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Home == nil || input.Away == nil {
		badRequestResponse(w, r, fmt.Errorf("%w: both home and away are required", services.ErrValidationFailed))
		return
	}

	role, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	match, err := h.matchService.ConfirmResult(r.Context(), matchID, models.Score{Home: *input.Home, Away: *input.Away}, role)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func matchFilterFromQuery(r *http.Request) (repositories.MatchFilter, error) {
	var filter repositories.MatchFilter
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, models.MatchStatus(s))
			}
		}
		// asking for finished matches also returns the legacy spelling
		for _, s := range filter.Statuses {
			if s.IsFinished() {
				filter.Statuses = append(filter.Statuses, models.FinishedStatuses...)
				break
			}
		}
	}

	if raw := strings.TrimSpace(q.Get("phase")); raw != "" {
		phase, ok := models.ParseMatchPhase(raw)
		if !ok {
			return filter, fmt.Errorf("unknown phase %q", raw)
		}
		filter.Phase = &phase
	}

	if raw := strings.TrimSpace(q.Get("round")); raw != "" {
		filter.Round = &raw
	}
	return filter, nil
}
