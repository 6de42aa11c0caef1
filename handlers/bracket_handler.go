package handlers

import (
	"net/http"

	"github.com/Dosada05/league-standings/middleware"
	"github.com/Dosada05/league-standings/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bs}
}

// BuildKnockout godoc
// @Summary   Pair group qualifiers for the first knockout round
// @Tags      brackets
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     tournamentID path string true "Tournament ID"
// @Param     input body services.KnockoutInput true "Qualifiers per group, pairing mode, optional seed"
// @Success   200 {object} map[string]interface{}
// @Success   201 {object} map[string]interface{}
// @Failure   400 {object} map[string]string
// @Router    /tournaments/{tournamentID}/knockout [post]
func (h *BracketHandler) BuildKnockout(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getStringParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.KnockoutInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Persist {
		userID, err := middleware.GetUserIDFromContext(r.Context())
		if err != nil {
			unauthorizedResponse(w, r, "failed to identify current user")
			return
		}
		input.CreatedBy = userID
	}

	result, err := h.bracketService.BuildKnockout(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	status := http.StatusOK
	if input.Persist {
		status = http.StatusCreated
	}
	if err := writeJSON(w, status, jsonResponse{"knockout": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
