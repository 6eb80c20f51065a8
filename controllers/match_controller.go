package controllers

import (
	"errors"
	"log"
	"net/http"

	"sprout_server/helpers"
	"sprout_server/middleware"
	"sprout_server/services"
)

// MatchController struct
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the match controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// GetMatches returns the ranked match list for the authenticated viewer.
// No matches is a normal empty result, not an error.
func (c *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	matches, err := c.MatchService.GetMatchesForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Printf("❌ Error computing matches for %s: %v", userID, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to compute matches")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, matches)
}

// GetMatchesBySkill returns the same matches bucketed per skill the viewer wants to learn
func (c *MatchController) GetMatchesBySkill(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	grouped, err := c.MatchService.GetMatchesBySkill(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Printf("❌ Error grouping matches for %s: %v", userID, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to compute matches")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, grouped)
}
