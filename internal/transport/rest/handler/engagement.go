package handler

import (
	"net/http"
	"strconv"

	"esgcompass/internal/service"
	"esgcompass/internal/transport/rest/middleware"
)

// EngagementHandler handles gamification endpoints.
type EngagementHandler struct {
	engagementSvc *service.EngagementService
}

// NewEngagementHandler creates a new engagement handler.
func NewEngagementHandler(engagementSvc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementSvc: engagementSvc}
}

// Points handles GET /v1/engagement/points
func (h *EngagementHandler) Points(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	points, err := h.engagementSvc.Points(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}

// Leaderboard handles GET /v1/engagement/leaderboard
func (h *EngagementHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	entries, err := h.engagementSvc.Leaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
