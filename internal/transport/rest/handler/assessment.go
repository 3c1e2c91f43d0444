package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"esgcompass/internal/model"
	"esgcompass/internal/service"
	"esgcompass/internal/transport/rest/middleware"
	"esgcompass/internal/wizard"
)

// AssessmentHandler handles the wizard endpoints.
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// TransitionRequest is the request body for a step navigation.
type TransitionRequest struct {
	Step   wizard.Step      `json:"step"`
	Values model.FormValues `json:"values"`
}

// CompleteRequest is the request body for final submission.
type CompleteRequest struct {
	Values model.FormValues `json:"values"`
}

// Get handles GET /v1/assessments/{type}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	state, err := h.assessmentSvc.StartOrResume(r.Context(), userID, t)
	if err != nil {
		if errors.Is(err, service.ErrNoCompany) {
			writeError(w, http.StatusConflict, "create or join a company before starting an assessment")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Transition handles PUT /v1/assessments/{type}/step
func (h *AssessmentHandler) Transition(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.assessmentSvc.Transition(r.Context(), userID, t, req.Step, req.Values)
	if err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":       "form validation failed",
				"fieldErrors": verr.Errors,
			})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Complete handles POST /v1/assessments/{type}/complete
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.assessmentSvc.Complete(r.Context(), userID, t, req.Values)
	if err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":       "form validation failed",
				"fieldErrors": verr.Errors,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func assessmentType(w http.ResponseWriter, r *http.Request) (model.AssessmentType, bool) {
	t := model.AssessmentType(mux.Vars(r)["type"])
	if !t.Valid() {
		writeError(w, http.StatusNotFound, "unknown assessment type")
		return "", false
	}
	return t, true
}
