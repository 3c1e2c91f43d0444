package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"esgcompass/internal/analysis"
	"esgcompass/internal/model"
	"esgcompass/internal/service"
	"esgcompass/internal/transport/rest/middleware"
)

// AnalysisHandler handles report generation, retrieval, export and
// expert review requests.
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// GenerateRequest is the request body for an analysis invocation.
type GenerateRequest struct {
	AnalysisType string           `json:"analysisType,omitempty"`
	Values       model.FormValues `json:"values"`
}

// Generate handles POST /v1/assessments/{type}/analysis
func (h *AnalysisHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.analysisSvc.Analyze(r.Context(), userID, t, req.AnalysisType, req.Values)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Get handles GET /v1/assessments/{type}/analysis
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	report, err := h.analysisSvc.GetReport(r.Context(), userID, t)
	if err != nil {
		if errors.Is(err, service.ErrNoReport) {
			writeError(w, http.StatusNotFound, "no analysis report yet")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /v1/assessments/{type}/analysis/export
func (h *AnalysisHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	filename, body, err := h.analysisSvc.Export(r.Context(), userID, t)
	if err != nil {
		if errors.Is(err, service.ErrNoReport) {
			writeError(w, http.StatusNotFound, "no analysis report yet")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// RequestReview handles POST /v1/assessments/{type}/analysis/review
func (h *AnalysisHandler) RequestReview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	t, ok := assessmentType(w, r)
	if !ok {
		return
	}

	request, err := h.analysisSvc.RequestReview(r.Context(), userID, t)
	if err != nil {
		if errors.Is(err, service.ErrNoReport) {
			writeError(w, http.StatusConflict, "generate an analysis before requesting a review")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, request)
}

// writeAnalysisError maps the invoker failure classes to distinct
// user-facing messages; the client shows a manual retry for all of them.
func writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analysis.ErrServiceUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "Service Unavailable",
			"detail": "The analysis service could not be reached. " +
				"Please try again in a moment.",
		})
	case errors.Is(err, analysis.ErrUpstreamModel):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":  "AI Service Error",
			"detail": "The analysis model returned an error. Please retry.",
		})
	case errors.Is(err, analysis.ErrMalformedResponse):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":  "Unexpected Response",
			"detail": "The analysis service answered in an unexpected format. Please retry.",
		})
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
