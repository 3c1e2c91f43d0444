package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"esgcompass/internal/model"
	"esgcompass/internal/service"
	"esgcompass/internal/transport/rest/middleware"
)

// CompanyHandler handles the profile/company endpoints.
type CompanyHandler struct {
	companySvc *service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companySvc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

// Get handles GET /v1/company
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	company, err := h.companySvc.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if company == nil {
		writeError(w, http.StatusNotFound, "no company on profile")
		return
	}

	writeJSON(w, http.StatusOK, company)
}

// Put handles PUT /v1/company
func (h *CompanyHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var company model.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.companySvc.Save(r.Context(), userID, &company)
	if err != nil {
		var verr *service.CompanyValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":       "company profile validation failed",
				"fieldErrors": verr.Errors,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, saved)
}
