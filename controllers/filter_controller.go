package controllers

import (
	"encoding/json"
	"net/http"

	"purposee_server/models"
	"purposee_server/services"
)

// FilterController handles HTTP requests for discovery filter settings
type FilterController struct {
	FilterService *services.FilterService
}

// NewFilterController creates a new FilterController instance
func NewFilterController(filterService *services.FilterService) *FilterController {
	return &FilterController{FilterService: filterService}
}

// GetFilters handles fetching the viewer's filter settings
func (fc *FilterController) GetFilters(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	state, err := fc.FilterService.GetFilterState(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(state)
}

// SaveFilters handles storing new filter settings
func (fc *FilterController) SaveFilters(w http.ResponseWriter, r *http.Request) {
	var state models.FilterState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	saved, err := fc.FilterService.SaveFilterState(r.Context(), state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(saved)
}

// ResetFilters handles restoring default filter settings
func (fc *FilterController) ResetFilters(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	state, err := fc.FilterService.ResetFilterState(r.Context(), request.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(state)
}
