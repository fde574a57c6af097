package controllers

import (
	"encoding/json"
	"net/http"

	"purposee_server/services"
)

// BoostController handles HTTP requests for profile boosts
type BoostController struct {
	BoostService *services.BoostService
}

// NewBoostController creates a new BoostController instance
func NewBoostController(boostService *services.BoostService) *BoostController {
	return &BoostController{BoostService: boostService}
}

// ActivateBoost handles turning on the viewer's boost
func (bc *BoostController) ActivateBoost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	status, err := bc.BoostService.ActivateBoost(r.Context(), request.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// GetBoostStatus handles reporting the viewer's boost state
func (bc *BoostController) GetBoostStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	status, err := bc.BoostService.GetBoostStatus(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}
