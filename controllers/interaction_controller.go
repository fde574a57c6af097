package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"purposee_server/services"
)

// InteractionController handles HTTP requests for likes, passes and rewind
type InteractionController struct {
	InteractionService *services.InteractionService
	ProfileService     *services.ProfileService
}

// NewInteractionController creates a new InteractionController instance
func NewInteractionController(interactionService *services.InteractionService, profileService *services.ProfileService) *InteractionController {
	return &InteractionController{InteractionService: interactionService, ProfileService: profileService}
}

// HandleLike records a like (or super-like) and reports a mutual match
func (ic *InteractionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      string `json:"userId"`
		TargetID    string `json:"targetId"`
		IsSuperLike bool   `json:"isSuperLike"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetID == "" {
		http.Error(w, "userId and targetId are required", http.StatusBadRequest)
		return
	}

	result, err := ic.InteractionService.RecordLike(r.Context(), request.UserID, request.TargetID, request.IsSuperLike)
	if err != nil {
		log.Println("Error recording like:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// HandlePass records a pass
func (ic *InteractionController) HandlePass(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetID == "" {
		http.Error(w, "userId and targetId are required", http.StatusBadRequest)
		return
	}

	if err := ic.InteractionService.RecordPass(r.Context(), request.UserID, request.TargetID); err != nil {
		log.Println("Error recording pass:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Pass recorded"})
}

// HandleRewind undoes the viewer's most recent like or pass (premium)
func (ic *InteractionController) HandleRewind(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	profile, err := ic.ProfileService.GetProfile(r.Context(), request.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if !profile.IsPremium {
		http.Error(w, "Rewind requires premium", http.StatusForbidden)
		return
	}

	targetID, err := ic.InteractionService.Rewind(r.Context(), request.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"rewoundTargetId": targetID})
}
