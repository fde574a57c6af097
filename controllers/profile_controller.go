package controllers

import (
	"encoding/json"
	"net/http"

	"purposee_server/models"
	"purposee_server/services"
)

// ProfileController handles HTTP requests for profile CRUD
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// CreateProfile handles adding a new profile
func (pc *ProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if profile.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	created, err := pc.ProfileService.AddProfile(r.Context(), profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetProfile handles fetching a profile by userId
func (pc *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	profile, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
}

// UpdateProfile handles partial profile updates
func (pc *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string            `json:"userId"`
		Updates map[string]string `json:"updates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || len(request.Updates) == 0 {
		http.Error(w, "userId and updates are required", http.StatusBadRequest)
		return
	}

	updated, err := pc.ProfileService.UpdateProfile(r.Context(), request.UserID, request.Updates)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
}

// SetPaused handles pausing/unpausing a profile
func (pc *ProfileController) SetPaused(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Paused bool   `json:"paused"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := pc.ProfileService.SetPaused(r.Context(), request.UserID, request.Paused); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"paused": request.Paused})
}

// SetInvisibleMode handles toggling invisible mode (premium)
func (pc *ProfileController) SetInvisibleMode(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID    string `json:"userId"`
		Invisible bool   `json:"invisible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := pc.ProfileService.SetInvisibleMode(r.Context(), request.UserID, request.Invisible); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"invisible": request.Invisible})
}

// DeleteProfile handles removing a profile
func (pc *ProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if err := pc.ProfileService.DeleteProfile(r.Context(), userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted"})
}
