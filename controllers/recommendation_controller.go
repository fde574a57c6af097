package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"purposee_server/services"
)

// RecommendationController handles HTTP requests for the swipe deck
type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController instance
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetDeck handles fetching the full ranked deck for a viewer
func (rc *RecommendationController) GetDeck(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	deck, err := rc.RecommendationService.GetDeck(r.Context(), userID)
	if err != nil {
		log.Println("Error ranking deck:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(deck)
}

// NextCandidate handles fetching the next profile to present. An exhausted
// deck returns {"candidate": null}, which the client shows as end-of-deck.
func (rc *RecommendationController) NextCandidate(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	candidate, err := rc.RecommendationService.NextCandidate(r.Context(), userID)
	if err != nil {
		log.Println("Error fetching next candidate:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"candidate": candidate})
}
