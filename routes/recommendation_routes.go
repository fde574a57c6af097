package routes

import (
	"purposee_server/controllers"
	"purposee_server/services"

	"github.com/gorilla/mux"
)

// RegisterRecommendationRoutes sets up routes for the swipe deck under /api/recommendations
func RegisterRecommendationRoutes(r *mux.Router, recommendationService *services.RecommendationService) {
	controller := controllers.NewRecommendationController(recommendationService)

	recommendationRouter := r.PathPrefix("/api/recommendations").Subrouter()

	recommendationRouter.HandleFunc("", controller.GetDeck).Methods("GET")
	recommendationRouter.HandleFunc("/next", controller.NextCandidate).Methods("GET")
}
