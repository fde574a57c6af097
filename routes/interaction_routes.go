package routes

import (
	"purposee_server/controllers"
	"purposee_server/services"

	"github.com/gorilla/mux"
)

// RegisterInteractionRoutes sets up routes for swipe actions under /api/interaction
func RegisterInteractionRoutes(r *mux.Router, interactionService *services.InteractionService, profileService *services.ProfileService) {
	controller := controllers.NewInteractionController(interactionService, profileService)

	interactionRouter := r.PathPrefix("/api/interaction").Subrouter()

	interactionRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	interactionRouter.HandleFunc("/pass", controller.HandlePass).Methods("POST")
	interactionRouter.HandleFunc("/rewind", controller.HandleRewind).Methods("POST")
}
