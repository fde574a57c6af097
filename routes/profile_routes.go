package routes

import (
	"purposee_server/controllers"
	"purposee_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile operations under /api/profile
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()

	profileRouter.HandleFunc("", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.CreateProfile).Methods("POST")
	profileRouter.HandleFunc("", controller.UpdateProfile).Methods("PATCH")
	profileRouter.HandleFunc("", controller.DeleteProfile).Methods("DELETE")
	profileRouter.HandleFunc("/pause", controller.SetPaused).Methods("POST")
	profileRouter.HandleFunc("/invisible", controller.SetInvisibleMode).Methods("POST")
}
