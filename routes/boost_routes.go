package routes

import (
	"purposee_server/controllers"
	"purposee_server/services"

	"github.com/gorilla/mux"
)

// RegisterBoostRoutes sets up routes for boost operations under /api/boost
func RegisterBoostRoutes(r *mux.Router, boostService *services.BoostService) {
	controller := controllers.NewBoostController(boostService)

	boostRouter := r.PathPrefix("/api/boost").Subrouter()

	boostRouter.HandleFunc("", controller.GetBoostStatus).Methods("GET")
	boostRouter.HandleFunc("/activate", controller.ActivateBoost).Methods("POST")
}
