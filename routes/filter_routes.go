package routes

import (
	"purposee_server/controllers"
	"purposee_server/services"

	"github.com/gorilla/mux"
)

// RegisterFilterRoutes sets up routes for filter settings under /api/filters
func RegisterFilterRoutes(r *mux.Router, filterService *services.FilterService) {
	controller := controllers.NewFilterController(filterService)

	filterRouter := r.PathPrefix("/api/filters").Subrouter()

	filterRouter.HandleFunc("", controller.GetFilters).Methods("GET")
	filterRouter.HandleFunc("", controller.SaveFilters).Methods("PUT")
	filterRouter.HandleFunc("/reset", controller.ResetFilters).Methods("POST")
}
