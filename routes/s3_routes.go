package routes

import (
	"purposee_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for photo upload/read presigning
func RegisterS3Routes(r *mux.Router) {
	r.HandleFunc("/generate-presigned-url", controllers.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controllers.GetPresignedReadURL).Methods("POST")
}
