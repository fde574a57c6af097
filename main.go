package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"purposee_server/routes"
	"purposee_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Redis-backed deck store
	log.Println("Initializing Redis client...")
	redisClient := services.InitializeRedisClient()
	deckStore := services.NewDeckStore(redisClient)
	log.Println("Redis client initialized.")

	// Initialize Services
	profileService := &services.ProfileService{Dynamo: dynamoService}
	interactionService := &services.InteractionService{Dynamo: dynamoService, Decks: deckStore}
	filterService := &services.FilterService{Dynamo: dynamoService, Decks: deckStore}
	boostService := &services.BoostService{Dynamo: dynamoService, Profiles: profileService}
	recommendationService := &services.RecommendationService{
		Profiles:     profileService,
		Interactions: interactionService,
		Filters:      filterService,
		Decks:        deckStore,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Purposee")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterInteractionRoutes(r, interactionService, profileService)
	routes.RegisterFilterRoutes(r, filterService)
	routes.RegisterRecommendationRoutes(r, recommendationService)
	routes.RegisterBoostRoutes(r, boostService)
	routes.RegisterS3Routes(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
