package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"sprout_server/routes"
	"sprout_server/services"
	"sprout_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	matchService := &services.MatchService{Profiles: userProfileService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	s3Service := &services.S3Service{Client: services.InitializeS3Client(), Bucket: os.Getenv("S3_BUCKET_NAME")}

	authService, err := services.NewAuthService(dynamoService, userProfileService, os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	// Start the Socket.IO server for live chat delivery
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

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
		fmt.Fprintln(w, "Welcome to Sprout")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Live updates
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAuthRoutes(r, authService, userProfileService)
	routes.RegisterUserProfileRoutes(r, userProfileService, authService)
	routes.RegisterMatchRoutes(r, matchService, authService)
	routes.RegisterChatRoutes(r, chatService, authService, socketServer)
	routes.RegisterS3Routes(r, s3Service, authService)

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
