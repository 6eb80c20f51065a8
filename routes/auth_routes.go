package routes

import (
	"sprout_server/controllers"
	"sprout_server/middleware"
	"sprout_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for authentication under /api/auth
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService, profileService *services.UserProfileService) {
	controller := controllers.NewAuthController(authService, profileService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/signup", controller.SignUp).Methods("POST")
	authRouter.HandleFunc("/signin", controller.SignIn).Methods("POST")

	protected := r.PathPrefix("/api/auth").Subrouter()
	protected.Use(middleware.RequireAuth(authService))
	protected.HandleFunc("/me", controller.Me).Methods("GET")
}
