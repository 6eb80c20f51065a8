package routes

import (
	"sprout_server/controllers"
	"sprout_server/middleware"
	"sprout_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, authService *services.AuthService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.RequireAuth(authService))

	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
	matchRouter.HandleFunc("/by-skill", controller.GetMatchesBySkill).Methods("GET")
}
