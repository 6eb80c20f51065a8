package routes

import (
	"sprout_server/controllers"
	"sprout_server/middleware"
	"sprout_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, authService *services.AuthService, socketServer *socketio.Server) {
	controller := controllers.NewChatController(chatService, socketServer)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(middleware.RequireAuth(authService))

	chatRouter.HandleFunc("/channel", controller.OpenChannel).Methods("POST")
	chatRouter.HandleFunc("/message", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/mark-as-read", controller.MarkMessagesAsRead).Methods("POST")
}
