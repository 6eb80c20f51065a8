package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"sprout_server/helpers"
	"sprout_server/middleware"
	"sprout_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
	Socket      *socketio.Server
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService, socket *socketio.Server) *ChatController {
	return &ChatController{ChatService: service, Socket: socket}
}

// OpenChannel opens (or re-opens) the channel between the caller and another user
func (c *ChatController) OpenChannel(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OtherUserID string `json:"otherUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	if request.OtherUserID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "otherUserId is required")
		return
	}
	if request.OtherUserID == userID {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Cannot open a channel with yourself")
		return
	}

	channel, err := c.ChatService.OpenChannel(r.Context(), userID, request.OtherUserID)
	if err != nil {
		log.Printf("❌ Failed to open channel: %v", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to open channel")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, channel)
}

// SendMessage publishes a message to a channel and broadcasts it to the
// channel's socket room. Failures echo the submitted text back so the client
// can restore the input box.
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChannelID string `json:"channelId"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ChannelID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "channelId is required")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	if !services.IsParticipant(request.ChannelID, userID) {
		helpers.WriteJSONError(w, http.StatusForbidden, "Not a participant of this channel")
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), request.ChannelID, userID, request.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			helpers.WriteJSONResponse(w, http.StatusBadRequest, map[string]string{
				"error": "Message text must not be empty",
				"text":  request.Text,
			})
			return
		}
		log.Printf("❌ Failed to send message: %v", err)
		helpers.WriteJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to send message",
			"text":  request.Text,
		})
		return
	}

	if c.Socket != nil {
		c.Socket.BroadcastToRoom("/", message.ChannelID, "newMessage", message)
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, message)
}

// GetMessages fetches a channel's messages in ascending (timestamp, id) order
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	channelID := r.URL.Query().Get("channelId")
	if channelID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "channelId is required")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	if !services.IsParticipant(channelID, userID) {
		helpers.WriteJSONError(w, http.StatusForbidden, "Not a participant of this channel")
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.GetMessages(r.Context(), channelID, limit)
	if err != nil {
		log.Printf("❌ Error fetching messages: %v", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, messages)
}

// MarkMessagesAsRead marks messages received by the caller as read
func (c *ChatController) MarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChannelID string `json:"channelId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ChannelID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "channelId is required")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	if !services.IsParticipant(request.ChannelID, userID) {
		helpers.WriteJSONError(w, http.StatusForbidden, "Not a participant of this channel")
		return
	}

	updated, err := c.ChatService.MarkMessagesAsRead(r.Context(), request.ChannelID, userID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to mark messages as read")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"status": "success", "updated": updated})
}
