package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sprout_server/middleware"
	"sprout_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation paths never reach the store, so a service with a nil Dynamo
// client is enough for these tests.
func newTestChatController() *ChatController {
	return NewChatController(&services.ChatService{}, nil)
}

func authenticatedRequest(method, target, body, userID string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}

func TestSendMessage_MissingChannelID(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("POST", "/api/chat/message", `{"text":"hello"}`, "alice")

	controller.SendMessage(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_NonParticipantForbidden(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("POST", "/api/chat/message", `{"channelId":"alice_bob","text":"hi"}`, "carol")

	controller.SendMessage(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendMessage_WhitespaceOnlyTextEchoedBack(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("POST", "/api/chat/message", `{"channelId":"alice_bob","text":"   "}`, "alice")

	controller.SendMessage(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)

	// The submitted text comes back so the client can restore the input box
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "   ", body["text"])
	assert.NotEmpty(t, body["error"])
}

func TestGetMessages_MissingChannelID(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("GET", "/api/chat/messages", "", "alice")

	controller.GetMessages(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMessages_NonParticipantForbidden(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("GET", "/api/chat/messages?channelId=alice_bob", "", "mallory")

	controller.GetMessages(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOpenChannel_RejectsSelfChannel(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("POST", "/api/chat/channel", `{"otherUserId":"alice"}`, "alice")

	controller.OpenChannel(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenChannel_MissingOtherUser(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("POST", "/api/chat/channel", `{}`, "alice")

	controller.OpenChannel(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkMessagesAsRead_MissingChannelID(t *testing.T) {
	controller := newTestChatController()
	w := httptest.NewRecorder()
	r := authenticatedRequest("POST", "/api/chat/messages/mark-as-read", `{}`, "alice")

	controller.MarkMessagesAsRead(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
