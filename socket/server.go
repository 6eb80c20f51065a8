package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server used for live chat
// delivery. Clients join the room named after their channel id; every
// successful publish is broadcast to that room as "newMessage".
//
// Joining a room the connection is already in is a no-op, so a repeated
// subscribe never duplicates delivery. Disconnects drop the connection from
// all rooms, which is the unsubscribe path.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, channelID string) {
		if channelID == "" {
			log.Println("❌ Invalid channelId in join request")
			return
		}
		s.Join(channelID)
		log.Printf("👥 Socket %s joined channel %s", s.ID(), channelID)
	})

	server.OnEvent("/", "leave", func(s socketio.Conn, channelID string) {
		if channelID == "" {
			return
		}
		s.Leave(channelID)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Printf("❌ Socket error: %v", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return server
}
