package api

import (
	"log"
	"net/http"
	"time"

	"estacioneai/internal/ws"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub *ws.Hub
}

func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket upgrades the connection and streams hub events to it until
// either side goes away.
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	sub := h.hub.Subscribe()

	// Writer: drains the subscription. The channel closes when the hub drops
	// the subscriber, which ends the loop and the connection.
	go func() {
		defer conn.Close()
		for event := range sub.Events() {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Error writing to WebSocket client: %v", err)
				h.hub.Unsubscribe(sub)
				return
			}
		}
	}()

	// Reader: only watches for the client closing the socket.
	go func() {
		defer func() {
			h.hub.Unsubscribe(sub)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket error: %v", err)
				}
				return
			}
		}
	}()
}
