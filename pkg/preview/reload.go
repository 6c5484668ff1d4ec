package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageType represents the type of live-preview message.
type MessageType string

const (
	TypeContent MessageType = "content"
	TypeReload  MessageType = "reload"
	TypeError   MessageType = "error"
)

// Message is sent to connected preview clients via WebSocket.
type Message struct {
	Type  MessageType `json:"type"`
	HTML  string      `json:"html,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Hub manages WebSocket connections for live preview updates. Every
// successful render is broadcast to connected clients so open previews
// track the latest content.
type Hub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewHub creates a new preview hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Preview server is a local dev tool
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyContent pushes freshly rendered markup to all clients.
func (h *Hub) NotifyContent(html string) {
	h.broadcast(Message{Type: TypeContent, HTML: html})
}

// NotifyReload asks all clients to reload the page.
func (h *Hub) NotifyReload() {
	h.broadcast(Message{Type: TypeReload})
}

// NotifyError pushes a render error to all clients.
func (h *Hub) NotifyError(errMsg string) {
	h.broadcast(Message{Type: TypeError, Error: errMsg})
}

// ClientCount returns the number of connected preview clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// broadcast sends a message to all connected clients. Clients whose
// connection fails are dropped.
func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
