// internal/websocket/hub.go
// WebSocket hub manages client connections and message broadcasting

package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"badminton-court-engine/internal/services"
)

// Hub maintains active websocket connections and broadcasts messages
type Hub struct {
	// Registered clients by session ID
	sessions map[string]map[*Client]bool

	// Registered clients by user ID
	users map[string]*Client

	// Register client
	register chan *Client

	// Unregister client
	unregister chan *Client

	// Broadcast messages to a session's viewers
	broadcast chan *Message

	// Services
	services *services.Container
	logger   *log.Logger

	// Mutex for concurrent access
	mu sync.RWMutex
}

// Message represents a WebSocket message
type Message struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Data      interface{} `json:"data"`
}

// NewHub creates a new WebSocket hub
func NewHub(services *services.Container, logger *log.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		users:      make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		services:   services,
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// registerClient adds a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.userID != "" {
		if existing, exists := h.users[client.userID]; exists {
			existing.close()
			h.removeClient(existing)
		}
		h.users[client.userID] = client
	}

	for _, sessionID := range client.sessions {
		if h.sessions[sessionID] == nil {
			h.sessions[sessionID] = make(map[*Client]bool)
		}
		h.sessions[sessionID][client] = true
	}

	h.logger.Printf("Client registered: %s (sessions: %v)", client.userID, client.sessions)
}

// unregisterClient removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClient(client)
	client.close()

	h.logger.Printf("Client unregistered: %s", client.userID)
}

// removeClient removes client from all registrations
func (h *Hub) removeClient(client *Client) {
	if client.userID != "" {
		delete(h.users, client.userID)
	}

	for _, sessionID := range client.sessions {
		if clients, exists := h.sessions[sessionID]; exists {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.sessions, sessionID)
			}
		}
	}
}

// broadcastMessage sends a message to relevant clients
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Printf("Failed to marshal message: %v", err)
		return
	}

	if message.SessionID != "" {
		if clients, exists := h.sessions[message.SessionID]; exists {
			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.removeClient(client)
					client.close()
				}
			}
		}
	}

	if message.UserID != "" {
		if client, exists := h.users[message.UserID]; exists {
			select {
			case client.send <- data:
			default:
				h.removeClient(client)
				client.close()
			}
		}
	}
}

// BroadcastSessionUpdate broadcasts an update to everyone watching a session
func (h *Hub) BroadcastSessionUpdate(sessionID string, updateType string, data interface{}) {
	message := &Message{
		Type:      updateType,
		SessionID: sessionID,
		Data:      data,
	}
	h.broadcast <- message
}

// SendToUser sends a message to a specific user
func (h *Hub) SendToUser(userID string, messageType string, data interface{}) {
	message := &Message{
		Type:   messageType,
		UserID: userID,
		Data:   data,
	}
	h.broadcast <- message
}

// SubscribeToSession subscribes a client to session updates
func (h *Hub) SubscribeToSession(client *Client, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.sessions = append(client.sessions, sessionID)

	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[*Client]bool)
	}
	h.sessions[sessionID][client] = true

	h.logger.Printf("Client %s subscribed to session %s", client.userID, sessionID)
}

// UnsubscribeFromSession unsubscribes a client from session updates
func (h *Hub) UnsubscribeFromSession(client *Client, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, id := range client.sessions {
		if id == sessionID {
			client.sessions = append(client.sessions[:i], client.sessions[i+1:]...)
			break
		}
	}

	if clients, exists := h.sessions[sessionID]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.sessions, sessionID)
		}
	}

	h.logger.Printf("Client %s unsubscribed from session %s", client.userID, sessionID)
}
