package connection

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents one connected presentation layer
type Client struct {
	ID        string
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID string // session the client is watching
}

// Manager handles all client connections
type Manager struct {
	clients    map[string]*Client // connection IDs to clients
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start begins processing connection events
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.Register:
			m.mutex.Lock()
			m.clients[client.ID] = client
			m.mutex.Unlock()
		case client := <-m.Unregister:
			m.mutex.Lock()
			if _, ok := m.clients[client.ID]; ok {
				delete(m.clients, client.ID)
				close(client.Send)
			}
			m.mutex.Unlock()
		}
	}
}

// SendToClient sends a message to a specific client
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		client.Send <- message
		return true
	}
	return false
}

// SendToSession sends a message to every client watching a session
func (m *Manager) SendToSession(sessionID string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, client := range m.clients {
		if client.SessionID == sessionID {
			client.Send <- message
		}
	}
}

// SessionClientCount returns how many clients are watching a session
func (m *Manager) SessionClientCount(sessionID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	count := 0
	for _, client := range m.clients {
		if client.SessionID == sessionID {
			count++
		}
	}
	return count
}
