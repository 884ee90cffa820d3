package ws

import (
	"sync"

	"huurly_backend/internal/logger"
	"huurly_backend/internal/models"
)

// Manager tracks open notification connections per user. A user can be
// connected from several devices at once.
type Manager struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]bool)
			}
			m.clients[client.UserID][client] = true
			m.mu.Unlock()
			logger.Debug("WebSocket client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok && conns[client] {
				close(client.Send)
				delete(conns, client)
				if len(conns) == 0 {
					delete(m.clients, client.UserID)
				}
				logger.Debug("WebSocket client unregistered", "user_id", client.UserID)
			}
			m.mu.Unlock()
		}
	}
}

// Push implements services.RealtimePusher. A connection whose send
// buffer is full is dropped rather than blocking the caller.
func (m *Manager) Push(userID string, notification *models.Notification) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients[userID] {
		select {
		case client.Send <- notification:
		default:
			go func(c *Client) { m.unregister <- c }(client)
		}
	}
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, conns := range m.clients {
		count += len(conns)
	}
	return count
}

func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID]) > 0
}
