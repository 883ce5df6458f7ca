package ws

import (
	"encoding/json"
	"sync"
)

// Event is one push-channel broadcast frame.
type Event struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Registry tracks live dashboard connections keyed by session id. It is
// advisory state only; a missing connection silently drops the broadcast.
type Registry interface {
	Register(sessionID string, c *Client)
	Unregister(sessionID string)
	Broadcast(event Event)
}

// Hub is the in-process Registry implementation.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*Client
}

func NewHub() *Hub { return &Hub{conns: make(map[string]*Client)} }

func (h *Hub) Register(sessionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[sessionID] = c
}

func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, sessionID)
}

// Broadcast sends the event to every connected observer, best effort.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.conns {
		c.Send(event)
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
