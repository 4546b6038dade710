package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is pushed to a user's live connections when one of their records
// changes in a way worth surfacing (task completed, reminder created,
// session ended).
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Connection represents one websocket connection for a user.
type Connection struct {
	Conn   *websocket.Conn
	Send   chan []byte
	UserID int64
}

// Hub fans events out to each user's open connections.
type Hub struct {
	log   *logrus.Logger
	mu    sync.Mutex
	conns map[int64]map[*Connection]bool
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		log:   log,
		conns: make(map[int64]map[*Connection]bool),
	}
}

func (h *Hub) Register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c.UserID] == nil {
		h.conns[c.UserID] = make(map[*Connection]bool)
	}
	h.conns[c.UserID][c] = true
}

func (h *Hub) Unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[c.UserID]; ok {
		if set[c] {
			delete(set, c)
			close(c.Send)
		}
		if len(set) == 0 {
			delete(h.conns, c.UserID)
		}
	}
}

// Notify sends an event to every open connection of one user. Connections
// with a full send buffer are dropped.
func (h *Hub) Notify(userID int64, event Event) {
	b, err := json.Marshal(event)
	if err != nil {
		h.log.WithError(err).Error("failed to encode ws event")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns[userID] {
		select {
		case c.Send <- b:
		default:
			delete(h.conns[userID], c)
			close(c.Send)
		}
	}
}

// StartWrite pumps queued events to the socket until the channel closes.
func (c *Connection) StartWrite() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
