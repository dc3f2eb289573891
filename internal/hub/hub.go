// Package hub fans highlight updates out to the websockets watching a board.
package hub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/NikolaTosic-sudo/chess-marks/internal/responses"
)

// DefaultWriteWait bounds how long one slow watcher can hold up a broadcast.
const DefaultWriteWait = 5 * time.Second

type client struct {
	conn      *websocket.Conn
	mu        sync.Mutex
	closeOnce sync.Once
}

func (c *client) write(msg []byte, wait time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		if err := c.conn.Close(); err != nil {
			responses.LogError("websocket close", err)
		}
	})
}

type Hub struct {
	mu        sync.RWMutex
	clients   map[uuid.UUID]map[*client]struct{}
	writeWait time.Duration
}

func New() *Hub {
	return &Hub{
		clients:   make(map[uuid.UUID]map[*client]struct{}),
		writeWait: DefaultWriteWait,
	}
}

// Serve subscribes conn to boardID and blocks until the peer goes away.
func (h *Hub) Serve(boardID uuid.UUID, conn *websocket.Conn) {
	c := &client{conn: conn}
	h.add(boardID, c)

	defer func() {
		h.remove(boardID, c)
		c.close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !isExpectedClose(err) {
				responses.LogError("websocket read", err)
			}
			return
		}
	}
}

// isExpectedClose reports whether the peer hung up the way browsers do
// when a tab is closed or navigates away.
func isExpectedClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

func (h *Hub) Broadcast(boardID uuid.UUID, msg []byte) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients[boardID]))
	for c := range h.clients[boardID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(msg, h.writeWait); err != nil {
			responses.LogError("websocket write error", err)
			h.remove(boardID, c)
			c.close()
		}
	}
}

func (h *Hub) Count(boardID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[boardID])
}

func (h *Hub) add(boardID uuid.UUID, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[boardID] == nil {
		h.clients[boardID] = make(map[*client]struct{})
	}
	h.clients[boardID][c] = struct{}{}
}

func (h *Hub) remove(boardID uuid.UUID, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients[boardID], c)
	if len(h.clients[boardID]) == 0 {
		delete(h.clients, boardID)
	}
}
