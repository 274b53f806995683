package notify

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	"salesdesk/models"
)

// Hub fans notifications out to every connected desk tab. A tab that
// cannot keep up is dropped rather than blocking the rest.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan models.Notification
	log     *logrus.Entry
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]chan models.Notification),
		log:     logrus.WithField("component", "notify"),
	}
}

// Broadcast queues a notification for every connected client.
func (h *Hub) Broadcast(n models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.clients {
		select {
		case ch <- n:
		default:
			h.log.WithField("type", n.Type).Warn("dropping slow notification client")
			close(ch)
			delete(h.clients, conn)
		}
	}
}

// ClientCount reports how many tabs are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Serve pumps notifications to one websocket connection until the
// client hangs up. Runs on the connection's own goroutine.
func (h *Hub) Serve(c *websocket.Conn) {
	defer c.Close()

	ch := make(chan models.Notification, 16)
	h.mu.Lock()
	h.clients[c] = ch
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[c]; ok {
			close(ch)
			delete(h.clients, c)
		}
		h.mu.Unlock()
	}()

	// Reader goroutine only notices the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := c.WriteJSON(n); err != nil {
				h.log.WithError(err).Debug("notification write failed")
				return
			}
		case <-done:
			return
		}
	}
}
