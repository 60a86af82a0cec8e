package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is one dashboard notification: an order or assignment changed state.
type Event struct {
	Type         string    `json:"type"` // "order_status" | "assignment_status" | "driver_assigned"
	OrderID      uint      `json:"orderId"`
	AssignmentID uint      `json:"assignmentId,omitempty"`
	Status       string    `json:"status"`
	At           time.Time `json:"at"`
}

// EventHub fans order lifecycle events out to admin dashboard sockets.
// Publishing never blocks the request path: a slow or dead subscriber is
// dropped, not waited on.
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *EventHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish is safe on a nil hub so services can run without one in tests.
func (h *EventHub) Publish(evt Event) {
	if h == nil {
		return
	}
	if evt.At.IsZero() {
		evt.At = time.Now()
	}
	select {
	case h.broadcast <- evt:
	default:
		// feed full; the dashboard refetches anyway
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/events (admin-gated by AuthMiddleware before upgrade)
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	go h.drain(conn)
}

// drain keeps the read side alive so pings and close frames are handled;
// the feed is one-way.
func (h *EventHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
