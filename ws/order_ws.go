package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/GermanChai/germanchai/pkg/events"
	"github.com/GermanChai/germanchai/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order status changes to the owning user's open
// connections, so the orders screen updates without polling.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of clients
	broadcast  chan userEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type userEvent struct {
	UserID uint
	Event  events.OrderEvent
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan userEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run owns the client table; all membership changes and broadcasts flow
// through the channels.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.UserID] {
				if err := conn.WriteJSON(msg.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOrder implements services.OrderNotifier. Non-blocking: if the hub
// is saturated the event is dropped, the client re-fetches on next load.
func (h *OrderHub) NotifyOrder(userID uint, evt events.OrderEvent) {
	select {
	case h.broadcast <- userEvent{UserID: userID, Event: evt}:
	default:
		log.Printf("ws broadcast dropped for user %d", userID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the read side alive to detect disconnects; clients only
// listen on this channel.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
