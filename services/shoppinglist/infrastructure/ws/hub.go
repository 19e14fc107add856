// Package ws pushes shopping list updates to every open browser tab of a
// shopper over WebSocket.
package ws

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ghuser/budgeteer/pkg/logger"
)

const (
	writeWait  = 20 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

type client struct {
	shopperID string
	conn      *websocket.Conn
	send      chan []byte
	once      sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub tracks open connections per shopper. Notify never blocks: a client
// whose buffer is full is dropped and must reconnect.
type Hub struct {
	log      logger.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
}

// NewHub returns a Hub accepting connections from origins allowed by checkOrigin.
// A nil checkOrigin accepts any origin.
func NewHub(log logger.Logger, checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Hub{
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
		clients:  make(map[string]map[*client]struct{}),
	}
}

// Serve upgrades the request and registers the connection for shopperID.
// initial, when non-nil, is sent as the first frame.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, shopperID string, initial any) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WarnContext(r.Context(), "ws upgrade failed", "error", err)
		return
	}

	c := &client{shopperID: shopperID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	h.log.InfoContext(r.Context(), "shopping list ws connected", "shopper_id", shopperID)

	if initial != nil {
		if data, err := json.Marshal(initial); err == nil {
			h.trySend(c, data)
		}
	}

	go h.writeLoop(c)
	go h.readLoop(c)
}

// Notify sends payload to every connection of shopperID.
func (h *Hub) Notify(shopperID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("ws marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients[shopperID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("ws client too slow, dropping", "shopper_id", shopperID)
		h.unregister(c)
	}
}

// Connections reports how many connections shopperID has open.
func (h *Hub) Connections(shopperID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[shopperID])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.shopperID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.shopperID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.shopperID]; ok {
		if _, present := set[c]; present {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.shopperID)
			}
			c.close()
		}
	}
	h.mu.Unlock()
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.unregister(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}

// readLoop only keeps the deadline fresh; clients never send list changes
// over the socket. A text "ping" is answered through the write loop.
func (h *Hub) readLoop(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(4 << 10)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		mt, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		if mt == websocket.TextMessage && strings.EqualFold(strings.TrimSpace(string(msg)), "ping") {
			h.trySend(c, []byte(`"pong"`))
		}
	}
}

func (h *Hub) trySend(c *client, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c.shopperID][c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
