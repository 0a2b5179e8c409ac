package inboxws

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	websocket "github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"

	"github.com/Isaiahshap/pulse/internal/models"
)

// Hub fans new contact messages out to every connected staff client.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	done       chan struct{}
	logger     *zap.Logger
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

type Event struct {
	Type      string                 `json:"type"`
	Contact   *models.ContactMessage `json:"contact,omitempty"`
	Content   string                 `json:"content,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

// Run owns the client set until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info("staff inbox client connected", zap.String("user_id", client.userID), zap.Int("clients", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Info("staff inbox client disconnected", zap.String("user_id", client.userID), zap.Int("clients", len(h.clients)))
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// Register closes the client once Run has returned; Unregister is a no-op then.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// PublishContact never blocks the submitting request; when the queue is full
// the event is dropped and logged.
func (h *Hub) PublishContact(message models.ContactMessage) {
	event := &Event{
		Type:      "contact",
		Contact:   &message,
		Timestamp: formatTimestamp(message.ReceivedAt),
	}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("staff inbox queue full, dropping event", zap.String("contact_id", message.ID))
	}
}

func (h *Hub) deliver(event *Event) {
	encoded, err := sonic.Marshal(event)
	if err != nil {
		h.logger.Error("encode inbox event", zap.Error(err))
		return
	}

	for client := range h.clients {
		if !client.enqueue(encoded) {
			h.logger.Warn("staff inbox client too slow, disconnecting", zap.String("user_id", client.userID))
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	client.close()
}

// enqueue reports false when the client is closed or its buffer is full.
func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// ReadPump keeps the connection alive and answers pings. Staff clients have
// nothing else to send.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type string `json:"type"`
		}
		if err := sonic.Unmarshal(payload, &incoming); err != nil {
			c.reply("error", "invalid message payload")
			continue
		}
		if incoming.Type != "ping" {
			c.reply("error", "unsupported message type")
			continue
		}
		c.reply("pong", "")
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (c *Client) reply(eventType, content string) {
	payload, err := sonic.Marshal(Event{
		Type:      eventType,
		Content:   content,
		Timestamp: formatTimestamp(time.Now()),
	})
	if err != nil {
		return
	}
	if !c.enqueue(payload) {
		c.hub.Unregister(c)
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
