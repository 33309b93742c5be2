// Package sse fans game events out to server-sent event streams for
// overlays and dashboards.
package sse

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardReels_Go/internal/metrics"
)

// Event is one frame on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected stream consumer
type Client struct {
	ID     string
	Events chan Event
	filter map[string]bool // nil accepts every type
}

func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub tracks clients and broadcasts events to them from a single loop.
// register and unregister are unbuffered: a hand-off succeeds only while the
// loop is running, so nothing is accepted after Stop.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	shutdown   chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a hub; call Start before registering clients
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan string),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start launches the broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel so open streams return
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for id, c := range h.clients {
			close(c.Events)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.StreamClients.Set(0)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			n := len(h.clients)
			h.mu.Unlock()
			metrics.StreamClients.Set(float64(n))

		case id := <-h.unregister:
			h.mu.Lock()
			if c, ok := h.clients[id]; ok {
				close(c.Events)
				delete(h.clients, id)
			}
			n := len(h.clients)
			h.mu.Unlock()
			metrics.StreamClients.Set(float64(n))

		case evt := <-h.broadcast:
			h.mu.RLock()
			for _, c := range h.clients {
				if !c.wants(evt.Type) {
					continue
				}
				// slow consumers miss events rather than stall the hub
				select {
				case c.Events <- evt:
				default:
					metrics.StreamEventsDropped.Inc()
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client interested in eventTypes (all types when empty).
// It returns false once the hub is stopping.
func (h *Hub) Register(eventTypes []string) (*Client, bool) {
	c := &Client{
		ID:     uuid.New().String(),
		Events: make(chan Event, ClientEventBuffer),
	}
	for _, t := range eventTypes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if c.filter == nil {
			c.filter = make(map[string]bool)
		}
		c.filter[t] = true
	}

	select {
	case h.register <- c:
		return c, true
	case <-h.shutdown:
		return nil, false
	}
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client without blocking
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}
	select {
	case h.broadcast <- evt:
	default:
		metrics.StreamEventsDropped.Inc()
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatMessage renders evt in text/event-stream framing
func FormatMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	if evt.ID != "" {
		b.WriteString("id: " + evt.ID + "\n")
	}
	b.WriteString("event: " + evt.Type + "\n")
	b.WriteString("data: ")
	b.Write(data)
	b.WriteString("\n\n")
	return []byte(b.String()), nil
}
