package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"buildchem-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const DefaultClusterChannel = "selection_events"

// Hub fans selection updates out to every open tab of a visitor.
// With Redis configured, Send only publishes and every instance (this one
// included) delivers from the subscription, so a tab never gets a message twice.
type Hub struct {
	// visitor id -> open connections
	clients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex

	rdb     redis.UniversalClient
	channel string

	logger logger.ILogger
}

type clusterMessage struct {
	TargetVisitorId string          `json:"target_visitor_id"`
	Message         json.RawMessage `json:"message"`
}

func NewHub(rdb redis.UniversalClient, channel string, log logger.ILogger) *Hub {
	if channel == "" {
		channel = DefaultClusterChannel
	}
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		channel:    channel,
		logger:     log,
	}
}

// Run owns client registration until ctx is cancelled. On exit every
// remaining client's Send channel is closed.
func (h *Hub) Run(ctx context.Context) {
	var wg sync.WaitGroup
	if h.rdb != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.subscribeToRedis(ctx)
		}()
	}

	defer func() {
		close(h.done)
		h.mu.Lock()
		for id, set := range h.clients {
			for c := range set {
				close(c.Send)
			}
			delete(h.clients, id)
		}
		h.mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.VisitorId]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.VisitorId] = set
			}
			set[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("Hub", "Client registered", map[string]interface{}{"visitor_id": client.VisitorId})

		case client := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[client.VisitorId]; ok {
				if _, ok := set[client]; ok {
					delete(set, client)
					close(client.Send)
				}
				if len(set) == 0 {
					delete(h.clients, client.VisitorId)
				}
			}
			h.mu.Unlock()
			h.logger.Debug("Hub", "Client unregistered", map[string]interface{}{"visitor_id": client.VisitorId})
		}
	}
}

// Register returns false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount returns the number of open connections for a visitor.
func (h *Hub) ClientCount(visitorId string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[visitorId])
}

// Send delivers message to every connection of visitorId, across instances
// when Redis is configured.
func (h *Hub) Send(ctx context.Context, visitorId string, message []byte) {
	if h.rdb == nil {
		h.deliver(visitorId, message)
		return
	}

	payload, err := json.Marshal(clusterMessage{TargetVisitorId: visitorId, Message: message})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode cluster message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := h.rdb.Publish(ctx, h.channel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Redis publish failed, delivering locally", map[string]interface{}{
			"visitor_id": visitorId,
			"error":      err.Error(),
		})
		h.deliver(visitorId, message)
	}
}

func (h *Hub) deliver(visitorId string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[visitorId] {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping message", map[string]interface{}{"visitor_id": visitorId})
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, h.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			h.deliver(payload.TargetVisitorId, payload.Message)
		}
	}
}
