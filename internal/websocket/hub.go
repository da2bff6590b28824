package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"sadguru-seva-be/internal/pkg/logger"
)

// LiveUpdate is the payload fanned out when japa progress changes.
type LiveUpdate struct {
	Kind        string `json:"kind"` // "round_completed" | "login"
	UserToken   string `json:"user_token"`
	Name        string `json:"name,omitempty"`
	TotalCount  int    `json:"total_count,omitempty"`
	RoundsToday int    `json:"rounds_today,omitempty"`
}

type Hub struct {
	// Registered clients map: user token -> list of clients (multi-device)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserToken] = append(h.clients[client.UserToken], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_token": client.UserToken})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserToken]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserToken] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserToken]) == 0 {
					delete(h.clients, client.UserToken)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_token": client.UserToken})
				}
			}
			h.mu.Unlock()
		}
	}
}

// dropStalled hands clients with a full send buffer to the unregister loop.
// Must be called with no lock held: the loop needs the write lock, and only
// it closes the Send channel, so a client stalled in two fanouts at once is
// closed exactly once.
func (h *Hub) dropStalled(stalled []*Client) {
	for _, client := range stalled {
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"user_token": client.UserToken})
		h.unregister <- client
	}
}

// Broadcast sends a live update to ALL connected clients. Round completions
// are hub-wide so every open counter sees community progress move.
func (h *Hub) Broadcast(update LiveUpdate) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "live_update",
		"data": update,
	})

	h.mu.RLock()
	var stalled []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stalled = append(stalled, client)
			}
		}
	}
	h.mu.RUnlock()
	h.dropStalled(stalled)

	// Publish to Redis for other instances
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_token": "*",
			"message":      data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Send delivers a live update only to one user's connections.
func (h *Hub) Send(userToken string, update LiveUpdate) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "live_update",
		"data": update,
	})

	h.mu.RLock()
	clients, localFound := h.clients[userToken]
	h.mu.RUnlock()

	if localFound {
		var stalled []*Client
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stalled = append(stalled, client)
			}
		}
		h.dropStalled(stalled)
	}

	// Always publish so other instances holding this user's devices see it.
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_token": userToken,
			"message":      data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// subscribeToRedis listens on the shared cluster channel. Every instance
// subscribes; a message is delivered locally only when the target user (or
// the wildcard) has clients here.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetToken string          `json:"target_token"`
			Message     json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetToken == "*" {
			h.mu.RLock()
			var stalled []*Client
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						stalled = append(stalled, client)
					}
				}
			}
			h.mu.RUnlock()
			h.dropStalled(stalled)
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[payload.TargetToken]
		h.mu.RUnlock()

		if ok {
			var stalled []*Client
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					stalled = append(stalled, client)
				}
			}
			h.dropStalled(stalled)
		}
	}
}
