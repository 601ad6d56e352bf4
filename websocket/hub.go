package websocket

import (
	"KidAsk/interfaces"
	"encoding/json"
	"log"
)

type outboundEvent struct {
	childID string
	payload []byte
}

// Hub fans dashboard events out to the connected guardian dashboards.
// Each client is subscribed to a single child; events for other
// children never reach it.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan outboundEvent
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outboundEvent, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[WebSocket] Dashboard connected for child %s (%d total)", client.ChildID, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[WebSocket] Dashboard disconnected for child %s (%d total)", client.ChildID, len(h.clients))
			}

		case event := <-h.broadcast:
			for client := range h.clients {
				if client.ChildID != event.childID {
					continue
				}
				select {
				case client.send <- event.payload:
				default:
					// Slow consumer, drop it.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// BroadcastDashboardEvent implements interfaces.DashboardBroadcaster.
func (h *Hub) BroadcastDashboardEvent(childID string, event interfaces.DashboardEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WebSocket] Error marshalling dashboard event: %v", err)
		return
	}
	h.broadcast <- outboundEvent{childID: childID, payload: payload}
}
