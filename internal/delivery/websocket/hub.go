package websocket

import (
	"log/slog"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/coordinator"
)

// Hub translates transport lifecycle into coordinator calls. Registration and
// teardown flow through its run loop so connect and disconnect are serialized
// for the whole process.
type Hub struct {
	Registered   chan *Client
	Unregistered chan *Client
	Shutdown     chan struct{}

	coord   *coordinator.Coordinator
	clients map[*Client]struct{}
	log     *slog.Logger
}

func NewHub(coord *coordinator.Coordinator, log *slog.Logger) *Hub {
	return &Hub{
		Registered:   make(chan *Client),
		Unregistered: make(chan *Client),
		Shutdown:     make(chan struct{}),
		coord:        coord,
		clients:      make(map[*Client]struct{}),
		log:          log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Registered:
			h.clients[client] = struct{}{}
			h.coord.Connect(client.ID, client.Username, client)

		case client := <-h.Unregistered:
			if _, ok := h.clients[client]; !ok {
				continue
			}
			delete(h.clients, client)
			h.coord.Disconnect(client.ID)
			client.close()

		case <-h.Shutdown:
			for client := range h.clients {
				h.coord.Disconnect(client.ID)
				client.close()
				delete(h.clients, client)
			}
			h.log.Info("hub stopped")
			return
		}
	}
}
