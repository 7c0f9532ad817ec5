package websocket

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	upgrader *websocket.Upgrader
	hub      *Hub
	log      *slog.Logger
}

func NewHandler(hub *Hub, log *slog.Logger) *Handler {
	return &Handler{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		hub: hub,
		log: log,
	}
}

// ServeWS upgrades the connection and hands it to the hub. The username query
// parameter supplies the session identity; it is opaque to the server and not
// required to be unique across connections.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "Username is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", "error", err)
		return
	}

	client := NewClient(uuid.NewString(), username, conn, h.hub, h.log)
	h.hub.Registered <- client

	go client.WritePump()
	go client.ReadPump()
}
