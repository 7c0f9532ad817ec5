package http_delivery

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/config"
	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/coordinator"
	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/delivery/websocket"
	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/domain"
	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/repository"
)

const defaultHistoryLimit = 50

// Handler wires the store, coordinator and hub together and returns the HTTP
// mux plus the hub for shutdown draining.
func Handler(cfg *config.Config, log *slog.Logger) (*http.ServeMux, *websocket.Hub, error) {
	db, err := config.ConnectPostgres(cfg.Postgres, log)
	if err != nil {
		return nil, nil, err
	}

	rdb := config.NewRedisClient(cfg.RedisAddr)

	repo := repository.NewMessageRepository(db)
	store := repository.NewCachedMessageStore(repo, rdb, cfg.HistoryCacheTTL, log)

	coord := coordinator.New(cfg.Rooms, store, log)

	hub := websocket.NewHub(coord, log)
	go hub.Run()

	wsHandler := websocket.NewHandler(hub, log)
	api := &apiHandler{coord: coord, store: store, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/api/rooms", api.rooms)
	mux.HandleFunc("/api/messages/room", api.roomHistory)
	mux.HandleFunc("/api/messages/private", api.privateHistory)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux, hub, nil
}

type apiHandler struct {
	coord *coordinator.Coordinator
	store domain.MessageStore
	log   *slog.Logger
}

func (h *apiHandler) rooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"rooms": h.coord.RoomNames()})
}

func (h *apiHandler) roomHistory(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		http.Error(w, "room is required", http.StatusBadRequest)
		return
	}

	messages, err := h.store.GetRoomMessages(r.Context(), room, limitParam(r))
	if err != nil {
		h.log.Error("room history read failed", "room", room, "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"messages": messages})
}

func (h *apiHandler) privateHistory(w http.ResponseWriter, r *http.Request) {
	user1 := r.URL.Query().Get("user1")
	user2 := r.URL.Query().Get("user2")
	if user1 == "" || user2 == "" {
		http.Error(w, "user1 and user2 are required", http.StatusBadRequest)
		return
	}

	messages, err := h.store.GetPrivateMessages(r.Context(), user1, user2, limitParam(r))
	if err != nil {
		h.log.Error("private history read failed", "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"messages": messages})
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
