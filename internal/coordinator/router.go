package coordinator

import (
	"context"
	"log/slog"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/domain"
)

// MessageRouter validates and dispatches group and private messages. Saves go
// to the message store fire-and-forget: a failed save is logged and delivery
// proceeds regardless, so clients cannot observe persistence failures.
type MessageRouter struct {
	sessions *SessionRegistry
	rooms    *RoomDirectory
	store    domain.MessageStore
	log      *slog.Logger
}

func NewMessageRouter(sessions *SessionRegistry, rooms *RoomDirectory, store domain.MessageStore, log *slog.Logger) *MessageRouter {
	return &MessageRouter{
		sessions: sessions,
		rooms:    rooms,
		store:    store,
		log:      log,
	}
}

// GroupMessage persists and fans out a room message to every current member,
// the sender included. Senders are not required to be members; a message to a
// room the sender never joined is still delivered to that room.
func (r *MessageRouter) GroupMessage(ctx context.Context, room, fromUsername, body string) {
	err := r.store.SaveGroupMessage(ctx, &domain.Message{
		FromUser: fromUsername,
		Room:     room,
		Body:     body,
	})
	if err != nil {
		r.log.Error("group message not persisted", "room", room, "from", fromUsername, "error", err)
	}

	ev := chatEvent(fromUsername, body)
	for _, member := range r.rooms.MembersOf(room) {
		if !member.Deliver(ev) {
			r.log.Warn("dropped group message", "room", room, "conn", member.ID)
		}
	}
}

// PrivateMessage persists a direct message unconditionally, then delivers it
// to every live session of the recipient. An offline recipient means the
// message is persisted and delivered to nobody; the sender gets no echo
// either way.
func (r *MessageRouter) PrivateMessage(ctx context.Context, fromUsername, toUsername, body string) {
	err := r.store.SavePrivateMessage(ctx, &domain.Message{
		FromUser: fromUsername,
		ToUser:   toUsername,
		Body:     body,
	})
	if err != nil {
		r.log.Error("private message not persisted", "from", fromUsername, "to", toUsername, "error", err)
	}

	ev := privateEvent(fromUsername, body)
	for _, sess := range r.sessions.ByUsername(toUsername) {
		if !sess.Deliver(ev) {
			r.log.Warn("dropped private message", "to", toUsername, "conn", sess.ID)
		}
	}
}
