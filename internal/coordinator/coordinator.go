// Package coordinator holds the in-memory session and room state for the chat
// server and routes inbound client events into outbound fan-out events. It is
// transport-agnostic: the websocket layer registers connections with a Sink
// and calls the event methods; everything else is internal.
package coordinator

import (
	"context"
	"log/slog"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/domain"
)

// Coordinator owns one process-wide set of sessions, room memberships and
// typing state. Construct it once at startup and hand it to the transport
// layer; its methods are safe for concurrent use from connection goroutines.
type Coordinator struct {
	sessions *SessionRegistry
	rooms    *RoomDirectory
	typing   *TypingRelay
	router   *MessageRouter
	log      *slog.Logger
}

// New builds a coordinator over a fixed room catalog and a message store.
func New(catalog []string, store domain.MessageStore, log *slog.Logger) *Coordinator {
	sessions := NewSessionRegistry()
	rooms := NewRoomDirectory(catalog)
	return &Coordinator{
		sessions: sessions,
		rooms:    rooms,
		typing:   NewTypingRelay(),
		router:   NewMessageRouter(sessions, rooms, store, log),
		log:      log,
	}
}

// RoomNames returns the catalog in configuration order.
func (c *Coordinator) RoomNames() []string {
	return c.rooms.Rooms()
}

// GroupMessage routes a room message from a live connection.
func (c *Coordinator) GroupMessage(ctx context.Context, room, username, body string) {
	c.router.GroupMessage(ctx, room, username, body)
}

// PrivateMessage routes a direct message to every live session of toUser.
func (c *Coordinator) PrivateMessage(ctx context.Context, fromUser, toUser, body string) {
	c.router.PrivateMessage(ctx, fromUser, toUser, body)
}

// Typing records username as the room's active typer and notifies the other
// members of the room. A second user typing before the first stops simply
// replaces the recorded typer.
func (c *Coordinator) Typing(connID, room, username string) {
	sender, ok := c.sessions.ByConnection(connID)
	if !ok {
		return
	}
	c.typing.Typing(room, username)
	c.broadcast(room, typingEvent(username), sender)
}

// StopTyping clears the room's active typer and notifies the other members.
func (c *Coordinator) StopTyping(connID, room string) {
	sender, ok := c.sessions.ByConnection(connID)
	if !ok {
		return
	}
	c.typing.Stop(room)
	c.broadcast(room, stopTypingEvent(), sender)
}

// broadcast fans an event out to the room's current members, skipping except
// when non-nil. A member whose transport cannot accept the event is logged
// and skipped; the rest still receive it.
func (c *Coordinator) broadcast(room string, ev Event, except *Session) {
	for _, member := range c.rooms.MembersOf(room) {
		if member == except {
			continue
		}
		if !member.Deliver(ev) {
			c.log.Warn("dropped broadcast", "event", ev.Event, "room", room, "conn", member.ID)
		}
	}
}
