package coordinator

import (
	"errors"
	"fmt"
)

// Connect registers a session for a fresh connection. The username is opaque
// here; the transport layer owns identity.
func (c *Coordinator) Connect(connID, username string, sink Sink) *Session {
	sess := c.sessions.Register(connID, username, sink)
	c.log.Info("connected", "conn", connID, "username", username, "online", c.sessions.Len())
	return sess
}

// JoinRoom moves the connection's session into the room and announces the
// arrival to every member, the joiner included. A name outside the catalog
// yields a single error event to the joining connection and no state change.
// An unknown connection is a no-op: it already disconnected.
func (c *Coordinator) JoinRoom(connID, room, username string) {
	sess, ok := c.sessions.ByConnection(connID)
	if !ok {
		return
	}
	c.sessions.Rename(sess, username)

	if err := c.rooms.Join(room, sess); err != nil {
		if errors.Is(err, ErrInvalidRoom) {
			sess.Deliver(errorEvent("Invalid room"))
			return
		}
		c.log.Error("join failed", "conn", connID, "room", room, "error", err)
		return
	}

	c.log.Info("joined room", "username", username, "room", room)
	c.broadcast(room, presenceEvent(fmt.Sprintf("%s has joined the room.", username)), nil)
}

// LeaveRoom removes the session from the room and announces the departure to
// the remaining members. Leaving a room the session is not in is a silent
// no-op: no error, no broadcast.
func (c *Coordinator) LeaveRoom(connID, room, username string) {
	sess, ok := c.sessions.ByConnection(connID)
	if !ok {
		return
	}
	if !c.rooms.Leave(room, sess) {
		return
	}

	c.log.Info("left room", "username", username, "room", room)
	c.broadcast(room, presenceEvent(fmt.Sprintf("%s has left the room.", username)), nil)
}

// Disconnect tears down the connection's session and its room membership.
// No presence notification is sent; only an explicit leaveRoom announces a
// departure.
func (c *Coordinator) Disconnect(connID string) {
	sess := c.sessions.Remove(connID)
	if sess == nil {
		return
	}
	c.rooms.Evict(sess)
	c.log.Info("disconnected", "conn", connID, "username", sess.Username, "online", c.sessions.Len())
}
