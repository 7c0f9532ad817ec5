package coordinator

import (
	"errors"
	"sync"
)

// ErrInvalidRoom is returned by Join for a room name outside the catalog.
var ErrInvalidRoom = errors.New("invalid room")

// RoomDirectory maps catalog room names to their current member sessions.
// Rooms are never created or destroyed at runtime; only membership changes.
// A session occupies at most one room, and Session.Room always matches the
// member set holding it.
type RoomDirectory struct {
	mu      sync.RWMutex
	catalog []string
	valid   map[string]struct{}
	members map[string]map[string]*Session
}

func NewRoomDirectory(catalog []string) *RoomDirectory {
	d := &RoomDirectory{
		catalog: append([]string(nil), catalog...),
		valid:   make(map[string]struct{}, len(catalog)),
		members: make(map[string]map[string]*Session, len(catalog)),
	}
	for _, name := range catalog {
		d.valid[name] = struct{}{}
		d.members[name] = make(map[string]*Session)
	}
	return d
}

// Rooms returns the catalog in configuration order.
func (d *RoomDirectory) Rooms() []string {
	return append([]string(nil), d.catalog...)
}

// IsValid reports whether the name is in the catalog.
func (d *RoomDirectory) IsValid(room string) bool {
	_, ok := d.valid[room]
	return ok
}

// Join moves the session into the room. The session is first removed from
// whatever room it occupies, so a session is never a member of two rooms.
func (d *RoomDirectory) Join(room string, sess *Session) error {
	if !d.IsValid(room) {
		return ErrInvalidRoom
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if sess.Room != "" {
		delete(d.members[sess.Room], sess.ID)
	}
	d.members[room][sess.ID] = sess
	sess.Room = room
	return nil
}

// Leave removes the session from the room. It reports whether the session was
// actually a member; leaving a room one is not in is a no-op.
func (d *RoomDirectory) Leave(room string, sess *Session) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sess.Room != room {
		return false
	}
	delete(d.members[room], sess.ID)
	sess.Room = ""
	return true
}

// Evict removes the session from whichever room it occupies, if any.
func (d *RoomDirectory) Evict(sess *Session) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sess.Room == "" {
		return
	}
	delete(d.members[sess.Room], sess.ID)
	sess.Room = ""
}

// MembersOf returns a snapshot of the room's members. Unknown or empty rooms
// yield an empty slice, never an error.
func (d *RoomDirectory) MembersOf(room string) []*Session {
	d.mu.RLock()
	defer d.mu.RUnlock()

	members := make([]*Session, 0, len(d.members[room]))
	for _, sess := range d.members[room] {
		members = append(members, sess)
	}
	return members
}
