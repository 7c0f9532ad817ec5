package coordinator

import "sync"

// Sink is the transport-side write end of a connection. Send must not block;
// it reports whether the event was accepted.
type Sink interface {
	Send(ev Event) bool
}

// Session is the coordinator's view of one live connection. Room is the name
// of the room the session currently occupies, or "" when it is in none; it is
// written only by the RoomDirectory.
type Session struct {
	ID       string
	Username string
	Room     string

	sink Sink
}

// Deliver forwards an event to the session's connection.
func (s *Session) Deliver(ev Event) bool {
	return s.sink.Send(ev)
}

// SessionRegistry tracks live sessions by connection ID and by username. A
// username may have several simultaneous sessions; private messages fan out
// to all of them.
type SessionRegistry struct {
	mu     sync.RWMutex
	byConn map[string]*Session
	byUser map[string]map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		byConn: make(map[string]*Session),
		byUser: make(map[string]map[string]*Session),
	}
}

// Register creates a session for a new connection. Registering an existing
// connection ID updates its username instead.
func (r *SessionRegistry) Register(connID, username string, sink Sink) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.byConn[connID]; ok {
		r.rename(sess, username)
		return sess
	}

	sess := &Session{ID: connID, Username: username, sink: sink}
	r.byConn[connID] = sess
	r.index(sess)
	return sess
}

// ByConnection looks up the session for a connection ID.
func (r *SessionRegistry) ByConnection(connID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.byConn[connID]
	return sess, ok
}

// ByUsername returns every live session bound to the username, which may be
// none.
func (r *SessionRegistry) ByUsername(username string) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0, len(r.byUser[username]))
	for _, sess := range r.byUser[username] {
		sessions = append(sessions, sess)
	}
	return sessions
}

// Rename rebinds a session to a username, keeping the username index in step.
func (r *SessionRegistry) Rename(sess *Session, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rename(sess, username)
}

// Remove drops the session for a connection ID and returns it, or nil if the
// connection was never registered or already removed.
func (r *SessionRegistry) Remove(connID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.byConn[connID]
	if !ok {
		return nil
	}
	delete(r.byConn, connID)
	r.unindex(sess)
	return sess
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byConn)
}

func (r *SessionRegistry) rename(sess *Session, username string) {
	if sess.Username == username {
		return
	}
	r.unindex(sess)
	sess.Username = username
	r.index(sess)
}

func (r *SessionRegistry) index(sess *Session) {
	peers, ok := r.byUser[sess.Username]
	if !ok {
		peers = make(map[string]*Session)
		r.byUser[sess.Username] = peers
	}
	peers[sess.ID] = sess
}

func (r *SessionRegistry) unindex(sess *Session) {
	peers := r.byUser[sess.Username]
	delete(peers, sess.ID)
	if len(peers) == 0 {
		delete(r.byUser, sess.Username)
	}
}
