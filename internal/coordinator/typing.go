package coordinator

import "sync"

// TypingRelay records at most one active typer per room, last writer wins. A
// later typing signal from another user silently replaces the earlier one;
// there is no multi-typer tracking and no timer. Stop signals are driven by
// the originating client, so a crashed client can leave a typer recorded
// until the next signal for that room.
type TypingRelay struct {
	mu     sync.Mutex
	active map[string]string
}

func NewTypingRelay() *TypingRelay {
	return &TypingRelay{active: make(map[string]string)}
}

// Typing records username as the room's active typer.
func (t *TypingRelay) Typing(room, username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active[room] = username
}

// Stop clears the room's active typer.
func (t *TypingRelay) Stop(room string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, room)
}

// ActiveTyper returns the room's recorded typer, if any.
func (t *TypingRelay) ActiveTyper(room string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	username, ok := t.active[room]
	return username, ok
}
