package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCatalog(t *testing.T) {
	d := NewRoomDirectory(testRooms)

	assert.Equal(t, testRooms, d.Rooms())
	assert.True(t, d.IsValid("cloud computing"))
	assert.False(t, d.IsValid("crypto"))
}

func TestDirectoryJoinInvalidRoom(t *testing.T) {
	d := NewRoomDirectory(testRooms)
	sess := &Session{ID: "c1", Username: "alice"}

	err := d.Join("crypto", sess)

	assert.ErrorIs(t, err, ErrInvalidRoom)
	assert.Empty(t, sess.Room)
}

func TestDirectoryJoinMovesSessionBetweenRooms(t *testing.T) {
	d := NewRoomDirectory(testRooms)
	sess := &Session{ID: "c1", Username: "alice"}

	require.NoError(t, d.Join("devops", sess))
	require.NoError(t, d.Join("sports", sess))

	assert.Equal(t, "sports", sess.Room)
	assert.Empty(t, d.MembersOf("devops"))
	require.Len(t, d.MembersOf("sports"), 1)
	assert.Same(t, sess, d.MembersOf("sports")[0])
}

func TestDirectoryLeave(t *testing.T) {
	d := NewRoomDirectory(testRooms)
	sess := &Session{ID: "c1", Username: "alice"}
	require.NoError(t, d.Join("devops", sess))

	assert.False(t, d.Leave("sports", sess), "leaving a room not occupied is a no-op")
	assert.Equal(t, "devops", sess.Room)

	assert.True(t, d.Leave("devops", sess))
	assert.Empty(t, sess.Room)
	assert.False(t, d.Leave("devops", sess), "second leave is a no-op")
}

func TestDirectoryEvict(t *testing.T) {
	d := NewRoomDirectory(testRooms)
	sess := &Session{ID: "c1", Username: "alice"}
	require.NoError(t, d.Join("devops", sess))

	d.Evict(sess)

	assert.Empty(t, sess.Room)
	assert.Empty(t, d.MembersOf("devops"))

	d.Evict(sess) // idempotent
}

func TestDirectoryMembersOfUnknownRoom(t *testing.T) {
	d := NewRoomDirectory(testRooms)
	assert.Empty(t, d.MembersOf("crypto"))
	assert.Empty(t, d.MembersOf("devops"))
}
