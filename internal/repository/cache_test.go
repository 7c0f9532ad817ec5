package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/domain"
)

const testRedisAddr = "localhost:6379"

type countingStore struct {
	roomReads int
	messages  []domain.Message
}

func (s *countingStore) SaveGroupMessage(_ context.Context, msg *domain.Message) error {
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *countingStore) SavePrivateMessage(_ context.Context, msg *domain.Message) error {
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *countingStore) GetRoomMessages(_ context.Context, room string, limit int) ([]domain.Message, error) {
	s.roomReads++
	if limit > len(s.messages) {
		limit = len(s.messages)
	}
	return s.messages[len(s.messages)-limit:], nil
}

func (s *countingStore) GetPrivateMessages(context.Context, string, string, int) ([]domain.Message, error) {
	return nil, nil
}

func setupCache(t *testing.T) (*CachedMessageStore, *countingStore, string) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available at %s: %v", testRedisAddr, err)
	}

	// Unique room per test run so stale keys cannot interfere.
	room := fmt.Sprintf("cache-test-%s-%d", t.Name(), time.Now().UnixNano())
	t.Cleanup(func() {
		client.Del(ctx, historyKey(room))
		client.Close()
	})

	inner := &countingStore{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCachedMessageStore(inner, client, time.Minute, log), inner, room
}

func TestCachedRoomHistoryHitAfterMiss(t *testing.T) {
	store, inner, room := setupCache(t)
	ctx := context.Background()
	inner.messages = []domain.Message{
		{FromUser: "alice", Room: room, Body: "one"},
		{FromUser: "bob", Room: room, Body: "two"},
	}

	first, err := store.GetRoomMessages(ctx, room, 10)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, inner.roomReads)

	second, err := store.GetRoomMessages(ctx, room, 10)
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, 1, inner.roomReads, "second read is served from cache")
}

func TestCachedRoomHistoryLimitSlicesTail(t *testing.T) {
	store, inner, room := setupCache(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		inner.messages = append(inner.messages, domain.Message{
			FromUser: "alice",
			Room:     room,
			Body:     fmt.Sprintf("msg-%d", i),
		})
	}

	messages, err := store.GetRoomMessages(ctx, room, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-3", messages[0].Body)
	assert.Equal(t, "msg-4", messages[1].Body)
}

func TestSaveGroupMessageInvalidatesCache(t *testing.T) {
	store, inner, room := setupCache(t)
	ctx := context.Background()
	inner.messages = []domain.Message{{FromUser: "alice", Room: room, Body: "one"}}

	_, err := store.GetRoomMessages(ctx, room, 10)
	require.NoError(t, err)
	require.Equal(t, 1, inner.roomReads)

	err = store.SaveGroupMessage(ctx, &domain.Message{FromUser: "bob", Room: room, Body: "two"})
	require.NoError(t, err)

	messages, err := store.GetRoomMessages(ctx, room, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.roomReads, "invalidation forces a fresh read")
	assert.Len(t, messages, 2)
}

func TestOversizedLimitBypassesCache(t *testing.T) {
	store, inner, room := setupCache(t)
	ctx := context.Background()
	inner.messages = []domain.Message{{FromUser: "alice", Room: room, Body: "one"}}

	_, err := store.GetRoomMessages(ctx, room, maxCachedHistory+1)
	require.NoError(t, err)
	_, err = store.GetRoomMessages(ctx, room, maxCachedHistory+1)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.roomReads)
}
