package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/domain"
)

// maxCachedHistory bounds the page cached per room. Reads asking for a larger
// page bypass the cache.
const maxCachedHistory = 100

// CachedMessageStore wraps a MessageStore with a cache-aside redis layer on
// room history. Each room has a single cached page of the most recent
// messages; a group-message save invalidates it. Private history is served
// straight from the inner store.
type CachedMessageStore struct {
	inner domain.MessageStore
	rdb   *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

func NewCachedMessageStore(inner domain.MessageStore, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *CachedMessageStore {
	return &CachedMessageStore{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log,
	}
}

func (s *CachedMessageStore) SaveGroupMessage(ctx context.Context, msg *domain.Message) error {
	if err := s.inner.SaveGroupMessage(ctx, msg); err != nil {
		return err
	}
	if err := s.rdb.Del(ctx, historyKey(msg.Room)).Err(); err != nil {
		s.log.Warn("history cache invalidation failed", "room", msg.Room, "error", err)
	}
	return nil
}

func (s *CachedMessageStore) SavePrivateMessage(ctx context.Context, msg *domain.Message) error {
	return s.inner.SavePrivateMessage(ctx, msg)
}

func (s *CachedMessageStore) GetRoomMessages(ctx context.Context, room string, limit int) ([]domain.Message, error) {
	if limit > maxCachedHistory {
		return s.inner.GetRoomMessages(ctx, room, limit)
	}

	key := historyKey(room)
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached []domain.Message
		if err := json.Unmarshal(data, &cached); err == nil {
			return tail(cached, limit), nil
		}
		s.log.Warn("history cache entry corrupt", "room", room)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn("history cache read failed", "room", room, "error", err)
	}

	messages, err := s.inner.GetRoomMessages(ctx, room, maxCachedHistory)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(messages); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.log.Warn("history cache write failed", "room", room, "error", err)
		}
	}

	return tail(messages, limit), nil
}

func (s *CachedMessageStore) GetPrivateMessages(ctx context.Context, user1, user2 string, limit int) ([]domain.Message, error) {
	return s.inner.GetPrivateMessages(ctx, user1, user2, limit)
}

func historyKey(room string) string {
	return "cache:room-history:" + room
}

// tail returns the last limit messages of a chronologically ordered slice.
func tail(messages []domain.Message, limit int) []domain.Message {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}
