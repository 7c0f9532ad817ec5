package domain

import "context"

// MessageStore persists chat messages and serves history reads. The router
// calls the save methods fire-and-forget: a failed save is logged by the
// caller and never blocks delivery.
type MessageStore interface {
	SaveGroupMessage(ctx context.Context, msg *Message) error
	SavePrivateMessage(ctx context.Context, msg *Message) error
	GetRoomMessages(ctx context.Context, room string, limit int) ([]Message, error)
	GetPrivateMessages(ctx context.Context, user1, user2 string, limit int) ([]Message, error)
}
