package domain

import "time"

// Message is a persisted chat message. Exactly one of ToUser or Room is set:
// ToUser for private messages, Room for group messages.
type Message struct {
	ID       int64     `json:"id"`
	FromUser string    `json:"from_user"`
	ToUser   string    `json:"to_user,omitempty"`
	Room     string    `json:"room,omitempty"`
	Body     string    `json:"message"`
	DateSent time.Time `json:"date_sent"`
}
