package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ItsHooman/101466119-lab-test1-chat-app/internal/domain"
)

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) SaveGroupMessage(ctx context.Context, msg *domain.Message) error {
	if msg.DateSent.IsZero() {
		msg.DateSent = time.Now()
	}

	query := `
		INSERT INTO messages (from_user, room, message, date_sent)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(
		ctx,
		query,
		msg.FromUser,
		msg.Room,
		msg.Body,
		msg.DateSent,
	)
	return err
}

func (r *MessageRepository) SavePrivateMessage(ctx context.Context, msg *domain.Message) error {
	if msg.DateSent.IsZero() {
		msg.DateSent = time.Now()
	}

	query := `
		INSERT INTO messages (from_user, to_user, message, date_sent)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(
		ctx,
		query,
		msg.FromUser,
		msg.ToUser,
		msg.Body,
		msg.DateSent,
	)
	return err
}

func (r *MessageRepository) GetRoomMessages(ctx context.Context, room string, limit int) ([]domain.Message, error) {
	query := `
		SELECT id, from_user, room, message, date_sent
		FROM messages
		WHERE room = $1
		ORDER BY date_sent DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, room, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		err := rows.Scan(
			&msg.ID,
			&msg.FromUser,
			&msg.Room,
			&msg.Body,
			&msg.DateSent,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	reverse(messages)
	return messages, nil
}

func (r *MessageRepository) GetPrivateMessages(ctx context.Context, user1, user2 string, limit int) ([]domain.Message, error) {
	query := `
		SELECT id, from_user, to_user, message, date_sent
		FROM messages
		WHERE to_user <> '' AND (
			(from_user = $1 AND to_user = $2) OR
			(from_user = $2 AND to_user = $1)
		)
		ORDER BY date_sent DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, user1, user2, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		err := rows.Scan(
			&msg.ID,
			&msg.FromUser,
			&msg.ToUser,
			&msg.Body,
			&msg.DateSent,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	reverse(messages)
	return messages, nil
}

// reverse flips a DESC-ordered page into chronological order.
func reverse(messages []domain.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
