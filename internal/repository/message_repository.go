package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"careshift/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	ListConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]domain.Message, error)
	MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, recipient_id, content, is_read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Content, msg.IsRead,
	).Scan(&msg.CreatedAt)
}

func (r *messageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	var messages []domain.Message
	query := `
		SELECT * FROM messages
		WHERE sender_id = $1 OR recipient_id = $1
		ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &messages, query, userID)
	return messages, err
}

func (r *messageRepository) ListConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]domain.Message, error) {
	var messages []domain.Message
	query := `
		SELECT * FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &messages, query, userID, otherUserID)
	return messages, err
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error {
	query := `UPDATE messages SET is_read = true WHERE id = $1 AND recipient_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, recipientID)
	return count, err
}
