package repository

import (
	"context"
	"errors"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindByID(ctx context.Context, id int64) (*entity.ContactMessage, error)
	FindAll(ctx context.Context, filter entity.ContactFilter, limit, offset int) ([]*entity.ContactMessage, error)
	CountAll(ctx context.Context, filter entity.ContactFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status entity.ContactStatus) (*entity.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type contactMessageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactMessageRepository(db database.PgxIface, log *zap.Logger) ContactMessageRepository {
	return &contactMessageRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact_message")),
	}
}

const contactColumns = `id, name, email, phone, message, status, created_at, resolved_at`

func scanContactMessage(row pgx.Row) (*entity.ContactMessage, error) {
	var msg entity.ContactMessage
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Phone,
		&msg.Message,
		&msg.Status,
		&msg.CreatedAt,
		&msg.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, 'new')
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Message,
	).Scan(&msg.ID, &msg.Status, &msg.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", msg.Email),
		)
		return fmt.Errorf("create contact message from %s: %w", msg.Email, err)
	}

	return nil
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`

	msg, err := scanContactMessage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact message by ID",
			zap.Error(err),
			zap.Int64("contact_id", id),
		)
		return nil, fmt.Errorf("find contact message by ID %d: %w", id, err)
	}

	return msg, nil
}

func (r *contactMessageRepository) FindAll(ctx context.Context, filter entity.ContactFilter, limit, offset int) ([]*entity.ContactMessage, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contact_messages
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, filter.Status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find contact messages",
			zap.Error(err),
			zap.String("status", filter.Status),
		)
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*entity.ContactMessage{}
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			r.log.Error("Failed to scan contact message row", zap.Error(err))
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate contact message rows: %w", err)
	}

	return messages, nil
}

func (r *contactMessageRepository) CountAll(ctx context.Context, filter entity.ContactFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM contact_messages WHERE ($1 = '' OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.Status).Scan(&count); err != nil {
		r.log.Error("Failed to count contact messages", zap.Error(err))
		return 0, fmt.Errorf("count contact messages: %w", err)
	}

	return count, nil
}

// UpdateStatus sets the status and returns the stored message, or nil when
// id does not exist. closed stamps resolved_at; any other status clears it.
func (r *contactMessageRepository) UpdateStatus(ctx context.Context, id int64, status entity.ContactStatus) (*entity.ContactMessage, error) {
	query := `
		UPDATE contact_messages
		SET status = $2::text,
		    resolved_at = CASE WHEN $2::text = 'closed' THEN NOW() ELSE NULL END
		WHERE id = $1
		RETURNING ` + contactColumns

	msg, err := scanContactMessage(r.db.QueryRow(ctx, query, id, string(status)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update contact message status",
			zap.Error(err),
			zap.Int64("contact_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update contact message %d: %w", id, err)
	}

	return msg, nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete contact message",
			zap.Error(err),
			zap.Int64("contact_id", id),
		)
		return fmt.Errorf("delete contact message %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %d: %w", id, ErrNoRows)
	}

	r.log.Info("Contact message deleted", zap.Int64("contact_id", id))
	return nil
}
