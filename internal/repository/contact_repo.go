package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Isaiahshap/pulse/internal/models"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Save(ctx context.Context, message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING received_at
	`
	return r.db.QueryRow(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Phone,
		string(message.Subject),
		message.Message,
		message.ReceivedAt,
	).Scan(&message.ReceivedAt)
}

func (r *ContactRepository) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMessageNotFound
	}

	query := `
		SELECT id::text, name, email, phone, subject, message, received_at
		FROM contact_messages
		WHERE id = $1
	`
	message, err := scanContactMessage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (r *ContactRepository) List(ctx context.Context, offset, limit int) ([]models.ContactMessage, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id::text, name, email, phone, subject, message, received_at
		FROM contact_messages
		ORDER BY received_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		message, err := scanContactMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, *message)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func scanContactMessage(row pgx.Row) (*models.ContactMessage, error) {
	var (
		message models.ContactMessage
		subject string
	)
	err := row.Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Phone,
		&subject,
		&message.Message,
		&message.ReceivedAt,
	)
	if err != nil {
		return nil, err
	}
	message.Subject = models.ContactSubject(subject)
	return &message, nil
}
