package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/service/email"
)

const emailColumns = `id, message_subject, body, sender_username, recipient_username, created_at`

// EmailRepo implements email.Repository against PostgreSQL.
type EmailRepo struct{ db *sql.DB }

// NewEmailRepo creates a Postgres-backed email repository.
func NewEmailRepo(db *sql.DB) *EmailRepo { return &EmailRepo{db: db} }

func (r *EmailRepo) Get(ctx context.Context, id int64) (*domain.Email, error) {
	e := &domain.Email{}
	err := r.db.QueryRowContext(ctx, `
		SELECT `+emailColumns+`
		FROM emails
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Subject, &e.Body, &e.Sender, &e.Recipient, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, email.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get email: %w", err)
	}
	return e, nil
}

func (r *EmailRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM emails WHERE id = $1
	`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return true, nil
}

func (r *EmailRepo) Insert(ctx context.Context, e *domain.Email) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO emails (message_subject, body, sender_username, recipient_username, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`, e.Subject, e.Body, e.Sender, e.Recipient).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, email.ErrStoreFailed
	}
	if err != nil {
		return 0, fmt.Errorf("insert email: %w", err)
	}
	return id, nil
}

func (r *EmailRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM emails WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete email: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return email.ErrStoreFailed
	}
	return nil
}

func (r *EmailRepo) AllForRecipient(ctx context.Context, recipient string) ([]domain.Email, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+emailColumns+`
		FROM emails
		WHERE recipient_username = $1
		ORDER BY created_at DESC
	`, recipient)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	return scanEmails(rows)
}

func (r *EmailRepo) PageForRecipient(ctx context.Context, recipient string, limit, offset int) ([]domain.Email, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+emailColumns+`
		FROM emails
		WHERE recipient_username = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, recipient, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inbox page: %w", err)
	}
	return scanEmails(rows)
}

func scanEmails(rows *sql.Rows) ([]domain.Email, error) {
	defer rows.Close()
	out := []domain.Email{}
	for rows.Next() {
		var e domain.Email
		if err := rows.Scan(&e.ID, &e.Subject, &e.Body, &e.Sender, &e.Recipient, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emails: %w", err)
	}
	return out, nil
}
