package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/service/user"
)

// uniqueViolation is the Postgres error code for duplicate key inserts.
const uniqueViolation = "23505"

// UserRepo implements user.Repository against PostgreSQL.
type UserRepo struct{ db *sql.DB }

// NewUserRepo creates a Postgres-backed user repository.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM users WHERE username = $1
	`, username).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return true, nil
}

func (r *UserRepo) Register(ctx context.Context, u *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password) VALUES ($1, $2)
	`, u.Username, u.Password)
	if err != nil {
		// A duplicate slipping past the service's existence check means a
		// concurrent registration; surface it as taken, not a 500.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return user.ErrTaken
		}
		return fmt.Errorf("register user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return user.ErrStoreFailed
	}
	return nil
}
