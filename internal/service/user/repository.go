package user

import (
	"context"

	"github.com/ignite/mailbox/internal/domain"
)

// Repository defines the data access contract for users.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Exists reports whether a username is already registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Register inserts a new user. Returns ErrStoreFailed if the write
	// affects zero rows.
	Register(ctx context.Context, u *domain.User) error
}
