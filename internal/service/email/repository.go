package email

import (
	"context"

	"github.com/ignite/mailbox/internal/domain"
)

// Repository defines the data access contract for emails.
// Implementations must be safe for concurrent use.
//
// Both list methods return rows ordered by created_at DESC; callers rely on
// that ordering and do not re-sort.
type Repository interface {
	// Get returns a single email. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.Email, error)

	// Exists reports whether an email with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Insert persists a new email and returns its store-assigned id.
	// Returns ErrStoreFailed if the write affects zero rows.
	Insert(ctx context.Context, e *domain.Email) (int64, error)

	// Delete removes an email by id. Returns ErrStoreFailed if the delete
	// affects zero rows.
	Delete(ctx context.Context, id int64) error

	// AllForRecipient returns every email addressed to the recipient,
	// newest first.
	AllForRecipient(ctx context.Context, recipient string) ([]domain.Email, error)

	// PageForRecipient returns a bounded slice of the recipient's inbox,
	// newest first.
	PageForRecipient(ctx context.Context, recipient string, limit, offset int) ([]domain.Email, error)
}

// UserDirectory is the slice of the user service the mailbox needs:
// existence checks for senders and recipients.
type UserDirectory interface {
	Exists(ctx context.Context, username string) (bool, error)
}
