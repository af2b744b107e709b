package email

import (
	"context"
	"fmt"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/pkg/logger"
)

// Service implements mailbox business logic. It coordinates between the
// email repository and the user directory. All public methods are safe for
// concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo  Repository
	users UserDirectory
}

// NewService creates an email service backed by the given repository and
// user directory.
func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// ListInbox returns the recipient's inbox, newest first. With a nil window
// the whole inbox is returned; otherwise the window is translated to a
// limit/offset fetch via WindowToLimitOffset.
func (s *Service) ListInbox(ctx context.Context, recipient string, w *Window) ([]domain.Email, error) {
	if recipient == "" {
		return nil, ErrMissingRecipient
	}

	known, err := s.users.Exists(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("check recipient: %w", err)
	}
	if !known {
		return nil, ErrUnknownUser
	}

	if w == nil {
		return s.repo.AllForRecipient(ctx, recipient)
	}

	limit, offset, err := WindowToLimitOffset(w.Start, w.Stop)
	if err != nil {
		return nil, err
	}
	return s.repo.PageForRecipient(ctx, recipient, limit, offset)
}

// Send validates the message, verifies both participants exist, and inserts
// it. Returns the store-assigned id of the new email.
//
// The existence checks and the insert are separate statements: a user
// deleted between check and insert surfaces as a store error, not a 404.
func (s *Service) Send(ctx context.Context, subject, body, sender, recipient string) (int64, error) {
	if subject == "" || sender == "" || recipient == "" {
		return 0, ErrMissingField
	}

	for _, username := range []string{sender, recipient} {
		known, err := s.users.Exists(ctx, username)
		if err != nil {
			return 0, fmt.Errorf("check %s: %w", username, err)
		}
		if !known {
			return 0, ErrUnknownUser
		}
	}

	e, err := domain.NewEmail(subject, body, sender, recipient)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("insert email: %w", err)
	}

	logger.Info("email sent", "id", id, "sender", sender, "recipient", recipient)
	return id, nil
}

// Get returns a stored email by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Email, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

// Delete removes an email by id. A missing id is ErrNotFound; a delete of
// an existing id that affects zero rows is a store error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	stored, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if !stored {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete email: %w", err)
	}

	logger.Info("email deleted", "id", id)
	return nil
}
