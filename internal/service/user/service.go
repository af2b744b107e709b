package user

import (
	"context"
	"fmt"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/pkg/logger"
)

// Service implements registration business logic. All public methods are
// safe for concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo Repository
}

// NewService creates a user service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register validates and persists a new user.
//
// Failure order: missing fields, entity validation, uniqueness, store write.
// Validation errors from domain.NewUser propagate as-is.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingField
	}

	u, err := domain.NewUser(username, password)
	if err != nil {
		return err
	}

	taken, err := s.repo.Exists(ctx, u.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return ErrTaken
	}

	if err := s.repo.Register(ctx, u); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	logger.Info("user registered", "username", u.Username)
	return nil
}

// Exists reports whether the username is registered. Exposed so the email
// service can verify senders and recipients through one directory.
func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	return s.repo.Exists(ctx, username)
}
