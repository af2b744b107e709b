package api

import (
	"errors"
	"net/http"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/pkg/httputil"
	"github.com/ignite/mailbox/internal/service/email"
	"github.com/ignite/mailbox/internal/service/user"
)

// Handlers holds the services behind the HTTP surface. Requests are decoded
// into typed structs before any service call; the core never sees raw maps.
type Handlers struct {
	users    *user.Service
	emails   *email.Service
	throttle *SendThrottle
}

// NewHandlers creates the handler set. throttle may be nil.
func NewHandlers(users *user.Service, emails *email.Service, throttle *SendThrottle) *Handlers {
	return &Handlers{users: users, emails: emails, throttle: throttle}
}

// writeServiceError maps a service error to an HTTP status and body.
//
// Validation failures and malformed input map to 400, missing entities to
// 404, everything else collapses to a generic 500 so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, user.ErrTaken):
		httputil.BadRequest(w, "Username already exists.")
	case errors.Is(err, user.ErrMissingField):
		httputil.BadRequest(w, "Username and password are required.")
	case errors.Is(err, email.ErrMissingRecipient):
		httputil.BadRequest(w, "Recipient username is required.")
	case errors.Is(err, email.ErrMissingField):
		httputil.BadRequest(w, "Subject, sender and recipient are required.")
	case errors.Is(err, email.ErrInvalidRange):
		httputil.BadRequest(w, "Start and stop indices must form a valid range.")
	case errors.Is(err, email.ErrInvalidID):
		httputil.BadRequest(w, "Email id must be a positive integer.")
	case errors.As(err, &verr):
		httputil.BadRequest(w, verr.Error())
	case errors.Is(err, email.ErrUnknownUser):
		httputil.NotFound(w, "Username does not exist.")
	case errors.Is(err, email.ErrNotFound):
		httputil.NotFound(w, "Email not found.")
	default:
		httputil.InternalError(w, "An unexpected error occurred.", err)
	}
}
