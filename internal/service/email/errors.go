package email

import "errors"

// Sentinel errors for the email service layer.
var (
	ErrMissingRecipient = errors.New("recipient username is required")
	ErrMissingField     = errors.New("subject, sender and recipient are required")
	ErrUnknownUser      = errors.New("username does not exist")
	ErrInvalidRange     = errors.New("invalid start or stop index")
	ErrInvalidID        = errors.New("email id must be a positive integer")
	ErrNotFound         = errors.New("email not found")
	ErrStoreFailed      = errors.New("email write affected no rows")
)
