package user

import "errors"

// Sentinel errors for the user service layer.
var (
	ErrMissingField = errors.New("username and password are required")
	ErrTaken        = errors.New("username already exists")
	ErrStoreFailed  = errors.New("user was not persisted")
)
