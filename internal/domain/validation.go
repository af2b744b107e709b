package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the single validation authority for all entities.
// Field rules live in struct tags; services never re-check lengths.
var validate = validator.New()

// Field-level validation failures.
var (
	ErrEmptyField = errors.New("field must not be empty")
	ErrTooShort   = errors.New("field is too short")
	ErrTooLong    = errors.New("field is too long")
)

// ValidationError reports the first field that failed entity validation.
// It unwraps to one of ErrEmptyField, ErrTooShort, or ErrTooLong so callers
// can branch with errors.Is without parsing messages.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// checkStruct runs the validator over an entity and converts the first
// failure into a *ValidationError.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: strings.ToLower(fe.Field()), Err: tagError(fe.Tag())}
}

func tagError(tag string) error {
	switch tag {
	case "required":
		return ErrEmptyField
	case "min":
		return ErrTooShort
	case "max":
		return ErrTooLong
	default:
		return fmt.Errorf("failed %q constraint", tag)
	}
}
