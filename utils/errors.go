package utils

import (
	"errors"
	"fmt"
)

// ValidationError signals a missing or malformed required entity. The user
// sees a clarifying prompt; nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// IntegrationError wraps a failure in an external collaborator (store or
// notification transport).
type IntegrationError struct {
	Op  string
	Err error
}

func (e IntegrationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e IntegrationError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}
