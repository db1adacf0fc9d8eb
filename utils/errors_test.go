package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	ve := ValidationError{Field: "time", Reason: "required"}
	nfe := NotFoundError{Entity: "reminder", ID: "r1"}
	ie := IntegrationError{Op: "reminders.insert", Err: errors.New("connection refused")}

	assert.True(t, IsValidation(ve))
	assert.False(t, IsValidation(nfe))

	assert.True(t, IsNotFound(nfe))
	assert.False(t, IsNotFound(ie))
}

func TestErrorClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", ValidationError{Field: "time", Reason: "required"})
	assert.True(t, IsValidation(wrapped))

	nested := IntegrationError{Op: "store", Err: NotFoundError{Entity: "alert", ID: "a1"}}
	assert.True(t, IsNotFound(nested))
}

func TestIntegrationErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	ie := IntegrationError{Op: "smtp.send", Err: cause}

	assert.ErrorIs(t, ie, cause)
	assert.Equal(t, "smtp.send: timeout", ie.Error())
}
