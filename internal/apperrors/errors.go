package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError reports request fields that failed their constraints.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError builds a ValidationError from one or more field messages.
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// DomainError is a business rule violation detected by a service.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(format string, args ...interface{}) error {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means the requested entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// AuthenticationError covers missing, malformed, expired or otherwise invalid credentials.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

func NewAuthenticationError(message string, err error) error {
	return &AuthenticationError{Message: message, Err: err}
}
