package service

import "github.com/carson-networks/finance-tracker/internal/validation"

// ValidationError rejects a request before any persistence write and carries
// the per-field messages.
type ValidationError struct {
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	return "validation error"
}

// NotFoundError means no record exists for the given id.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// AuthError means the caller's credentials or token did not check out.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
