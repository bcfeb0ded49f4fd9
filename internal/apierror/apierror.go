package apierror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Error is the common envelope for failed requests: a boolean status flag,
// a flat message, and optional per-field validation messages.
type Error struct {
	status int

	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

func (e *Error) ContentType(string) string {
	return "application/json"
}

// MessageError is the reduced envelope used by a couple of transaction
// endpoints that only carry a message.
type MessageError struct {
	status int

	Message string `json:"message"`
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) GetStatus() int {
	return e.status
}

func (e *MessageError) ContentType(string) string {
	return "application/json"
}

// Validation builds the 422 response for failed input validation.
func Validation(errors map[string][]string) *Error {
	return &Error{
		status:  http.StatusUnprocessableEntity,
		Status:  false,
		Message: "Validation error",
		Errors:  errors,
	}
}

// Unauthenticated builds the 401 response for missing or bad credentials.
func Unauthenticated(message string) *Error {
	return &Error{
		status:  http.StatusUnauthorized,
		Status:  false,
		Message: message,
	}
}

// NotFound builds the 404 response carrying the status flag.
func NotFound(message string) *Error {
	return &Error{
		status:  http.StatusNotFound,
		Status:  false,
		Message: message,
	}
}

// NotFoundMessage builds the bare 404 response without the status flag.
func NotFoundMessage(message string) *MessageError {
	return &MessageError{
		status:  http.StatusNotFound,
		Message: message,
	}
}

// Internal builds the 500 response for unexpected failures.
func Internal(message string) *Error {
	return &Error{
		status:  http.StatusInternalServerError,
		Status:  false,
		Message: message,
	}
}

// UseEnvelope replaces Huma's default error model so errors raised by the
// framework itself (body parse failures, method checks) share the envelope
// the handlers produce.
func UseEnvelope() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			fieldErrors := make(map[string][]string)
			for _, err := range errs {
				if detail, ok := err.(huma.ErrorDetailer); ok {
					d := detail.ErrorDetail()
					fieldErrors[d.Location] = append(fieldErrors[d.Location], d.Message)
				}
			}
			return &Error{
				status:  status,
				Status:  false,
				Message: "Validation error",
				Errors:  fieldErrors,
			}
		}
		return &Error{
			status:  status,
			Status:  false,
			Message: message,
		}
	}
}
