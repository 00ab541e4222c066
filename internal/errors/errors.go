package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Client-visible failure messages. Login failures deliberately share one
// message so callers cannot tell a missing account from a wrong password.
var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrGoalNotFound is returned when the referenced goal does not exist.
	ErrGoalNotFound = errors.New("Goal not found")
	// ErrNotGoalOwner is returned when the caller does not own the goal.
	ErrNotGoalOwner = errors.New("Unauthorized to modify this goal")
	// ErrInvalidToken is returned when a token cannot be validated.
	ErrInvalidToken = errors.New("Invalid token")
)

// DefaultErrorMessage is returned for unexpected failures; details stay in
// the server log.
const DefaultErrorMessage = "Something went wrong, please try again later."

// ValidationError carries field-keyed rule violations accumulated by the
// validation layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Validation failed")
	for i, k := range keys {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + e.Fields[k])
	}
	return b.String()
}

// NewValidationError builds a ValidationError from a field map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MapErrorToHTTP maps domain errors to an HTTP status and response body.
// Validation, credential, not-found and ownership failures are all 400s;
// anything unrecognized is a 500 with a generic message.
func MapErrorToHTTP(err error) (int, ErrorResponse) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Errors:  vErr.Fields,
		}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrGoalNotFound),
		errors.Is(err, ErrNotGoalOwner),
		errors.Is(err, ErrInvalidToken):
		return http.StatusBadRequest, ErrorResponse{Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: DefaultErrorMessage}
	}
}
