package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Detail  string `json:"message,omitempty"`
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// WithDetail returns a copy carrying a technical detail for the client.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	c := *e
	c.Detail = detail
	return &c
}

// Helpers for common errors
var (
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrInternal     = func(msg string) *HTTPError { return NewHTTPError(http.StatusInternalServerError, msg) }
)

// Write sends e as a JSON body with its status code.
func Write(w http.ResponseWriter, e *HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
