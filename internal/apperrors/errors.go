// Package apperrors defines the error taxonomy exposed over HTTP:
// validation, conflict, authentication, not-found and internal failures,
// each carrying the status code it maps to.
package apperrors

import "net/http"

// Error is an application error with a specific HTTP status code.
type Error struct {
	// Status is the HTTP status code this error maps to.
	Status int `json:"-"`
	// Message is the human-readable text returned to the client.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status code and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Validation reports a missing or empty required field (400).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Conflict reports a uniqueness violation such as a duplicate username (400).
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized reports bad credentials or a missing/invalid token (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound reports a missing row or an ownership mismatch (404).
// The two cases are deliberately indistinguishable to the caller.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}
