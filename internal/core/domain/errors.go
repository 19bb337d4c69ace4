package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks failures where no HTTP response was obtained.
var ErrNetwork = errors.New("network failure")

var ErrNotFound = errors.New("not found")
var ErrNotLoggedIn = errors.New("not logged in")

// NetworkError wraps the transport failure behind a remote call.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrNetwork, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// ServerError is a non-2xx answer from the remote API.
type ServerError struct {
	Op      string
	Status  int
	Message string
	Body    []byte
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Status, msg)
}

// StatusOf returns the HTTP status carried by a ServerError, or 0.
func StatusOf(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsValidation reports whether the server rejected the request payload.
func IsValidation(err error) bool {
	s := StatusOf(err)
	return s == http.StatusBadRequest || s == http.StatusUnprocessableEntity
}

// IsUnauthorized reports whether the server rejected the credentials.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// Message extracts the text worth showing a user for err.
func Message(err error) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if errors.Is(err, ErrNetwork) {
		return "the server could not be reached"
	}
	return err.Error()
}
