package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a server-reported failure: the HTTP status plus the message field
// from the response body, surfaced verbatim so views can display it.
type Error struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Message returns the server-provided message from err, or fallback when the
// error carries no message (transport failures, empty bodies).
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a server 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
