package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the server, with whatever human
// message the body carried.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 from the server. The product
// detail flow uses this to navigate back to the list instead of showing a
// generic failure.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// IsUnauthorized reports a 401 (bad credentials on login).
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}

// apiErrorFrom extracts a message from the common error body shapes:
// {"message": "..."} or {"errors": ["...", ...]}.
func apiErrorFrom(status int, body []byte) *APIError {
	var payload struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case len(payload.Errors) > 0:
			msg = strings.Join(payload.Errors, " ")
		}
	}
	return &APIError{Status: status, Message: msg}
}
