package httpstore

import (
	"fmt"
	"net/http"

	"projectdeck/internal/jsonutil"
	"projectdeck/internal/store"
)

// StatusError is a non-2xx API response.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Message)
}

// Unwrap maps the status code onto the store sentinels.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusNotFound:
		return store.ErrNotFound
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return store.ErrUnauthorized
	case e.Code >= 500:
		return store.ErrUnavailable
	}
	return nil
}

func newStatusError(op string, code int, body []byte) *StatusError {
	return &StatusError{Op: op, Code: code, Message: jsonutil.ErrorMessage(body)}
}
