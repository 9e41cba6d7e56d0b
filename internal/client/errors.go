package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// APIError is a non 2xx answer of the server.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%d: %s (%s)", e.Status, e.Message, e.Field)
	}

	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{Status: status}

	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}

	if json.Unmarshal(raw, &body) == nil {
		e.Message = body.Message
		e.Field = body.Field
	}

	if e.Message == "" {
		e.Message = http.StatusText(status)
	}

	return e
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == status
}

// transient reports whether a read may succeed when repeated: server errors
// and transport failures, not client errors or cancellation.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}

	return true
}

// message is the text shown to a user for err.
func message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return err.Error()
}
