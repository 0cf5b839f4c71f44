package tripcater

import (
	"errors"
	"fmt"
	"net/http"

	"console/internal/domain"
)

// ErrUnavailable wraps transport failures: the backend could not be reached
// or did not answer in time.
var ErrUnavailable = errors.New("tripcater: backend unavailable")

// APIError is a response from the backend that was not a success. A 2xx
// response whose envelope says success=false is reported with that status.
type APIError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("tripcater: %s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

// StatusOf returns the backend status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the backend message carried by err when there is one.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// lookupError reports a by-id lookup the backend could not answer with a
// record as a domain.NotFoundError: a 404, or a 200 envelope with
// success=false. Other failures are returned unchanged.
func lookupError(err error, resource string) error {
	if err == nil {
		return nil
	}
	switch StatusOf(err) {
	case http.StatusNotFound, http.StatusOK:
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return err
}
