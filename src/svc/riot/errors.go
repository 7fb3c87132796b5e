package riot

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound    = errors.New("riot: not found")
	ErrForbidden   = errors.New("riot: api key rejected")
	ErrRateLimited = errors.New("riot: rate limited")
)

// APIError is a non-2xx upstream response. It unwraps to one of the sentinel errors
// when the status has a meaning of its own.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot: %s returned %d", e.URL, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrForbidden
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

// IsPermanent reports whether retrying err can never succeed.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden)
}
