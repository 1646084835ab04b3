package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("mission api: not found")
	ErrInvalidMissionID = errors.New("mission api: mission id must be positive")
)

// StatusError is returned for any non-2xx answer from the Mission API
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mission api: %s %s: %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
}

// Is lets callers match a 404 with errors.Is(err, ErrNotFound).
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}
