package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable         = errors.New("server unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected response")
	ErrInvalidFileID       = errors.New("invalid file id")
	ErrMissingUploadedFile = errors.New("no file to upload")
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	// Detail is the server-provided message, empty when the body had none.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}
