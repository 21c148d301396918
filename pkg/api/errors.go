package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus wraps every non-2xx response.
	ErrUnexpectedStatus = errors.New("api: unexpected status")
	// ErrContentType is returned when a request body encoding disagrees with
	// the contract.
	ErrContentType = errors.New("api: content type does not match contract")
	// ErrBaseURL is returned when the client is built without a usable base URL.
	ErrBaseURL = errors.New("api: base url must be absolute")
)

// StatusError describes a non-2xx response.
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: unexpected status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %s", e.Status)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
