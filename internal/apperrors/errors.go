package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/failsafe-go/failsafe-go/timeout"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewShowNotFoundError creates a specific error for when no source matched a show title.
func NewShowNotFoundError(title string) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       title,
	}
}

// ErrUnexpectedStatus is returned when a remote endpoint answers with a non-2xx status code.
type ErrUnexpectedStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}

// ErrTransport wraps a failure that happened before any HTTP response was received
// (DNS resolution, refused connection, timeout, TLS handshake...).
type ErrTransport struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ErrTransport) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrTransport) Is(target error) bool {
	_, ok := target.(*ErrTransport)
	return ok
}

// Timeout reports whether the failure was caused by a deadline.
func (e *ErrTransport) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) || errors.Is(e.Err, timeout.ErrExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// NewTransportError creates a new ErrTransport.
func NewTransportError(op, url string, err error) *ErrTransport {
	return &ErrTransport{
		Op:  op,
		URL: url,
		Err: err,
	}
}
