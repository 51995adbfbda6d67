// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by services. Handlers map them to HTTP statuses with
// errors.Is; the wrapped message carries the detail.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid login id or password")
	ErrWithdrawn          = errors.New("member has withdrawn")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrStorageUnavailable = errors.New("storage not configured")
)

// ResourceError ties a sentinel to the kind of record it concerns. Resource is the
// message-key prefix used for responses, e.g. "device".
type ResourceError struct {
	Resource string
	ID       string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Resource, e.ID, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func notFound(resource string, id interface{}) error {
	return &ResourceError{Resource: resource, ID: fmt.Sprint(id), Err: ErrNotFound}
}

func conflict(resource string, id interface{}) error {
	return &ResourceError{Resource: resource, ID: fmt.Sprint(id), Err: ErrConflict}
}
