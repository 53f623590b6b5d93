package sbbclient

import "fmt"

// BackendError covers network failures, non-2xx statuses and bodies that are not JSON.
type BackendError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Operation, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
