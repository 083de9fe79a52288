// Package persistence provides standardized error types for persistence
// operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrWorkflowNotFound indicates a workflow was not found by the given identifier.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrJobNotFound indicates a job was not found by the given identifier.
	ErrJobNotFound = errors.New("job not found")

	// ErrWorkspaceNotFound indicates a workspace was not found by the given identifier.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrJobTerminal indicates an attempt to mutate a job already in a terminal state.
	ErrJobTerminal = errors.New("job is in a terminal state")
)

// StoreError wraps persistence failures with the operation and entity.
type StoreError struct {
	Op       string // Operation being performed (e.g. "SaveJob", "WorkflowByID")
	EntityID string // Identifier of the affected entity, if applicable
	Err      error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.EntityID != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Op, e.EntityID, e.Err)
	}

	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewStoreError creates a store error with context.
func NewStoreError(op, entityID string, err error) *StoreError {
	return &StoreError{Op: op, EntityID: entityID, Err: err}
}

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound) ||
		errors.Is(err, ErrJobNotFound) ||
		errors.Is(err, ErrWorkspaceNotFound)
}
