package booking

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned when a submission is attempted without an
// authenticated identity. Nothing is uploaded or persisted in that case.
var ErrAuthRequired = errors.New("authentication required")

// ErrSessionNotFound is returned when a submission session has expired or
// never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError gates submission; it carries the full per-field error
// mapping and implies no side effects occurred.
type ValidationError struct {
	Fields map[FieldID]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking draft failed validation (%d field errors)", len(e.Fields))
}

// StageError attributes a submission failure to the stage it died in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("booking submission failed at stage %q: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with the stage it occurred in.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
