package workouts

import (
	"errors"
	"fmt"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrSubmissionRejected is returned when nothing of a submission is persisted.
	ErrSubmissionRejected = errors.New("submission rejected")
)

type ValidationKind string

const (
	KindMissingBlock       ValidationKind = "missing_block"
	KindMalformedBlock     ValidationKind = "malformed_block"
	KindInvalidRepetitions ValidationKind = "invalid_repetition_count"
)

// ValidationError reports a rejected block of a workout submission.
// Position is the 1-based index of the block within the submission.
type ValidationError struct {
	Position int            `json:"position"`
	Kind     ValidationKind `json:"kind"`
	Message  string         `json:"message"`
	Detail   string         `json:"detail,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewMissingBlockError(position int) *ValidationError {
	return &ValidationError{
		Position: position,
		Kind:     KindMissingBlock,
		Message:  fmt.Sprintf("missing block at position %d", position),
		Detail:   "block must start with a #<category> line",
	}
}

func NewMalformedBlockError(position int, detail string) *ValidationError {
	return &ValidationError{
		Position: position,
		Kind:     KindMalformedBlock,
		Message:  fmt.Sprintf("malformed block at position %d", position),
		Detail:   detail,
	}
}

func NewInvalidRepetitionsError(position int, detail string) *ValidationError {
	return &ValidationError{
		Position: position,
		Kind:     KindInvalidRepetitions,
		Message:  "invalid repetition count",
		Detail:   detail,
	}
}

// NotFoundError is returned when the owner has no record at all,
// which is different from an owner without workouts.
type NotFoundError struct {
	OwnerID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("owner [%s] not found", e.OwnerID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrOwnerNotFound
}

// StoreError wraps a persistence failure. It is never retried here.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err comes from the record store.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
