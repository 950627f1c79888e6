package domain

import (
	"errors"
	"fmt"
)

type RejectionKind string

const (
	RejectionKindNotFound          RejectionKind = "not_found"
	RejectionKindValidationFailed  RejectionKind = "validation_failed"
	RejectionKindUnauthorized      RejectionKind = "unauthorized"
	RejectionKindInvalidTransition RejectionKind = "invalid_transition"
	RejectionKindConflict          RejectionKind = "conflict"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflict")
)

var rejectionSentinels = map[RejectionKind]error{
	RejectionKindNotFound:          ErrNotFound,
	RejectionKindValidationFailed:  ErrValidationFailed,
	RejectionKindUnauthorized:      ErrUnauthorized,
	RejectionKindInvalidTransition: ErrInvalidTransition,
	RejectionKindConflict:          ErrConflict,
}

// RejectedError is a business-rule rejection, either decided locally or returned by the remote service.
type RejectedError struct {
	Kind   RejectionKind
	Reason string
	Err    error
}

func NewRejectedError(kind RejectionKind, reason string) *RejectedError {
	return &RejectedError{Kind: kind, Reason: reason}
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the rejection kind, so errors.Is(err, ErrNotFound) works for remote and
// local rejections alike.
func (e *RejectedError) Is(target error) bool {
	sentinel, ok := rejectionSentinels[e.Kind]
	return ok && sentinel == target
}

func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}

// RejectionReason returns the human-readable reason of a rejection, or the error text otherwise.
func RejectionReason(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.Reason != "" {
		return rejected.Reason
	}
	return err.Error()
}
