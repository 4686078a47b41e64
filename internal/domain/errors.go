package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPayload rejects a whole task batch
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrNotConfigured means no expected password hash is set
	ErrNotConfigured = errors.New("server not configured")
	// ErrWrongPassword means the password hash did not match
	ErrWrongPassword = errors.New("wrong password")
	// ErrUnauthorized means the session token is missing, forged or expired
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidWeek means a week key or date could not be parsed
	ErrInvalidWeek = errors.New("invalid week")
)

// RejectReason names why a task item failed validation.
type RejectReason string

const (
	ReasonEmptyBatch      RejectReason = "empty_batch"
	ReasonMalformed       RejectReason = "malformed"
	ReasonMissingWeek     RejectReason = "missing_week"
	ReasonMissingPeriod   RejectReason = "missing_period"
	ReasonMissingAssignee RejectReason = "missing_assignee"
	ReasonMissingCategory RejectReason = "missing_category"
	ReasonInvalidIndex    RejectReason = "invalid_index"
	ReasonInvalidDone     RejectReason = "invalid_done"
	ReasonReservedChar    RejectReason = "reserved_character"
)

// ValidationError reports the first rejected item of a batch.
type ValidationError struct {
	Item   int
	Reason RejectReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: item %d: %s", e.Item, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPayload
}
