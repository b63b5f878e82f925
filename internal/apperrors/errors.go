package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrTransferNotFound = errors.New("transfer not found")

	ErrBalanceInsufficient = errors.New("insufficient balance")

	// Optimistic concurrency check failed: the account row was modified
	// after the snapshot was read. Safe for the caller to re-read and retry
	ErrDataConflict = errors.New("account data conflict")

	ErrInvalidRequest = errors.New("invalid request data")
)

// InvalidRequestError carries the reason the request was rejected
// Matches ErrInvalidRequest with errors.Is
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request data: %s", e.Reason)
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func NewInvalidRequest(reason string) error {
	return &InvalidRequestError{Reason: reason}
}
