/*
errors.go - Centralized error types for the finance engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine itself is a pure computation layer with no I/O failure modes:
  missing data, empty months, and zero-activity windows resolve to zero-valued
  aggregates, never to errors. The errors here belong to the boundaries
  (input validation, store persistence).

ERROR CATEGORIES:
  1. Validation errors - Malformed transactions rejected at the boundary
  2. Store errors - Persistence-level failures
  3. Period errors - Malformed date ranges

USAGE:
  if errors.Is(err, finance.ErrInvalidCategory) {
      // reject the input, do not bucket it
  }

SEE ALSO:
  - types.go: Boundary validation using these errors
  - store.go: Store interface returning these errors
*/
package finance

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidCategory is returned when a category, type, or classification
	// string is outside the closed set. Invalid categories are rejected at
	// the boundary rather than silently bucketed into "other".
	ErrInvalidCategory = errors.New("invalid category")

	// ErrNegativeAmount is returned for a transaction with a negative amount.
	// Direction comes from the transaction type, never from the sign.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrMissingDate is returned for a transaction without a date. The date
	// is the sole temporal key used for bucketing.
	ErrMissingDate = errors.New("missing transaction date")

	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrDuplicateIdempotencyKey is returned when a transaction with the same
	// idempotency key already exists. This is expected behavior for retries.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")

	// ErrTransactionFailed is returned when a transaction cannot be persisted.
	ErrTransactionFailed = errors.New("transaction failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidTransactionError wraps a boundary validation failure with the
// offending transaction's identity.
type InvalidTransactionError struct {
	ID     TransactionID
	Reason error
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("invalid transaction %s: %v", e.ID, e.Reason)
}

func (e *InvalidTransactionError) Unwrap() error {
	return e.Reason
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrDuplicateIdempotencyKey)
}
