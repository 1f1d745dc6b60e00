package ironring

import "errors"

// Errors returned by the records and services of this package. They are
// always wrapped with context, test them with errors.Is.
var (
	// ErrStoreUnavailable reports a record file that is missing or cannot be
	// parsed. It is fatal for credentials and permissions.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrWrite reports a failure to write a record file.
	ErrWrite = errors.New("write error")
	// ErrPersist reports a ledger mutation that could not be saved, the
	// mutation is not applied.
	ErrPersist = errors.New("persist error")

	ErrUnauthorized      = errors.New("unauthorized")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnknownRecipient  = errors.New("unknown recipient")
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")

	// ErrLockedOut is returned once all authentication attempts are spent.
	ErrLockedOut = errors.New("locked out")
)
