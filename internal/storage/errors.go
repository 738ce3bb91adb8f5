package storage

import "errors"

// Sentinel errors returned by every backend, usually wrapped with the key
// that caused them. Test with errors.Is.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrPeriodNotFound  = errors.New("period not found")
	ErrEntryNotFound   = errors.New("ledger entry not found")

	// ErrDuplicate is a uniqueness violation: account name, (month, year)
	// or (account, period) of an entry.
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenced is returned when deleting an account or period that
	// ledger entries still point to.
	ErrReferenced = errors.New("record is referenced by ledger entries")

	// ErrInvalidReference is returned when an entry points to an account or
	// period that does not exist.
	ErrInvalidReference = errors.New("entry references a missing account or period")
)
