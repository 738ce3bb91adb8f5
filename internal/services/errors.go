package services

import (
	"errors"
	"fmt"

	"github.com/expensemanager/backend/internal/models"
)

// Category sentinels. Every error kind below unwraps to one of them so callers
// can branch with errors.Is without knowing the concrete kind.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// AccountNotFoundError is returned when no account has the given id.
type AccountNotFoundError struct {
	AccountID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account with id %s not found", e.AccountID)
}

func (e *AccountNotFoundError) Unwrap() error { return ErrNotFound }

// AccountWithNameNotFoundError is returned when no account has the given name.
type AccountWithNameNotFoundError struct {
	AccountName string
}

func (e *AccountWithNameNotFoundError) Error() string {
	return fmt.Sprintf("account with name %s not found", e.AccountName)
}

func (e *AccountWithNameNotFoundError) Unwrap() error { return ErrNotFound }

// PeriodNotFoundError is returned when no period has the given id.
type PeriodNotFoundError struct {
	PeriodID string
}

func (e *PeriodNotFoundError) Error() string {
	return fmt.Sprintf("period with id %s not found", e.PeriodID)
}

func (e *PeriodNotFoundError) Unwrap() error { return ErrNotFound }

// PeriodWithDetailsNotFoundError is returned when no period matches a month and year.
type PeriodWithDetailsNotFoundError struct {
	Month models.Month
	Year  int
}

func (e *PeriodWithDetailsNotFoundError) Error() string {
	return fmt.Sprintf("period %s %d not found", e.Month, e.Year)
}

func (e *PeriodWithDetailsNotFoundError) Unwrap() error { return ErrNotFound }

// LedgerEntryNotFoundError is returned when no entry has the given id.
type LedgerEntryNotFoundError struct {
	EntryID string
}

func (e *LedgerEntryNotFoundError) Error() string {
	return fmt.Sprintf("ledger entry with id %s not found", e.EntryID)
}

func (e *LedgerEntryNotFoundError) Unwrap() error { return ErrNotFound }

// PeriodAlreadyExistsForAccountError is returned when an account already has
// an entry for the period.
type PeriodAlreadyExistsForAccountError struct {
	AccountName string
	Month       models.Month
	Year        int
}

func (e *PeriodAlreadyExistsForAccountError) Error() string {
	return fmt.Sprintf("account %s already has an entry for %s %d", e.AccountName, e.Month, e.Year)
}

func (e *PeriodAlreadyExistsForAccountError) Unwrap() error { return ErrConflict }

type AccountNameTakenError struct {
	AccountName string
}

func (e *AccountNameTakenError) Error() string {
	return fmt.Sprintf("account name %s is already taken", e.AccountName)
}

func (e *AccountNameTakenError) Unwrap() error { return ErrConflict }

type PeriodTakenError struct {
	Month models.Month
	Year  int
}

func (e *PeriodTakenError) Error() string {
	return fmt.Sprintf("period %s %d already exists", e.Month, e.Year)
}

func (e *PeriodTakenError) Unwrap() error { return ErrConflict }

// AccountInUseError is returned when deleting an account that entries still reference.
type AccountInUseError struct {
	AccountID string
}

func (e *AccountInUseError) Error() string {
	return fmt.Sprintf("account %s still has ledger entries", e.AccountID)
}

func (e *AccountInUseError) Unwrap() error { return ErrConflict }

// PeriodInUseError is returned when deleting a period that entries still reference.
type PeriodInUseError struct {
	PeriodID string
}

func (e *PeriodInUseError) Error() string {
	return fmt.Sprintf("period %s still has ledger entries", e.PeriodID)
}

func (e *PeriodInUseError) Unwrap() error { return ErrConflict }

// IsNotFound reports whether err is any of the not-found kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is any of the conflict kinds.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
