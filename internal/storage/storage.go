// Package storage defines the persistence contract shared by every backend.
//
// Lookups that may legitimately miss (by name, by value, by id on the
// identity side, by account+period on the ledger side) return nil, nil.
// Operations on a record that must exist return a wrapped ErrXNotFound.
package storage

import (
	"context"

	"github.com/expensemanager/backend/internal/models"
)

// IdentityStore holds accounts and periods and owns their uniqueness.
type IdentityStore interface {
	// GetOrCreateAccount upper-cases name and returns the account holding it,
	// creating one if none exists.
	GetOrCreateAccount(ctx context.Context, name string) (*models.Account, error)
	GetAccountByName(ctx context.Context, name string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	GetAllAccounts(ctx context.Context) ([]models.Account, error)
	// UpdateAccountName returns ErrAccountNotFound or ErrDuplicate.
	UpdateAccountName(ctx context.Context, id, name string) (*models.Account, error)
	// DeleteAccount returns ErrAccountNotFound or ErrReferenced.
	DeleteAccount(ctx context.Context, id string) error

	GetOrCreatePeriod(ctx context.Context, month models.Month, year int) (*models.Period, error)
	GetPeriodByValue(ctx context.Context, month models.Month, year int) (*models.Period, error)
	GetPeriodByID(ctx context.Context, id string) (*models.Period, error)
	GetAllPeriods(ctx context.Context) ([]models.Period, error)
	// UpdatePeriod returns ErrPeriodNotFound or ErrDuplicate.
	UpdatePeriod(ctx context.Context, id string, month models.Month, year int) (*models.Period, error)
	// DeletePeriod returns ErrPeriodNotFound or ErrReferenced.
	DeletePeriod(ctx context.Context, id string) error
}

// LedgerStore holds ledger entries and owns the one-entry-per-account-per-period rule.
type LedgerStore interface {
	// AddEntry returns ErrDuplicate if the account already has an entry for the
	// period, ErrInvalidReference if the account or period does not exist.
	AddEntry(ctx context.Context, values models.EntryValues) (*models.LedgerEntry, error)
	GetEntryByID(ctx context.Context, id string) (*models.LedgerEntry, error)
	GetAllEntries(ctx context.Context) ([]models.LedgerEntry, error)
	GetEntriesForAccount(ctx context.Context, accountID string) ([]models.LedgerEntry, error)
	GetEntryByAccountAndPeriod(ctx context.Context, accountID, periodID string) (*models.LedgerEntry, error)
	// EditEntry replaces every field but the id. Returns ErrEntryNotFound,
	// ErrDuplicate or ErrInvalidReference.
	EditEntry(ctx context.Context, id string, values models.EntryValues) (*models.LedgerEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// Store is a complete backend.
type Store interface {
	IdentityStore
	LedgerStore
	Close() error
}
