package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
)

// LedgerService records one balance entry per account per period and hands
// back flattened views with derived balances attached.
type LedgerService struct {
	identity storage.IdentityStore
	ledger   storage.LedgerStore
	ops      *OperationLogger
}

type LedgerOption func(*LedgerService)

// WithOperationLogger emits one line per add, edit and delete.
func WithOperationLogger(ops *OperationLogger) LedgerOption {
	return func(s *LedgerService) { s.ops = ops }
}

func NewLedgerService(identity storage.IdentityStore, ledger storage.LedgerStore, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{identity: identity, ledger: ledger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEntry records a new entry for in.AccountName in the period in.Month/in.Year.
// The account must already exist; the period is created if needed.
func (s *LedgerService) AddEntry(ctx context.Context, in models.EntryInput) (view *models.FlattenedEntry, err error) {
	period := models.Period{Month: in.Month, Year: in.Year}.String()
	defer func(start time.Time) {
		observe("add_entry", start, err)
		if err != nil {
			s.ops.LogFailure("ADD_ENTRY", "", in.AccountName, period, err)
			return
		}
		s.ops.LogSuccess("ADD_ENTRY", view.ID, view.AccountName, period)
	}(time.Now())

	account, err := s.requireAccountByName(ctx, in.AccountName)
	if err != nil {
		return nil, err
	}

	p, err := s.identity.GetPeriodByValue(ctx, in.Month, in.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to look up period: %w", err)
	}
	if p != nil {
		existing, err := s.ledger.GetEntryByAccountAndPeriod(ctx, account.ID, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing entry: %w", err)
		}
		if existing != nil {
			return nil, s.periodTaken(account, in)
		}
	} else {
		p, err = s.identity.GetOrCreatePeriod(ctx, in.Month, in.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to create period: %w", err)
		}
	}

	entry, err := s.ledger.AddEntry(ctx, entryValues(account.ID, p.ID, in))
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return nil, s.periodTaken(account, in)
	case errors.Is(err, storage.ErrInvalidReference):
		return nil, &AccountWithNameNotFoundError{AccountName: account.Name}
	case err != nil:
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	flat := entry.View().Flatten(*account, *p)
	return &flat, nil
}

// EditEntry replaces every field of entry id. Moving the entry onto a period
// the account already uses by another entry is rejected.
func (s *LedgerService) EditEntry(ctx context.Context, id string, in models.EntryInput) (view *models.FlattenedEntry, err error) {
	period := models.Period{Month: in.Month, Year: in.Year}.String()
	defer func(start time.Time) {
		observe("edit_entry", start, err)
		if err != nil {
			s.ops.LogFailure("EDIT_ENTRY", id, in.AccountName, period, err)
			return
		}
		s.ops.LogSuccess("EDIT_ENTRY", id, view.AccountName, period)
	}(time.Now())

	account, err := s.requireAccountByName(ctx, in.AccountName)
	if err != nil {
		return nil, err
	}

	p, err := s.identity.GetOrCreatePeriod(ctx, in.Month, in.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create period: %w", err)
	}

	existing, err := s.ledger.GetEntryByAccountAndPeriod(ctx, account.ID, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, s.periodTaken(account, in)
	}

	entry, err := s.ledger.EditEntry(ctx, id, entryValues(account.ID, p.ID, in))
	switch {
	case errors.Is(err, storage.ErrEntryNotFound):
		return nil, &LedgerEntryNotFoundError{EntryID: id}
	case errors.Is(err, storage.ErrDuplicate):
		return nil, s.periodTaken(account, in)
	case errors.Is(err, storage.ErrInvalidReference):
		return nil, &AccountWithNameNotFoundError{AccountName: account.Name}
	case err != nil:
		return nil, fmt.Errorf("failed to edit entry: %w", err)
	}

	flat := entry.View().Flatten(*account, *p)
	return &flat, nil
}

func (s *LedgerService) DeleteEntry(ctx context.Context, id string) (err error) {
	defer func(start time.Time) {
		observe("delete_entry", start, err)
		if err != nil {
			s.ops.LogFailure("DELETE_ENTRY", id, "", "", err)
			return
		}
		s.ops.LogSuccess("DELETE_ENTRY", id, "", "")
	}(time.Now())

	err = s.ledger.DeleteEntry(ctx, id)
	switch {
	case errors.Is(err, storage.ErrEntryNotFound):
		return &LedgerEntryNotFoundError{EntryID: id}
	case err != nil:
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (s *LedgerService) GetEntry(ctx context.Context, id string) (*models.FlattenedEntry, error) {
	entry, err := s.ledger.GetEntryByID(ctx, id)
	switch {
	case errors.Is(err, storage.ErrEntryNotFound):
		return nil, &LedgerEntryNotFoundError{EntryID: id}
	case err != nil:
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return s.flatten(ctx, *entry)
}

func (s *LedgerService) GetAllEntries(ctx context.Context) ([]models.FlattenedEntry, error) {
	entries, err := s.ledger.GetAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return s.flattenAll(ctx, entries)
}

func (s *LedgerService) GetEntriesForAccount(ctx context.Context, accountID string) ([]models.FlattenedEntry, error) {
	account, err := s.identity.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, &AccountNotFoundError{AccountID: accountID}
	}

	entries, err := s.ledger.GetEntriesForAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for account: %w", err)
	}
	return s.flattenAll(ctx, entries)
}

func (s *LedgerService) requireAccountByName(ctx context.Context, name string) (*models.Account, error) {
	account, err := s.identity.GetAccountByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, &AccountWithNameNotFoundError{AccountName: models.NormalizeAccountName(name)}
	}
	return account, nil
}

func (s *LedgerService) periodTaken(account *models.Account, in models.EntryInput) error {
	return &PeriodAlreadyExistsForAccountError{AccountName: account.Name, Month: in.Month, Year: in.Year}
}

func (s *LedgerService) flattenAll(ctx context.Context, entries []models.LedgerEntry) ([]models.FlattenedEntry, error) {
	result := make([]models.FlattenedEntry, 0, len(entries))
	for _, e := range entries {
		flat, err := s.flatten(ctx, e)
		if err != nil {
			return nil, err
		}
		result = append(result, *flat)
	}
	return result, nil
}

// flatten resolves the account and period of e.
func (s *LedgerService) flatten(ctx context.Context, e models.LedgerEntry) (*models.FlattenedEntry, error) {
	account, err := s.identity.GetAccountByID(ctx, e.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account of entry %s: %w", e.ID, err)
	}
	if account == nil {
		return nil, &AccountNotFoundError{AccountID: e.AccountID}
	}

	p, err := s.identity.GetPeriodByID(ctx, e.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period of entry %s: %w", e.ID, err)
	}
	if p == nil {
		return nil, &PeriodNotFoundError{PeriodID: e.PeriodID}
	}

	flat := e.View().Flatten(*account, *p)
	return &flat, nil
}

func entryValues(accountID, periodID string, in models.EntryInput) models.EntryValues {
	return models.EntryValues{
		AccountID:       accountID,
		PeriodID:        periodID,
		StartingBalance: in.StartingBalance,
		CurrentBalance:  in.CurrentBalance,
		CurrentCredit:   in.CurrentCredit,
	}
}
