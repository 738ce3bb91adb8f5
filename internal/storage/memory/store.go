// Package memory provides an in-process implementation of storage.Store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/google/uuid"
)

// Store keeps accounts, periods and entries in maps guarded by one mutex.
// The order slices preserve creation order for list operations.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]models.Account
	accountOrder []string

	periods     map[string]models.Period
	periodOrder []string

	entries    map[string]models.LedgerEntry
	entryOrder []string

	newID func() string
}

// New returns an empty store. Each call owns its own data.
func New() *Store {
	return &Store{
		accounts: make(map[string]models.Account),
		periods:  make(map[string]models.Period),
		entries:  make(map[string]models.LedgerEntry),
		newID:    uuid.NewString,
	}
}

// Close is a no-op; it satisfies storage.Store.
func (s *Store) Close() error { return nil }

// =============================================================================
// ACCOUNTS
// =============================================================================

func (s *Store) GetOrCreateAccount(_ context.Context, name string) (*models.Account, error) {
	name = models.NormalizeAccountName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if acc, ok := s.accountByNameLocked(name); ok {
		return &acc, nil
	}

	acc := models.Account{ID: s.newID(), Name: name}
	s.accounts[acc.ID] = acc
	s.accountOrder = append(s.accountOrder, acc.ID)
	return &acc, nil
}

func (s *Store) GetAccountByName(_ context.Context, name string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if acc, ok := s.accountByNameLocked(models.NormalizeAccountName(name)); ok {
		return &acc, nil
	}
	return nil, nil
}

func (s *Store) GetAccountByID(_ context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if acc, ok := s.accounts[id]; ok {
		return &acc, nil
	}
	return nil, nil
}

func (s *Store) GetAllAccounts(_ context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		result = append(result, s.accounts[id])
	}
	return result, nil
}

func (s *Store) UpdateAccountName(_ context.Context, id, name string) (*models.Account, error) {
	name = models.NormalizeAccountName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrAccountNotFound, id)
	}
	if other, taken := s.accountByNameLocked(name); taken && other.ID != id {
		return nil, fmt.Errorf("%w: account name %s", storage.ErrDuplicate, name)
	}

	acc.Name = name
	s.accounts[id] = acc
	return &acc, nil
}

func (s *Store) DeleteAccount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrAccountNotFound, id)
	}
	for _, e := range s.entries {
		if e.AccountID == id {
			return fmt.Errorf("%w: account %s", storage.ErrReferenced, id)
		}
	}

	delete(s.accounts, id)
	s.accountOrder = removeID(s.accountOrder, id)
	return nil
}

func (s *Store) accountByNameLocked(name string) (models.Account, bool) {
	for _, id := range s.accountOrder {
		if acc := s.accounts[id]; acc.Name == name {
			return acc, true
		}
	}
	return models.Account{}, false
}

// =============================================================================
// PERIODS
// =============================================================================

func (s *Store) GetOrCreatePeriod(_ context.Context, month models.Month, year int) (*models.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.periodByValueLocked(month, year); ok {
		return &p, nil
	}

	p := models.Period{ID: s.newID(), Month: month, Year: year}
	s.periods[p.ID] = p
	s.periodOrder = append(s.periodOrder, p.ID)
	return &p, nil
}

func (s *Store) GetPeriodByValue(_ context.Context, month models.Month, year int) (*models.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.periodByValueLocked(month, year); ok {
		return &p, nil
	}
	return nil, nil
}

func (s *Store) GetPeriodByID(_ context.Context, id string) (*models.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.periods[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *Store) GetAllPeriods(_ context.Context) ([]models.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Period, 0, len(s.periodOrder))
	for _, id := range s.periodOrder {
		result = append(result, s.periods[id])
	}
	return result, nil
}

func (s *Store) UpdatePeriod(_ context.Context, id string, month models.Month, year int) (*models.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.periods[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrPeriodNotFound, id)
	}
	if other, taken := s.periodByValueLocked(month, year); taken && other.ID != id {
		return nil, fmt.Errorf("%w: period %s %d", storage.ErrDuplicate, month, year)
	}

	p.Month = month
	p.Year = year
	s.periods[id] = p
	return &p, nil
}

func (s *Store) DeletePeriod(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.periods[id]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrPeriodNotFound, id)
	}
	for _, e := range s.entries {
		if e.PeriodID == id {
			return fmt.Errorf("%w: period %s", storage.ErrReferenced, id)
		}
	}

	delete(s.periods, id)
	s.periodOrder = removeID(s.periodOrder, id)
	return nil
}

func (s *Store) periodByValueLocked(month models.Month, year int) (models.Period, bool) {
	for _, id := range s.periodOrder {
		if p := s.periods[id]; p.Month == month && p.Year == year {
			return p, true
		}
	}
	return models.Period{}, false
}

// =============================================================================
// LEDGER ENTRIES
// =============================================================================

func (s *Store) AddEntry(_ context.Context, values models.EntryValues) (*models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEntryLocked("", values); err != nil {
		return nil, err
	}

	e := models.LedgerEntry{
		ID:              s.newID(),
		AccountID:       values.AccountID,
		PeriodID:        values.PeriodID,
		StartingBalance: values.StartingBalance,
		CurrentBalance:  values.CurrentBalance,
		CurrentCredit:   values.CurrentCredit,
	}
	s.entries[e.ID] = e
	s.entryOrder = append(s.entryOrder, e.ID)
	return &e, nil
}

func (s *Store) GetEntryByID(_ context.Context, id string) (*models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrEntryNotFound, id)
	}
	return &e, nil
}

func (s *Store) GetAllEntries(_ context.Context) ([]models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.LedgerEntry, 0, len(s.entryOrder))
	for _, id := range s.entryOrder {
		result = append(result, s.entries[id])
	}
	return result, nil
}

func (s *Store) GetEntriesForAccount(_ context.Context, accountID string) ([]models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.LedgerEntry, 0)
	for _, id := range s.entryOrder {
		if e := s.entries[id]; e.AccountID == accountID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *Store) GetEntryByAccountAndPeriod(_ context.Context, accountID, periodID string) (*models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entryByPairLocked(accountID, periodID); ok {
		return &e, nil
	}
	return nil, nil
}

func (s *Store) EditEntry(_ context.Context, id string, values models.EntryValues) (*models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrEntryNotFound, id)
	}
	if err := s.checkEntryLocked(id, values); err != nil {
		return nil, err
	}

	e := models.LedgerEntry{
		ID:              id,
		AccountID:       values.AccountID,
		PeriodID:        values.PeriodID,
		StartingBalance: values.StartingBalance,
		CurrentBalance:  values.CurrentBalance,
		CurrentCredit:   values.CurrentCredit,
	}
	s.entries[id] = e
	return &e, nil
}

func (s *Store) DeleteEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrEntryNotFound, id)
	}
	delete(s.entries, id)
	s.entryOrder = removeID(s.entryOrder, id)
	return nil
}

// checkEntryLocked enforces referential integrity and pair uniqueness for an
// entry about to be written. selfID is the entry being edited, empty on add.
func (s *Store) checkEntryLocked(selfID string, values models.EntryValues) error {
	if _, ok := s.accounts[values.AccountID]; !ok {
		return fmt.Errorf("%w: account %s", storage.ErrInvalidReference, values.AccountID)
	}
	if _, ok := s.periods[values.PeriodID]; !ok {
		return fmt.Errorf("%w: period %s", storage.ErrInvalidReference, values.PeriodID)
	}
	if existing, ok := s.entryByPairLocked(values.AccountID, values.PeriodID); ok && existing.ID != selfID {
		return fmt.Errorf("%w: entry %s already covers account %s period %s",
			storage.ErrDuplicate, existing.ID, values.AccountID, values.PeriodID)
	}
	return nil
}

func (s *Store) entryByPairLocked(accountID, periodID string) (models.LedgerEntry, bool) {
	for _, id := range s.entryOrder {
		if e := s.entries[id]; e.AccountID == accountID && e.PeriodID == periodID {
			return e, true
		}
	}
	return models.LedgerEntry{}, false
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Compile-time check: ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)
