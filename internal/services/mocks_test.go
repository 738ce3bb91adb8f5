package services

import (
	"context"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) GetOrCreateAccount(ctx context.Context, name string) (*models.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockIdentityStore) GetAccountByName(ctx context.Context, name string) (*models.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockIdentityStore) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockIdentityStore) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockIdentityStore) UpdateAccountName(ctx context.Context, id, name string) (*models.Account, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockIdentityStore) DeleteAccount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIdentityStore) GetOrCreatePeriod(ctx context.Context, month models.Month, year int) (*models.Period, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Period), args.Error(1)
}

func (m *MockIdentityStore) GetPeriodByValue(ctx context.Context, month models.Month, year int) (*models.Period, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Period), args.Error(1)
}

func (m *MockIdentityStore) GetPeriodByID(ctx context.Context, id string) (*models.Period, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Period), args.Error(1)
}

func (m *MockIdentityStore) GetAllPeriods(ctx context.Context) ([]models.Period, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Period), args.Error(1)
}

func (m *MockIdentityStore) UpdatePeriod(ctx context.Context, id string, month models.Month, year int) (*models.Period, error) {
	args := m.Called(ctx, id, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Period), args.Error(1)
}

func (m *MockIdentityStore) DeletePeriod(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) AddEntry(ctx context.Context, values models.EntryValues) (*models.LedgerEntry, error) {
	args := m.Called(ctx, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) GetEntryByID(ctx context.Context, id string) (*models.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) GetAllEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) GetEntriesForAccount(ctx context.Context, accountID string) ([]models.LedgerEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) GetEntryByAccountAndPeriod(ctx context.Context, accountID, periodID string) (*models.LedgerEntry, error) {
	args := m.Called(ctx, accountID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) EditEntry(ctx context.Context, id string, values models.EntryValues) (*models.LedgerEntry, error) {
	args := m.Called(ctx, id, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) DeleteEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ storage.IdentityStore = (*MockIdentityStore)(nil)
	_ storage.LedgerStore   = (*MockLedgerStore)(nil)
)
