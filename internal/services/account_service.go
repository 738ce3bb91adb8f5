package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
)

// AccountService exposes accounts and periods to callers, translating storage
// outcomes into the service error kinds.
type AccountService struct {
	store storage.IdentityStore
}

func NewAccountService(store storage.IdentityStore) *AccountService {
	return &AccountService{store: store}
}

// GetOrCreateAccount returns the account named name, creating it on first use.
func (s *AccountService) GetOrCreateAccount(ctx context.Context, name string) (acc *models.Account, err error) {
	defer func(start time.Time) { observe("get_or_create_account", start, err) }(time.Now())

	acc, err = s.store.GetOrCreateAccount(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create account: %w", err)
	}
	return acc, nil
}

func (s *AccountService) GetAccountByName(ctx context.Context, name string) (*models.Account, error) {
	acc, err := s.store.GetAccountByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, &AccountWithNameNotFoundError{AccountName: models.NormalizeAccountName(name)}
	}
	return acc, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	acc, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, &AccountNotFoundError{AccountID: id}
	}
	return acc, nil
}

func (s *AccountService) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.store.GetAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

func (s *AccountService) UpdateAccountName(ctx context.Context, id, name string) (acc *models.Account, err error) {
	defer func(start time.Time) { observe("update_account", start, err) }(time.Now())

	acc, err = s.store.UpdateAccountName(ctx, id, name)
	switch {
	case errors.Is(err, storage.ErrAccountNotFound):
		return nil, &AccountNotFoundError{AccountID: id}
	case errors.Is(err, storage.ErrDuplicate):
		return nil, &AccountNameTakenError{AccountName: models.NormalizeAccountName(name)}
	case err != nil:
		return nil, fmt.Errorf("failed to rename account: %w", err)
	}
	return acc, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { observe("delete_account", start, err) }(time.Now())

	err = s.store.DeleteAccount(ctx, id)
	switch {
	case errors.Is(err, storage.ErrAccountNotFound):
		return &AccountNotFoundError{AccountID: id}
	case errors.Is(err, storage.ErrReferenced):
		return &AccountInUseError{AccountID: id}
	case err != nil:
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// GetOrCreatePeriod returns the period for month and year, creating it on first use.
func (s *AccountService) GetOrCreatePeriod(ctx context.Context, month models.Month, year int) (p *models.Period, err error) {
	defer func(start time.Time) { observe("get_or_create_period", start, err) }(time.Now())

	p, err = s.store.GetOrCreatePeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create period: %w", err)
	}
	return p, nil
}

func (s *AccountService) GetPeriodByValue(ctx context.Context, month models.Month, year int) (*models.Period, error) {
	p, err := s.store.GetPeriodByValue(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	if p == nil {
		return nil, &PeriodWithDetailsNotFoundError{Month: month, Year: year}
	}
	return p, nil
}

func (s *AccountService) GetPeriodByID(ctx context.Context, id string) (*models.Period, error) {
	p, err := s.store.GetPeriodByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	if p == nil {
		return nil, &PeriodNotFoundError{PeriodID: id}
	}
	return p, nil
}

func (s *AccountService) GetAllPeriods(ctx context.Context) ([]models.Period, error) {
	periods, err := s.store.GetAllPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	if periods == nil {
		periods = []models.Period{}
	}
	return periods, nil
}

func (s *AccountService) UpdatePeriod(ctx context.Context, id string, month models.Month, year int) (p *models.Period, err error) {
	defer func(start time.Time) { observe("update_period", start, err) }(time.Now())

	p, err = s.store.UpdatePeriod(ctx, id, month, year)
	switch {
	case errors.Is(err, storage.ErrPeriodNotFound):
		return nil, &PeriodNotFoundError{PeriodID: id}
	case errors.Is(err, storage.ErrDuplicate):
		return nil, &PeriodTakenError{Month: month, Year: year}
	case err != nil:
		return nil, fmt.Errorf("failed to update period: %w", err)
	}
	return p, nil
}

func (s *AccountService) DeletePeriod(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { observe("delete_period", start, err) }(time.Now())

	err = s.store.DeletePeriod(ctx, id)
	switch {
	case errors.Is(err, storage.ErrPeriodNotFound):
		return &PeriodNotFoundError{PeriodID: id}
	case errors.Is(err, storage.ErrReferenced):
		return &PeriodInUseError{PeriodID: id}
	case err != nil:
		return fmt.Errorf("failed to delete period: %w", err)
	}
	return nil
}
