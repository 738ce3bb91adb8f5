package memory

import (
	"context"
	"testing"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/expensemanager/backend/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, b := New(), New()

	_, err := a.GetOrCreateAccount(ctx, "only-in-a")
	require.NoError(t, err)

	found, err := b.GetAccountByName(ctx, "only-in-a")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	acc, err := s.GetOrCreateAccount(ctx, "icici")
	require.NoError(t, err)
	acc.Name = "MUTATED"

	stored, err := s.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "ICICI", stored.Name)

	p, err := s.GetOrCreatePeriod(ctx, models.March, 2025)
	require.NoError(t, err)
	all, err := s.GetAllPeriods(ctx)
	require.NoError(t, err)
	all[0].Year = 1999

	again, err := s.GetPeriodByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2025, again.Year)
}

func TestDeleteKeepsRemainingOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		acc, err := s.GetOrCreateAccount(ctx, name)
		require.NoError(t, err)
		ids = append(ids, acc.ID)
	}
	require.NoError(t, s.DeleteAccount(ctx, ids[1]))

	all, err := s.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ids[0], all[0].ID)
	assert.Equal(t, ids[2], all[1].ID)
}
