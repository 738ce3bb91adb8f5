// Package storagetest holds the behavioural contract every storage.Store
// backend must satisfy. Backends call Run from their own tests.
package storagetest

import (
	"context"
	"sync"
	"testing"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewStore returns an empty store for a single subtest.
type NewStore func(t *testing.T) storage.Store

// Run exercises newStore against the storage contract.
func Run(t *testing.T, newStore NewStore) {
	t.Run("Accounts", func(t *testing.T) { testAccounts(t, newStore) })
	t.Run("Periods", func(t *testing.T) { testPeriods(t, newStore) })
	t.Run("Entries", func(t *testing.T) { testEntries(t, newStore) })
	t.Run("ConcurrentAdd", func(t *testing.T) { testConcurrentAdd(t, newStore) })
}

func open(t *testing.T, newStore NewStore) storage.Store {
	t.Helper()
	s := newStore(t)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testAccounts(t *testing.T, newStore NewStore) {
	ctx := context.Background()

	t.Run("get or create is idempotent across case", func(t *testing.T) {
		s := open(t, newStore)

		first, err := s.GetOrCreateAccount(ctx, "icici")
		require.NoError(t, err)
		assert.Equal(t, "ICICI", first.Name)
		assert.NotEmpty(t, first.ID)

		second, err := s.GetOrCreateAccount(ctx, "ICICI")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		all, err := s.GetAllAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("lookups return nil when absent", func(t *testing.T) {
		s := open(t, newStore)

		byName, err := s.GetAccountByName(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, byName)

		byID, err := s.GetAccountByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, byID)

		all, err := s.GetAllAccounts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("lookup by name normalizes", func(t *testing.T) {
		s := open(t, newStore)

		created, err := s.GetOrCreateAccount(ctx, "Hdfc")
		require.NoError(t, err)

		found, err := s.GetAccountByName(ctx, " hdfc ")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)

		byID, err := s.GetAccountByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "HDFC", byID.Name)
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		s := open(t, newStore)

		for _, name := range []string{"zeta", "alpha", "mid"} {
			_, err := s.GetOrCreateAccount(ctx, name)
			require.NoError(t, err)
		}

		all, err := s.GetAllAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "ZETA", all[0].Name)
		assert.Equal(t, "ALPHA", all[1].Name)
		assert.Equal(t, "MID", all[2].Name)
	})

	t.Run("rename", func(t *testing.T) {
		s := open(t, newStore)

		acc, err := s.GetOrCreateAccount(ctx, "old")
		require.NoError(t, err)
		other, err := s.GetOrCreateAccount(ctx, "taken")
		require.NoError(t, err)

		renamed, err := s.UpdateAccountName(ctx, acc.ID, "new")
		require.NoError(t, err)
		assert.Equal(t, acc.ID, renamed.ID)
		assert.Equal(t, "NEW", renamed.Name)

		same, err := s.UpdateAccountName(ctx, acc.ID, "NEW")
		require.NoError(t, err)
		assert.Equal(t, "NEW", same.Name)

		_, err = s.UpdateAccountName(ctx, acc.ID, "Taken")
		assert.ErrorIs(t, err, storage.ErrDuplicate)

		_, err = s.UpdateAccountName(ctx, "missing", "x")
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)

		unchanged, err := s.GetAccountByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "TAKEN", unchanged.Name)
	})

	t.Run("delete", func(t *testing.T) {
		s := open(t, newStore)

		acc, err := s.GetOrCreateAccount(ctx, "temp")
		require.NoError(t, err)

		require.NoError(t, s.DeleteAccount(ctx, acc.ID))

		gone, err := s.GetAccountByID(ctx, acc.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		assert.ErrorIs(t, s.DeleteAccount(ctx, acc.ID), storage.ErrAccountNotFound)
	})

	t.Run("delete referenced account is rejected", func(t *testing.T) {
		s := open(t, newStore)

		acc, err := s.GetOrCreateAccount(ctx, "busy")
		require.NoError(t, err)
		p, err := s.GetOrCreatePeriod(ctx, models.March, 2025)
		require.NoError(t, err)
		_, err = s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
		require.NoError(t, err)

		assert.ErrorIs(t, s.DeleteAccount(ctx, acc.ID), storage.ErrReferenced)

		still, err := s.GetAccountByID(ctx, acc.ID)
		require.NoError(t, err)
		assert.NotNil(t, still)
	})
}

func testPeriods(t *testing.T, newStore NewStore) {
	ctx := context.Background()

	t.Run("get or create returns the same period", func(t *testing.T) {
		s := open(t, newStore)

		first, err := s.GetOrCreatePeriod(ctx, models.September, 2025)
		require.NoError(t, err)
		assert.Equal(t, models.September, first.Month)
		assert.Equal(t, 2025, first.Year)

		second, err := s.GetOrCreatePeriod(ctx, models.September, 2025)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		other, err := s.GetOrCreatePeriod(ctx, models.September, 2026)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
	})

	t.Run("lookups", func(t *testing.T) {
		s := open(t, newStore)

		missing, err := s.GetPeriodByValue(ctx, models.May, 2030)
		require.NoError(t, err)
		assert.Nil(t, missing)

		missing, err = s.GetPeriodByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, missing)

		p, err := s.GetOrCreatePeriod(ctx, models.May, 2030)
		require.NoError(t, err)

		byValue, err := s.GetPeriodByValue(ctx, models.May, 2030)
		require.NoError(t, err)
		require.NotNil(t, byValue)
		assert.Equal(t, p.ID, byValue.ID)

		byID, err := s.GetPeriodByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "May 2030", byID.String())
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		s := open(t, newStore)

		_, err := s.GetOrCreatePeriod(ctx, models.December, 2024)
		require.NoError(t, err)
		_, err = s.GetOrCreatePeriod(ctx, models.January, 2024)
		require.NoError(t, err)

		all, err := s.GetAllPeriods(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, models.December, all[0].Month)
		assert.Equal(t, models.January, all[1].Month)
	})

	t.Run("update", func(t *testing.T) {
		s := open(t, newStore)

		p, err := s.GetOrCreatePeriod(ctx, models.June, 2025)
		require.NoError(t, err)
		_, err = s.GetOrCreatePeriod(ctx, models.August, 2025)
		require.NoError(t, err)

		updated, err := s.UpdatePeriod(ctx, p.ID, models.July, 2025)
		require.NoError(t, err)
		assert.Equal(t, p.ID, updated.ID)
		assert.Equal(t, models.July, updated.Month)

		_, err = s.UpdatePeriod(ctx, p.ID, models.August, 2025)
		assert.ErrorIs(t, err, storage.ErrDuplicate)

		_, err = s.UpdatePeriod(ctx, "missing", models.July, 2025)
		assert.ErrorIs(t, err, storage.ErrPeriodNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := open(t, newStore)

		p, err := s.GetOrCreatePeriod(ctx, models.April, 2025)
		require.NoError(t, err)
		acc, err := s.GetOrCreateAccount(ctx, "a")
		require.NoError(t, err)
		e, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
		require.NoError(t, err)

		assert.ErrorIs(t, s.DeletePeriod(ctx, p.ID), storage.ErrReferenced)

		require.NoError(t, s.DeleteEntry(ctx, e.ID))
		require.NoError(t, s.DeletePeriod(ctx, p.ID))
		assert.ErrorIs(t, s.DeletePeriod(ctx, p.ID), storage.ErrPeriodNotFound)
	})
}

func testEntries(t *testing.T, newStore NewStore) {
	ctx := context.Background()

	setup := func(t *testing.T) (storage.Store, *models.Account, *models.Period) {
		s := open(t, newStore)
		acc, err := s.GetOrCreateAccount(ctx, "icici")
		require.NoError(t, err)
		p, err := s.GetOrCreatePeriod(ctx, models.September, 2025)
		require.NoError(t, err)
		return s, acc, p
	}

	t.Run("add and read back", func(t *testing.T) {
		s, acc, p := setup(t)

		e, err := s.AddEntry(ctx, models.EntryValues{
			AccountID:       acc.ID,
			PeriodID:        p.ID,
			StartingBalance: dec("1000.00"),
			CurrentBalance:  dec("1200.50"),
			CurrentCredit:   dec("200.25"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)

		got, err := s.GetEntryByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, acc.ID, got.AccountID)
		assert.Equal(t, p.ID, got.PeriodID)
		assert.True(t, got.StartingBalance.Equal(dec("1000")))
		assert.True(t, got.CurrentBalance.Equal(dec("1200.5")))
		assert.True(t, got.CurrentCredit.Equal(dec("200.25")))

		pair, err := s.GetEntryByAccountAndPeriod(ctx, acc.ID, p.ID)
		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.Equal(t, e.ID, pair.ID)
	})

	t.Run("duplicate pair is rejected", func(t *testing.T) {
		s, acc, p := setup(t)

		_, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
		require.NoError(t, err)

		_, err = s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID, StartingBalance: dec("5")})
		assert.ErrorIs(t, err, storage.ErrDuplicate)

		all, err := s.GetAllEntries(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("unknown references are rejected", func(t *testing.T) {
		s, acc, p := setup(t)

		_, err := s.AddEntry(ctx, models.EntryValues{AccountID: "ghost", PeriodID: p.ID})
		assert.ErrorIs(t, err, storage.ErrInvalidReference)

		_, err = s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: "ghost"})
		assert.ErrorIs(t, err, storage.ErrInvalidReference)
	})

	t.Run("misses", func(t *testing.T) {
		s, acc, p := setup(t)

		_, err := s.GetEntryByID(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrEntryNotFound)

		pair, err := s.GetEntryByAccountAndPeriod(ctx, acc.ID, p.ID)
		require.NoError(t, err)
		assert.Nil(t, pair)

		all, err := s.GetAllEntries(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)

		forAccount, err := s.GetEntriesForAccount(ctx, acc.ID)
		require.NoError(t, err)
		assert.NotNil(t, forAccount)
		assert.Empty(t, forAccount)

		assert.ErrorIs(t, s.DeleteEntry(ctx, "missing"), storage.ErrEntryNotFound)

		_, err = s.EditEntry(ctx, "missing", models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
		assert.ErrorIs(t, err, storage.ErrEntryNotFound)
	})

	t.Run("edit replaces values and keeps order", func(t *testing.T) {
		s, acc, sep := setup(t)
		oct, err := s.GetOrCreatePeriod(ctx, models.October, 2025)
		require.NoError(t, err)
		nov, err := s.GetOrCreatePeriod(ctx, models.November, 2025)
		require.NoError(t, err)

		first, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: sep.ID, StartingBalance: dec("1")})
		require.NoError(t, err)
		second, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: nov.ID, StartingBalance: dec("2")})
		require.NoError(t, err)

		edited, err := s.EditEntry(ctx, first.ID, models.EntryValues{
			AccountID:       acc.ID,
			PeriodID:        oct.ID,
			StartingBalance: dec("10"),
			CurrentBalance:  dec("20"),
			CurrentCredit:   dec("30"),
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, edited.ID)
		assert.Equal(t, oct.ID, edited.PeriodID)
		assert.True(t, edited.CurrentCredit.Equal(dec("30")))

		all, err := s.GetAllEntries(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)

		freed, err := s.GetEntryByAccountAndPeriod(ctx, acc.ID, sep.ID)
		require.NoError(t, err)
		assert.Nil(t, freed)

		_, err = s.EditEntry(ctx, first.ID, models.EntryValues{AccountID: acc.ID, PeriodID: nov.ID})
		assert.ErrorIs(t, err, storage.ErrDuplicate)

		_, err = s.EditEntry(ctx, first.ID, models.EntryValues{AccountID: "ghost", PeriodID: oct.ID})
		assert.ErrorIs(t, err, storage.ErrInvalidReference)

		self, err := s.EditEntry(ctx, first.ID, models.EntryValues{AccountID: acc.ID, PeriodID: oct.ID, StartingBalance: dec("11")})
		require.NoError(t, err)
		assert.True(t, self.StartingBalance.Equal(dec("11")))
	})

	t.Run("entries for account", func(t *testing.T) {
		s, acc, sep := setup(t)
		other, err := s.GetOrCreateAccount(ctx, "hdfc")
		require.NoError(t, err)
		oct, err := s.GetOrCreatePeriod(ctx, models.October, 2025)
		require.NoError(t, err)

		a1, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: sep.ID})
		require.NoError(t, err)
		_, err = s.AddEntry(ctx, models.EntryValues{AccountID: other.ID, PeriodID: sep.ID})
		require.NoError(t, err)
		a2, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: oct.ID})
		require.NoError(t, err)

		entries, err := s.GetEntriesForAccount(ctx, acc.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, a1.ID, entries[0].ID)
		assert.Equal(t, a2.ID, entries[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		s, acc, p := setup(t)

		e, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
		require.NoError(t, err)

		require.NoError(t, s.DeleteEntry(ctx, e.ID))
		assert.ErrorIs(t, s.DeleteEntry(ctx, e.ID), storage.ErrEntryNotFound)

		_, err = s.GetEntryByID(ctx, e.ID)
		assert.ErrorIs(t, err, storage.ErrEntryNotFound)

		again, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
		require.NoError(t, err)
		assert.NotEqual(t, e.ID, again.ID)
	})
}

func testConcurrentAdd(t *testing.T, newStore NewStore) {
	ctx := context.Background()
	s := open(t, newStore)

	acc, err := s.GetOrCreateAccount(ctx, "race")
	require.NoError(t, err)
	p, err := s.GetOrCreatePeriod(ctx, models.January, 2025)
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddEntry(ctx, models.EntryValues{AccountID: acc.ID, PeriodID: p.ID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, storage.ErrDuplicate):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, dupes)
}
