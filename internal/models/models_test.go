package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDerived(t *testing.T) {
	cases := []struct {
		name                     string
		starting, current, credit string
		afterCredit, totalSpent  string
	}{
		{"spent with credit", "1000.0", "1200.0", "200.0", "1000", "0"},
		{"plain spending", "5000", "3200.50", "0", "3200.5", "1799.5"},
		{"credit exceeds balance", "100", "50", "75.25", "-25.25", "125.25"},
		{"fine precision", "0.1", "0.2", "0.3", "-0.1", "0.2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateDerived(
				decimal.RequireFromString(tc.starting),
				decimal.RequireFromString(tc.current),
				decimal.RequireFromString(tc.credit),
			)
			assert.True(t, got.BalanceAfterCredit.Equal(decimal.RequireFromString(tc.afterCredit)),
				"balance_after_credit = %s", got.BalanceAfterCredit)
			assert.True(t, got.TotalSpent.Equal(decimal.RequireFromString(tc.totalSpent)),
				"total_spent = %s", got.TotalSpent)
		})
	}
}

func TestLedgerEntry_ViewAndFlatten(t *testing.T) {
	entry := LedgerEntry{
		ID:              "entry-1",
		AccountID:       "acc-1",
		PeriodID:        "per-1",
		StartingBalance: decimal.RequireFromString("1000.0"),
		CurrentBalance:  decimal.RequireFromString("1200.0"),
		CurrentCredit:   decimal.RequireFromString("200.0"),
	}

	flat := entry.View().Flatten(
		Account{ID: "acc-1", Name: "ICICI"},
		Period{ID: "per-1", Month: September, Year: 2025},
	)

	assert.Equal(t, "entry-1", flat.ID)
	assert.Equal(t, "ICICI", flat.AccountName)
	assert.Equal(t, September, flat.Month)
	assert.Equal(t, 2025, flat.Year)
	assert.True(t, flat.BalanceAfterCredit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, flat.TotalSpent.Equal(decimal.NewFromInt(0)))
}

func TestParseMonth(t *testing.T) {
	t.Run("any casing", func(t *testing.T) {
		m, err := ParseMonth("  sePTember ")
		assert.NoError(t, err)
		assert.Equal(t, September, m)
	})

	t.Run("unknown month", func(t *testing.T) {
		_, err := ParseMonth("Smarch")
		assert.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		assert.True(t, October.Valid())
		assert.False(t, Month("october").Valid())
		assert.Len(t, Months, 12)
	})
}

func TestNormalizeAccountName(t *testing.T) {
	assert.Equal(t, "ICICI", NormalizeAccountName("icici"))
	assert.Equal(t, "HDFC BANK", NormalizeAccountName("  Hdfc Bank "))
}

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "September 2025", Period{Month: September, Year: 2025}.String())
}
