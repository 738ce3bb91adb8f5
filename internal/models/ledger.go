package models

import (
	"github.com/shopspring/decimal"
)

// LedgerEntry is the stored balance record of one account in one period.
// (AccountID, PeriodID) is unique across entries.
type LedgerEntry struct {
	ID              string          `json:"id" db:"id"`
	AccountID       string          `json:"account_id" db:"account_id"`
	PeriodID        string          `json:"period_id" db:"period_id"`
	StartingBalance decimal.Decimal `json:"starting_balance" db:"starting_balance"`
	CurrentBalance  decimal.Decimal `json:"current_balance" db:"current_balance"`
	CurrentCredit   decimal.Decimal `json:"current_credit" db:"current_credit"`
}

// EntryValues is the full replacement payload of an entry, used for add and edit.
type EntryValues struct {
	AccountID       string
	PeriodID        string
	StartingBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	CurrentCredit   decimal.Decimal
}

// Values returns the replaceable fields of e.
func (e LedgerEntry) Values() EntryValues {
	return EntryValues{
		AccountID:       e.AccountID,
		PeriodID:        e.PeriodID,
		StartingBalance: e.StartingBalance,
		CurrentBalance:  e.CurrentBalance,
		CurrentCredit:   e.CurrentCredit,
	}
}

// View attaches the derived balances to e.
func (e LedgerEntry) View() LedgerEntryView {
	return LedgerEntryView{
		LedgerEntry:     e,
		DerivedBalances: CalculateDerived(e.StartingBalance, e.CurrentBalance, e.CurrentCredit),
	}
}

// LedgerEntryView is a ledger entry plus its derived balances. Never persisted.
type LedgerEntryView struct {
	LedgerEntry
	DerivedBalances
}

// Flatten replaces the entry's foreign references with the resolved account and period.
func (v LedgerEntryView) Flatten(account Account, period Period) FlattenedEntry {
	return FlattenedEntry{
		ID:                 v.ID,
		AccountName:        account.Name,
		Month:              period.Month,
		Year:               period.Year,
		StartingBalance:    v.StartingBalance,
		CurrentBalance:     v.CurrentBalance,
		CurrentCredit:      v.CurrentCredit,
		BalanceAfterCredit: v.BalanceAfterCredit,
		TotalSpent:         v.TotalSpent,
	}
}

// FlattenedEntry is the presentation form of a ledger entry: account name and
// period spelled out instead of internal identifiers.
type FlattenedEntry struct {
	ID                 string          `json:"id"`
	AccountName        string          `json:"account_name" example:"ICICI"`
	Month              Month           `json:"month" example:"September"`
	Year               int             `json:"year" example:"2025"`
	StartingBalance    decimal.Decimal `json:"starting_balance" swaggertype:"string" example:"1000.00"`
	CurrentBalance     decimal.Decimal `json:"current_balance" swaggertype:"string" example:"1200.00"`
	CurrentCredit      decimal.Decimal `json:"current_credit" swaggertype:"string" example:"200.00"`
	BalanceAfterCredit decimal.Decimal `json:"balance_after_credit" swaggertype:"string" example:"1000.00"`
	TotalSpent         decimal.Decimal `json:"total_spent" swaggertype:"string" example:"0.00"`
}

// EntryInput is what callers supply to add or edit an entry.
type EntryInput struct {
	AccountName     string
	Month           Month
	Year            int
	StartingBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	CurrentCredit   decimal.Decimal
}
