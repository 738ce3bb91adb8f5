// Package seed loads a YAML fixture of accounts and ledger entries into the
// services at startup. Applying the same fixture twice is a no-op.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/services"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Fixture is the seed file layout:
//
//	accounts: [icici, hdfc]
//	entries:
//	  - account: icici
//	    month: September
//	    year: 2025
//	    starting_balance: 1000.00
//	    current_balance: 1200.00
//	    current_credit: 200.00
type Fixture struct {
	Accounts []string `yaml:"accounts"`
	Entries  []Entry  `yaml:"entries"`
}

// Entry keeps balances as their literal text so no precision is lost to floats.
type Entry struct {
	Account         string `yaml:"account"`
	Month           string `yaml:"month"`
	Year            int    `yaml:"year"`
	StartingBalance string `yaml:"starting_balance"`
	CurrentBalance  string `yaml:"current_balance"`
	CurrentCredit   string `yaml:"current_credit"`
}

// Result counts what Apply did.
type Result struct {
	Accounts int
	Entries  int
	Skipped  int
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

func (e Entry) input() (models.EntryInput, error) {
	month, err := models.ParseMonth(e.Month)
	if err != nil {
		return models.EntryInput{}, err
	}
	if e.Year < models.MinYear || e.Year > models.MaxYear {
		return models.EntryInput{}, fmt.Errorf("year %d out of range", e.Year)
	}

	in := models.EntryInput{AccountName: e.Account, Month: month, Year: e.Year}
	for _, b := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"starting_balance", e.StartingBalance, &in.StartingBalance},
		{"current_balance", e.CurrentBalance, &in.CurrentBalance},
		{"current_credit", e.CurrentCredit, &in.CurrentCredit},
	} {
		d, err := decimal.NewFromString(b.raw)
		if err != nil {
			return models.EntryInput{}, fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = d
	}
	return in, nil
}

// Apply creates every listed account, plus the account of every entry, then
// adds the entries. Entries whose account already has that period are skipped.
func Apply(ctx context.Context, accounts *services.AccountService, ledger *services.LedgerService, f *Fixture) (Result, error) {
	var res Result

	names := append([]string(nil), f.Accounts...)
	for _, e := range f.Entries {
		names = append(names, e.Account)
	}
	seen := make(map[string]bool)
	for _, name := range names {
		key := models.NormalizeAccountName(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := accounts.GetOrCreateAccount(ctx, name); err != nil {
			return res, fmt.Errorf("seed account %q: %w", name, err)
		}
		res.Accounts++
	}

	for i, e := range f.Entries {
		in, err := e.input()
		if err != nil {
			return res, fmt.Errorf("seed entry %d: %w", i, err)
		}

		_, err = ledger.AddEntry(ctx, in)
		var taken *services.PeriodAlreadyExistsForAccountError
		switch {
		case errors.As(err, &taken):
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("seed entry %d: %w", i, err)
		default:
			res.Entries++
		}
	}
	return res, nil
}
