package models

import "strings"

// Account represents a named money-holding account (e.g. a bank account).
// Name is always stored upper-cased.
type Account struct {
	ID   string `json:"id" db:"id" example:"5f0c1e9a-8d7b-4f5e-9a51-3c2b1d0e4f6a"`
	Name string `json:"account_name" db:"name" example:"ICICI"`
}

// NormalizeAccountName returns the canonical stored form of an account name.
func NormalizeAccountName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
