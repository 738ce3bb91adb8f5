package models

import "github.com/shopspring/decimal"

// DerivedBalances are computed from an entry's raw balances on every read.
type DerivedBalances struct {
	BalanceAfterCredit decimal.Decimal `json:"balance_after_credit"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
}

// CalculateDerived computes:
//
//	balance_after_credit = current - credit
//	total_spent          = (starting - current) + credit
func CalculateDerived(starting, current, credit decimal.Decimal) DerivedBalances {
	return DerivedBalances{
		BalanceAfterCredit: current.Sub(credit),
		TotalSpent:         starting.Sub(current).Add(credit),
	}
}
