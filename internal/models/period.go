package models

import (
	"fmt"
	"strings"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

// Month is a calendar month name, e.g. "September".
type Month string

const (
	January   Month = "January"
	February  Month = "February"
	March     Month = "March"
	April     Month = "April"
	May       Month = "May"
	June      Month = "June"
	July      Month = "July"
	August    Month = "August"
	September Month = "September"
	October   Month = "October"
	November  Month = "November"
	December  Month = "December"
)

// Months lists the months in calendar order.
var Months = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// ParseMonth accepts any casing of a month name and returns its canonical spelling.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for _, m := range Months {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid month %q", s)
}

// Valid reports whether m is one of the twelve canonical month names.
func (m Month) Valid() bool {
	for _, known := range Months {
		if m == known {
			return true
		}
	}
	return false
}

// Period is a month+year bucket for ledger entries.
type Period struct {
	ID    string `json:"id" db:"id" example:"0b8e4c1d-2f6a-4e3b-9c7d-1a2b3c4d5e6f"`
	Month Month  `json:"month" db:"month" example:"September"`
	Year  int    `json:"year" db:"year" example:"2025"`
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}
