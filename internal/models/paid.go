package models

import "fmt"

// PaidMark records that a settlement instruction was acted on outside the
// ledger. Marks are status only and never change the computed debts.
type PaidMark struct {
	// Key identifies the instruction; see PaidKey.
	Key string

	FromName string
	ToName   string

	// MonthKey scopes the mark to one monthly breakdown. Empty for the
	// all-time settlement.
	MonthKey string

	// CreatedAt is the Unix timestamp when the mark was set.
	CreatedAt int64
}

// PaidKey builds the key of the instruction from -> to in month.
func PaidKey(from, to, month string) string {
	if month == "" {
		month = "all"
	}
	return fmt.Sprintf("%s|%s->%s", month, from, to)
}
