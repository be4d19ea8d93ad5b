package models

import "github.com/shopspring/decimal"

// FixedCost is a recurring household cost (rent, internet, maid...) kept
// for reference. Fixed costs do not enter the settlement until someone
// records the actual payment as an Expense.
type FixedCost struct {
	// ID is the unique identifier for the fixed cost (UUID format).
	ID string

	Name     string
	Amount   decimal.Decimal
	Category Category

	// CreatedAt is the Unix timestamp when the fixed cost was added.
	CreatedAt int64
}
