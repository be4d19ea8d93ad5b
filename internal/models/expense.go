package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category classifies an Expense.
type Category string

const (
	CategoryGrocery     Category = "Grocery"
	CategoryMart        Category = "Mart"
	CategoryVegetable   Category = "Vegetable"
	CategoryRent        Category = "Rent"
	CategoryElectricity Category = "Electricity"
	CategorySettlement  Category = "Settlement"
	CategoryOther       Category = "Other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryGrocery,
	CategoryMart,
	CategoryVegetable,
	CategoryRent,
	CategoryElectricity,
	CategorySettlement,
	CategoryOther,
}

// ParseCategory returns the Category named by s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Expense is money paid by one participant. Unless it is a settlement, the
// amount is divided evenly across all participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// PayerName is the participant who paid.
	PayerName string

	// RecipientName is the participant receiving a settlement payment.
	// Empty for ordinary expenses.
	RecipientName string

	Category Category

	// Date is the textual date as entered. See package dates for the
	// accepted encodings.
	Date string

	Amount decimal.Decimal

	// PaymentMode is how the money moved (cash, UPI, card...). Free text.
	PaymentMode string

	Note string

	// PurchaseID links an auto-generated expense to the SharedPurchase it
	// mirrors. Empty for expenses entered directly.
	PurchaseID string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// IsSettlement reports whether the expense is a direct payment between two
// participants rather than a shared cost.
func (e Expense) IsSettlement() bool {
	return e.Category == CategorySettlement
}
