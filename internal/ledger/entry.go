package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

// Kind discriminates the records an Entry can hold.
type Kind int

const (
	KindExpense Kind = iota + 1
	KindPurchase
	KindSettlement
)

func (k Kind) String() string {
	switch k {
	case KindExpense:
		return "expense"
	case KindPurchase:
		return "purchase"
	case KindSettlement:
		return "settlement"
	default:
		return "unknown"
	}
}

// Entry is one ledger record of any kind. Downstream code reads it through
// the accessors instead of branching on the record shape.
type Entry struct {
	kind     Kind
	expense  models.Expense
	purchase models.SharedPurchase
}

// FromExpense wraps an expense. Settlement-category expenses become
// KindSettlement entries.
func FromExpense(e models.Expense) Entry {
	kind := KindExpense
	if e.IsSettlement() {
		kind = KindSettlement
	}
	return Entry{kind: kind, expense: e}
}

// FromPurchase wraps a shared purchase.
func FromPurchase(p models.SharedPurchase) Entry {
	return Entry{kind: KindPurchase, purchase: p}
}

// Entries wraps expenses followed by purchases.
func Entries(expenses []models.Expense, purchases []models.SharedPurchase) []Entry {
	out := make([]Entry, 0, len(expenses)+len(purchases))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	for _, p := range purchases {
		out = append(out, FromPurchase(p))
	}
	return out
}

// Split is the inverse of Entries.
func Split(entries []Entry) ([]models.Expense, []models.SharedPurchase) {
	var expenses []models.Expense
	var purchases []models.SharedPurchase
	for _, e := range entries {
		if e.kind == KindPurchase {
			purchases = append(purchases, e.purchase)
		} else {
			expenses = append(expenses, e.expense)
		}
	}
	return expenses, purchases
}

func (e Entry) Kind() Kind { return e.kind }

func (e Entry) IsSettlement() bool { return e.kind == KindSettlement }

// Amount returns the record's amount.
func (e Entry) Amount() decimal.Decimal {
	if e.kind == KindPurchase {
		return e.purchase.Amount
	}
	return e.expense.Amount
}

// Date returns the record's textual date.
func (e Entry) Date() string {
	if e.kind == KindPurchase {
		return e.purchase.Date
	}
	return e.expense.Date
}

// Expense returns the wrapped expense for KindExpense and KindSettlement.
func (e Entry) Expense() (models.Expense, bool) {
	return e.expense, e.kind == KindExpense || e.kind == KindSettlement
}

// Purchase returns the wrapped purchase for KindPurchase.
func (e Entry) Purchase() (models.SharedPurchase, bool) {
	return e.purchase, e.kind == KindPurchase
}
