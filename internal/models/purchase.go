package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SharedPurchase is an item bought on behalf of some participants.
//
// With SplitParticipants set, everyone in the set except the payer owes the
// payer PerPersonAmount. Without it, the buyer owes the payer the whole
// amount when the two differ.
type SharedPurchase struct {
	// ID is the unique identifier for the purchase (UUID format).
	ID string

	ItemName string
	Amount   decimal.Decimal

	// BuyerName is who picked the item up; PayerName is whose money paid
	// for it. They may be the same participant.
	BuyerName string
	PayerName string

	Date        string
	PaymentMode string
	Note        string

	// SplitParticipants is the subset sharing the cost. Nil means the
	// purchase is a direct buyer-to-payer debt.
	SplitParticipants []string

	// PerPersonAmount overrides Amount / len(distinct SplitParticipants).
	PerPersonAmount decimal.NullDecimal

	// CreatedAt is the Unix timestamp when the purchase was recorded.
	CreatedAt int64
}

// Splitters returns the distinct split participants in their original order.
func (p SharedPurchase) Splitters() []string {
	if len(p.SplitParticipants) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(p.SplitParticipants))
	out := make([]string, 0, len(p.SplitParticipants))
	for _, name := range p.SplitParticipants {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// HasSplit reports whether the purchase is divided among a named subset.
func (p SharedPurchase) HasSplit() bool {
	return len(p.SplitParticipants) > 0
}

// Share returns what each split participant owes for the purchase.
func (p SharedPurchase) Share() decimal.Decimal {
	if p.PerPersonAmount.Valid {
		return p.PerPersonAmount.Decimal
	}
	splitters := p.Splitters()
	if len(splitters) == 0 {
		return p.Amount
	}
	return p.Amount.Div(decimal.NewFromInt(int64(len(splitters))))
}

// Mirror returns the Expense recorded alongside a purchase the payer picked
// up themselves. The second result is false when no mirror is needed.
func (p SharedPurchase) Mirror() (Expense, bool) {
	if p.BuyerName != p.PayerName {
		return Expense{}, false
	}
	note := fmt.Sprintf("Item: %s", p.ItemName)
	if p.Note != "" {
		note = fmt.Sprintf("%s - %s", note, p.Note)
	}
	return Expense{
		PayerName:   p.PayerName,
		Category:    CategoryOther,
		Date:        p.Date,
		Amount:      p.Amount,
		PaymentMode: p.PaymentMode,
		Note:        note,
		PurchaseID:  p.ID,
	}, true
}
