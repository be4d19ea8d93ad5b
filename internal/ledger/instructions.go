package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

// DetailKind says what a provenance line accounts for.
type DetailKind string

const (
	// DetailCategoryShare is the debtor's share of what the creditor paid
	// in one category.
	DetailCategoryShare DetailKind = "category_share"
	// DetailCategoryOffset is the creditor's share of what the debtor paid
	// in one category. Negative.
	DetailCategoryOffset DetailKind = "category_offset"
	// DetailPurchase is the debtor's share of a purchase the creditor paid.
	DetailPurchase DetailKind = "purchase"
	// DetailPurchaseOffset is the creditor's share of a purchase the debtor
	// paid. Negative.
	DetailPurchaseOffset DetailKind = "purchase_offset"
	// DetailSettlementPaid is a payment the debtor already made to the
	// creditor. Negative.
	DetailSettlementPaid DetailKind = "settlement_paid"
	// DetailSettlementReceived is a payment the creditor made to the debtor.
	DetailSettlementReceived DetailKind = "settlement_received"
)

// Detail is one provenance line of an Instruction.
type Detail struct {
	Kind DetailKind

	// Label is the category, item name or settlement date.
	Label string

	// Category is set for category lines.
	Category models.Category

	// RecordID is the purchase or settlement expense the line comes from.
	RecordID string

	Amount decimal.Decimal
}

// Instruction tells From to pay To. Details sum to Amount.
type Instruction struct {
	From    string
	To      string
	Amount  decimal.Decimal
	Details []Detail
}

// Instructions emits one instruction for every ordered pair whose debt
// exceeds Epsilon, in matrix order. The mirrored negative pair is implied
// and never emitted.
//
// Details are rebuilt from the records rather than from agg so they can be
// checked against the debt: they must add up to the amount.
func Instructions(agg Aggregates, expenses []models.Expense, purchases []models.SharedPurchase, participants []models.Participant) []Instruction {
	prov := newProvenance(expenses, purchases, max(1, len(participants)))
	matrix := NewMatrix(agg)

	var out []Instruction
	for _, i := range matrix.Names {
		for _, j := range matrix.Names {
			if i == j {
				continue
			}
			amount := matrix.Debt(i, j)
			if amount.LessThanOrEqual(Epsilon) {
				continue
			}
			out = append(out, Instruction{
				From:    i,
				To:      j,
				Amount:  amount,
				Details: prov.details(i, j),
			})
		}
	}
	return out
}

// Settle runs the whole pipeline over one set of records.
func Settle(expenses []models.Expense, purchases []models.SharedPurchase, participants []models.Participant) (Aggregates, []Instruction) {
	agg := Aggregate(expenses, purchases, participants)
	return agg, Instructions(agg, expenses, purchases, participants)
}

// SumDetails adds up the amounts of details.
func SumDetails(details []Detail) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range details {
		sum = sum.Add(d.Amount)
	}
	return sum
}

type provenance struct {
	n           decimal.Decimal
	byCategory  map[string]map[models.Category]decimal.Decimal
	purchases   []models.SharedPurchase
	settlements []models.Expense
}

func newProvenance(expenses []models.Expense, purchases []models.SharedPurchase, n int) provenance {
	p := provenance{
		n:          decimal.NewFromInt(int64(n)),
		byCategory: make(map[string]map[models.Category]decimal.Decimal),
		purchases:  purchases,
	}
	splitKeys := SplitPurchaseKeys(purchases)
	for _, e := range expenses {
		if e.IsSettlement() {
			p.settlements = append(p.settlements, e)
			continue
		}
		if IsDuplicate(e, splitKeys) {
			continue
		}
		cats, ok := p.byCategory[e.PayerName]
		if !ok {
			cats = make(map[models.Category]decimal.Decimal)
			p.byCategory[e.PayerName] = cats
		}
		cats[e.Category] = cats[e.Category].Add(e.Amount)
	}
	return p
}

// details explains debt(debtor, creditor).
func (p provenance) details(debtor, creditor string) []Detail {
	var out []Detail
	for _, cat := range orderedCategories(p.byCategory[creditor]) {
		out = append(out, Detail{
			Kind:     DetailCategoryShare,
			Label:    string(cat),
			Category: cat,
			Amount:   p.byCategory[creditor][cat].Div(p.n),
		})
	}
	for _, cat := range orderedCategories(p.byCategory[debtor]) {
		out = append(out, Detail{
			Kind:     DetailCategoryOffset,
			Label:    string(cat),
			Category: cat,
			Amount:   p.byCategory[debtor][cat].Div(p.n).Neg(),
		})
	}
	for _, pur := range p.purchases {
		for _, debt := range purchaseDebts(pur) {
			switch {
			case pur.PayerName == creditor && debt.From == debtor:
				out = append(out, Detail{Kind: DetailPurchase, Label: pur.ItemName, RecordID: pur.ID, Amount: debt.Amount})
			case pur.PayerName == debtor && debt.From == creditor:
				out = append(out, Detail{Kind: DetailPurchaseOffset, Label: pur.ItemName, RecordID: pur.ID, Amount: debt.Amount.Neg()})
			}
		}
	}
	for _, s := range p.settlements {
		to := settlementRecipient(s)
		switch {
		case s.PayerName == debtor && to == creditor:
			out = append(out, Detail{Kind: DetailSettlementPaid, Label: s.Date, RecordID: s.ID, Amount: s.Amount.Neg()})
		case s.PayerName == creditor && to == debtor:
			out = append(out, Detail{Kind: DetailSettlementReceived, Label: s.Date, RecordID: s.ID, Amount: s.Amount})
		}
	}
	return out
}

// orderedCategories returns the non-zero categories of m, known categories
// first in their declared order.
func orderedCategories(m map[models.Category]decimal.Decimal) []models.Category {
	var out []models.Category
	known := make(map[models.Category]bool, len(models.Categories))
	for _, c := range models.Categories {
		known[c] = true
		if v, ok := m[c]; ok && !v.IsZero() {
			out = append(out, c)
		}
	}
	var extra []models.Category
	for c, v := range m {
		if !known[c] && !v.IsZero() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(a, b int) bool { return extra[a] < extra[b] })
	return append(out, extra...)
}
