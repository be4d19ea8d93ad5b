package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

// Pair is an ordered (from, to) pair of participant names.
type Pair struct {
	From string
	To   string
}

// Aggregates are the per-participant and pairwise totals the debt matrix is
// computed from. Maps are keyed by participant name; missing keys read as
// zero.
type Aggregates struct {
	// Participants are the known participant names in input order.
	Participants []string

	// Ghosts are names found on records but not among Participants,
	// sorted.
	Ghosts []string

	// EqualShare is what each participant paid into the equal-split pool.
	EqualShare map[string]decimal.Decimal

	// DisplaySpend is everything each participant paid out of pocket,
	// settlements excluded. Reporting only.
	DisplaySpend map[string]decimal.Decimal

	// DirectPayments are cumulative settlement payments from -> to.
	DirectPayments map[Pair]decimal.Decimal

	// ItemDebts are cumulative shared-purchase debts debtor -> creditor.
	ItemDebts map[Pair]decimal.Decimal
}

// N is the divisor of the equal-split pool. It is never zero.
func (a Aggregates) N() int {
	return max(1, len(a.Participants))
}

// Names returns the matrix axis: participants followed by ghosts.
func (a Aggregates) Names() []string {
	names := make([]string, 0, len(a.Participants)+len(a.Ghosts))
	names = append(names, a.Participants...)
	return append(names, a.Ghosts...)
}

// Aggregate reduces expenses and purchases into Aggregates.
//
// Algorithm:
//   - Settlement expenses add to DirectPayments[payer->recipient]
//   - Other expenses add to DisplaySpend[payer] unless they mirror a purchase,
//     and to EqualShare[payer] unless they mirror a split purchase
//   - Purchases add to DisplaySpend[payer]
//   - Split purchases add the per-person share to ItemDebts[member->payer]
//     for every member other than the payer; no-split purchases add the
//     full amount to ItemDebts[buyer->payer] when buyer and payer differ
func Aggregate(expenses []models.Expense, purchases []models.SharedPurchase, participants []models.Participant) Aggregates {
	agg := Aggregates{
		Participants:   models.Names(participants),
		EqualShare:     make(map[string]decimal.Decimal),
		DisplaySpend:   make(map[string]decimal.Decimal),
		DirectPayments: make(map[Pair]decimal.Decimal),
		ItemDebts:      make(map[Pair]decimal.Decimal),
	}
	for _, name := range agg.Participants {
		agg.EqualShare[name] = decimal.Zero
		agg.DisplaySpend[name] = decimal.Zero
	}

	splitKeys := SplitPurchaseKeys(purchases)
	allKeys := AllPurchaseKeys(purchases)
	seen := make(map[string]bool)
	note := func(names ...string) {
		for _, n := range names {
			seen[n] = true
		}
	}

	for _, entry := range Entries(expenses, purchases) {
		switch entry.Kind() {
		case KindSettlement:
			e, _ := entry.Expense()
			to := settlementRecipient(e)
			if to == "" || to == e.PayerName {
				continue
			}
			note(e.PayerName, to)
			addPair(agg.DirectPayments, Pair{From: e.PayerName, To: to}, e.Amount)

		case KindExpense:
			e, _ := entry.Expense()
			note(e.PayerName)
			if !IsDuplicate(e, allKeys) {
				add(agg.DisplaySpend, e.PayerName, e.Amount)
			}
			if !IsDuplicate(e, splitKeys) {
				add(agg.EqualShare, e.PayerName, e.Amount)
			}

		case KindPurchase:
			p, _ := entry.Purchase()
			note(p.PayerName, p.BuyerName)
			add(agg.DisplaySpend, p.PayerName, p.Amount)
			for _, debt := range purchaseDebts(p) {
				note(debt.From)
				addPair(agg.ItemDebts, Pair{From: debt.From, To: p.PayerName}, debt.Amount)
			}
		}
	}

	known := make(map[string]bool, len(agg.Participants))
	for _, name := range agg.Participants {
		known[name] = true
	}
	for name := range seen {
		if name != "" && !known[name] {
			agg.Ghosts = append(agg.Ghosts, name)
		}
	}
	sort.Strings(agg.Ghosts)

	return agg
}

// purchaseDebt is what one debtor owes the payer of a purchase.
type purchaseDebt struct {
	From   string
	Amount decimal.Decimal
}

// purchaseDebts lists who owes the payer of p and how much.
func purchaseDebts(p models.SharedPurchase) []purchaseDebt {
	if p.HasSplit() {
		share := p.Share()
		var debts []purchaseDebt
		for _, name := range p.Splitters() {
			if name == p.PayerName {
				continue
			}
			debts = append(debts, purchaseDebt{From: name, Amount: share})
		}
		return debts
	}
	if p.BuyerName != "" && p.BuyerName != p.PayerName {
		return []purchaseDebt{{From: p.BuyerName, Amount: p.Amount}}
	}
	return nil
}

func add(m map[string]decimal.Decimal, key string, amount decimal.Decimal) {
	m[key] = m[key].Add(amount)
}

func addPair(m map[Pair]decimal.Decimal, key Pair, amount decimal.Decimal) {
	m[key] = m[key].Add(amount)
}
