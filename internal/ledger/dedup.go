package ledger

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

var (
	itemNoteRE       = regexp.MustCompile(`(?i)Item:\s*(.+?)(?:\s*-|$)`)
	settlementNoteRE = regexp.MustCompile(`Settlement payment to (.+)`)
)

// PurchaseKeys identifies the shared purchases an expense may shadow, by
// id and by payer|amount|item key.
type PurchaseKeys struct {
	ids  map[string]struct{}
	keys map[string]struct{}
}

// SplitPurchaseKeys indexes only purchases that carry a split set. Those are
// settled through item debts, so an expense mirroring one must stay out of
// the equal-split pool. Mirrors of no-split purchases are ordinary expenses.
func SplitPurchaseKeys(purchases []models.SharedPurchase) PurchaseKeys {
	return newPurchaseKeys(purchases, models.SharedPurchase.HasSplit)
}

// AllPurchaseKeys indexes every purchase. Used for display totals, where a
// purchase and its mirror must count once.
func AllPurchaseKeys(purchases []models.SharedPurchase) PurchaseKeys {
	return newPurchaseKeys(purchases, func(models.SharedPurchase) bool { return true })
}

func newPurchaseKeys(purchases []models.SharedPurchase, include func(models.SharedPurchase) bool) PurchaseKeys {
	k := PurchaseKeys{
		ids:  make(map[string]struct{}),
		keys: make(map[string]struct{}),
	}
	for _, p := range purchases {
		if !include(p) {
			continue
		}
		if p.ID != "" {
			k.ids[p.ID] = struct{}{}
		}
		k.keys[PurchaseKey(p.PayerName, p.Amount, p.ItemName)] = struct{}{}
	}
	return k
}

// PurchaseKey is the payer|amount|item key used to match an expense note
// against a purchase.
func PurchaseKey(payer string, amount decimal.Decimal, item string) string {
	return payer + "|" + amount.StringFixed(2) + "|" + strings.ToLower(strings.TrimSpace(item))
}

// ItemFromNote extracts the item name from an "Item: <name> - ..." note.
func ItemFromNote(note string) (string, bool) {
	m := itemNoteRE.FindStringSubmatch(note)
	if m == nil {
		return "", false
	}
	item := strings.TrimSpace(m[1])
	return item, item != ""
}

// IsDuplicate reports whether e shadows a purchase in keys. An expense
// linked by PurchaseID is matched on the id alone; unlinked expenses fall
// back to the note pattern.
func IsDuplicate(e models.Expense, keys PurchaseKeys) bool {
	if e.IsSettlement() {
		return false
	}
	if e.PurchaseID != "" {
		_, ok := keys.ids[e.PurchaseID]
		return ok
	}
	item, ok := ItemFromNote(e.Note)
	if !ok {
		return false
	}
	_, ok = keys.keys[PurchaseKey(e.PayerName, e.Amount, item)]
	return ok
}

// settlementRecipient returns who received a settlement payment, recovering
// it from the note for older records without a recipient.
func settlementRecipient(e models.Expense) string {
	if e.RecipientName != "" {
		return e.RecipientName
	}
	m := settlementNoteRE.FindStringSubmatch(e.Note)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
