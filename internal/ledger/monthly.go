package ledger

import (
	"slices"

	"github.com/mmynk/roomledger/internal/dates"
	"github.com/mmynk/roomledger/internal/models"
)

// Snapshot is the settlement of one calendar month.
type Snapshot struct {
	// MonthKey is "YYYY-MM", or dates.Undated.
	MonthKey     string
	Aggregates   Aggregates
	Instructions []Instruction
}

// MonthlyBreakdown settles each calendar month on its own records, newest
// month first. Months are independent: nothing owed in one month carries
// into the next. Duplicate detection is per month too: an unlinked mirror
// expense only matches purchases of its own month.
func MonthlyBreakdown(expenses []models.Expense, purchases []models.SharedPurchase, participants []models.Participant) []Snapshot {
	byMonth := make(map[string][]Entry)
	for _, entry := range Entries(expenses, purchases) {
		key := dates.MonthKey(entry.Date())
		byMonth[key] = append(byMonth[key], entry)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, dates.CompareMonthKeys)

	out := make([]Snapshot, 0, len(keys))
	for _, key := range keys {
		exp, pur := Split(byMonth[key])
		agg, instructions := Settle(exp, pur, participants)
		out = append(out, Snapshot{
			MonthKey:     key,
			Aggregates:   agg,
			Instructions: instructions,
		})
	}
	return out
}

// Month returns the snapshot for key, if any.
func Month(snapshots []Snapshot, key string) (Snapshot, bool) {
	for _, s := range snapshots {
		if s.MonthKey == key {
			return s, true
		}
	}
	return Snapshot{}, false
}
