package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func people(names ...string) []models.Participant {
	out := make([]models.Participant, len(names))
	for i, n := range names {
		out[i] = models.Participant{ID: "id-" + n, Name: n}
	}
	return out
}

func expense(payer string, cat models.Category, amount, date string) models.Expense {
	return models.Expense{PayerName: payer, Category: cat, Amount: d(amount), Date: date}
}

func settlement(from, to, amount, date string) models.Expense {
	return models.Expense{PayerName: from, RecipientName: to, Category: models.CategorySettlement, Amount: d(amount), Date: date}
}

// assertAmount fails when got is further than a cent from want.
func assertAmount(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if got.Sub(d(want)).Abs().GreaterThan(Epsilon) {
		t.Errorf("%s = %s, want %s", label, got.StringFixed(4), want)
	}
}
