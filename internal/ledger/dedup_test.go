package ledger

import (
	"testing"

	"github.com/mmynk/roomledger/internal/models"
)

func TestItemFromNote(t *testing.T) {
	tests := []struct {
		note   string
		want   string
		wantOK bool
	}{
		{"Item: Rice", "Rice", true},
		{"item:rice", "rice", true},
		{"ITEM:  Basmati Rice - for the party", "Basmati Rice", true},
		{"Bought Item: Soap-bar", "Soap", true},
		{"Rice from the shop", "", false},
		{"Item:", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			got, ok := ItemFromNote(tt.note)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ItemFromNote(%q) = (%q, %v), want (%q, %v)", tt.note, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsDuplicate(t *testing.T) {
	rice := models.SharedPurchase{
		ID:                "p-rice",
		ItemName:          "Rice",
		Amount:            d("120"),
		BuyerName:         "A",
		PayerName:         "A",
		SplitParticipants: []string{"A", "B"},
	}
	milk := models.SharedPurchase{
		ID:        "p-milk",
		ItemName:  "Milk",
		Amount:    d("40"),
		BuyerName: "A",
		PayerName: "A",
	}
	split := SplitPurchaseKeys([]models.SharedPurchase{rice, milk})
	all := AllPurchaseKeys([]models.SharedPurchase{rice, milk})

	tests := []struct {
		name      string
		expense   models.Expense
		wantSplit bool
		wantAll   bool
	}{
		{
			name:      "note matches split purchase",
			expense:   models.Expense{PayerName: "A", Amount: d("120.00"), Note: "Item: Rice", Category: models.CategoryGrocery},
			wantSplit: true,
			wantAll:   true,
		},
		{
			name:      "note match is case-insensitive and ignores suffix",
			expense:   models.Expense{PayerName: "A", Amount: d("120"), Note: "item: RICE - monthly", Category: models.CategoryOther},
			wantSplit: true,
			wantAll:   true,
		},
		{
			name:    "different amount",
			expense: models.Expense{PayerName: "A", Amount: d("119.99"), Note: "Item: Rice", Category: models.CategoryOther},
		},
		{
			name:    "different payer",
			expense: models.Expense{PayerName: "B", Amount: d("120"), Note: "Item: Rice", Category: models.CategoryOther},
		},
		{
			name:    "no item note",
			expense: models.Expense{PayerName: "A", Amount: d("120"), Note: "Rice", Category: models.CategoryOther},
		},
		{
			name:      "linked by purchase id",
			expense:   models.Expense{PayerName: "A", Amount: d("1"), Note: "unrelated", PurchaseID: "p-rice", Category: models.CategoryOther},
			wantSplit: true,
			wantAll:   true,
		},
		{
			name:    "linked id wins over matching note",
			expense: models.Expense{PayerName: "A", Amount: d("120"), Note: "Item: Rice", PurchaseID: "p-gone", Category: models.CategoryOther},
		},
		{
			name:    "mirror of no-split purchase only shadows for display",
			expense: models.Expense{PayerName: "A", Amount: d("40"), Note: "Item: Milk", Category: models.CategoryOther},
			wantAll: true,
		},
		{
			name:    "settlement never duplicates",
			expense: models.Expense{PayerName: "A", RecipientName: "B", Amount: d("120"), Note: "Item: Rice", Category: models.CategorySettlement},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicate(tt.expense, split); got != tt.wantSplit {
				t.Errorf("IsDuplicate(split keys) = %v, want %v", got, tt.wantSplit)
			}
			if got := IsDuplicate(tt.expense, all); got != tt.wantAll {
				t.Errorf("IsDuplicate(all keys) = %v, want %v", got, tt.wantAll)
			}
		})
	}
}

func TestSettlementRecipient(t *testing.T) {
	e := models.Expense{PayerName: "B", Category: models.CategorySettlement, Note: "Settlement payment to A "}
	if got := settlementRecipient(e); got != "A" {
		t.Errorf("settlementRecipient = %q, want %q", got, "A")
	}
	e.RecipientName = "C"
	if got := settlementRecipient(e); got != "C" {
		t.Errorf("settlementRecipient = %q, want explicit recipient %q", got, "C")
	}
}
