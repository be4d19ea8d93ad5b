package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

func TestInstructions_EqualSplit(t *testing.T) {
	participants := people("A", "B")
	expenses := []models.Expense{expense("A", models.CategoryGrocery, "100", "2024-03-01")}

	_, instructions := Settle(expenses, nil, participants)

	if len(instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d: %+v", len(instructions), instructions)
	}
	in := instructions[0]
	if in.From != "B" || in.To != "A" {
		t.Errorf("instruction %s -> %s, want B -> A", in.From, in.To)
	}
	assertAmount(t, "amount", in.Amount, "50")
	if len(in.Details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(in.Details))
	}
	if in.Details[0].Kind != DetailCategoryShare || in.Details[0].Category != models.CategoryGrocery {
		t.Errorf("detail = %+v, want grocery category share", in.Details[0])
	}
}

func TestInstructions_SettledDebtIsSuppressed(t *testing.T) {
	participants := people("A", "B")
	expenses := []models.Expense{
		expense("A", models.CategoryGrocery, "100", "2024-03-01"),
		settlement("B", "A", "49.995", "2024-03-02"),
	}
	_, instructions := Settle(expenses, nil, participants)
	if len(instructions) != 0 {
		t.Errorf("expected near-zero debt to be suppressed, got %+v", instructions)
	}
}

func TestInstructions_PurchaseProvenance(t *testing.T) {
	participants := people("A", "B", "C")
	purchases := []models.SharedPurchase{
		{ID: "soap", ItemName: "Soap", Amount: d("60"), BuyerName: "B", PayerName: "A", SplitParticipants: []string{"A", "B", "C"}},
		{ID: "milk", ItemName: "Milk", Amount: d("40"), BuyerName: "B", PayerName: "A"},
		{ID: "eggs", ItemName: "Eggs", Amount: d("12"), BuyerName: "A", PayerName: "B", SplitParticipants: []string{"A", "B"}},
	}

	_, instructions := Settle(nil, purchases, participants)

	var bToA *Instruction
	for i := range instructions {
		if instructions[i].From == "B" && instructions[i].To == "A" {
			bToA = &instructions[i]
		}
		if instructions[i].From == "A" && instructions[i].To == "B" {
			t.Error("mirror direction A -> B must not be emitted")
		}
	}
	if bToA == nil {
		t.Fatalf("expected instruction B -> A, got %+v", instructions)
	}
	assertAmount(t, "B->A", bToA.Amount, "54")

	want := map[string]string{"soap": "20", "milk": "40", "eggs": "-6"}
	if len(bToA.Details) != len(want) {
		t.Fatalf("expected %d details, got %+v", len(want), bToA.Details)
	}
	for _, detail := range bToA.Details {
		amount, ok := want[detail.RecordID]
		if !ok {
			t.Errorf("unexpected detail %+v", detail)
			continue
		}
		assertAmount(t, "detail "+detail.Label, detail.Amount, amount)
	}
}

func TestInstructions_DetailsReconcile(t *testing.T) {
	expenses, purchases, participants := mixedDataset()
	agg, instructions := Settle(expenses, purchases, participants)

	if len(instructions) == 0 {
		t.Fatal("expected instructions for the mixed dataset")
	}

	seen := make(map[Pair]bool)
	for _, in := range instructions {
		if !in.Amount.GreaterThan(Epsilon) {
			t.Errorf("%s -> %s emitted with non-positive amount %s", in.From, in.To, in.Amount)
		}
		if seen[Pair{From: in.To, To: in.From}] {
			t.Errorf("both directions emitted for %s and %s", in.From, in.To)
		}
		seen[Pair{From: in.From, To: in.To}] = true

		if diff := SumDetails(in.Details).Sub(in.Amount).Abs(); diff.GreaterThan(Epsilon) {
			t.Errorf("%s -> %s: details sum to %s, amount %s", in.From, in.To, SumDetails(in.Details), in.Amount)
		}
		assertAmount(t, in.From+"->"+in.To, in.Amount, Debt(in.From, in.To, agg).String())
	}

	// Zero-sum: every emitted debt plus its implied mirror cancels, and
	// together they account for the whole matrix.
	m := NewMatrix(agg)
	emitted := decimal.Zero
	for _, in := range instructions {
		emitted = emitted.Add(in.Amount).Add(m.Debt(in.To, in.From))
	}
	if emitted.Abs().GreaterThan(Epsilon) {
		t.Errorf("instructions with mirrors sum to %s, want 0", emitted)
	}
	positive := decimal.Zero
	for _, i := range m.Names {
		for _, j := range m.Names {
			if v := m.Debt(i, j); v.GreaterThan(Epsilon) {
				positive = positive.Add(v)
			}
		}
	}
	total := decimal.Zero
	for _, in := range instructions {
		total = total.Add(in.Amount)
	}
	if !total.Equal(positive) {
		t.Errorf("instructions total %s, positive matrix cells total %s", total, positive)
	}
}

func TestInstructions_SettlementProvenance(t *testing.T) {
	participants := people("A", "B")
	expenses := []models.Expense{
		expense("A", models.CategoryRent, "1000", "2024-03-01"),
		expense("B", models.CategoryElectricity, "200", "2024-03-03"),
		{ID: "s1", PayerName: "B", RecipientName: "A", Category: models.CategorySettlement, Amount: d("100"), Date: "2024-03-10"},
		{ID: "s2", PayerName: "A", RecipientName: "B", Category: models.CategorySettlement, Amount: d("25"), Date: "2024-03-11"},
	}
	_, instructions := Settle(expenses, nil, participants)
	if len(instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %+v", instructions)
	}
	in := instructions[0]
	// 500 - 100 - 100 + 25
	assertAmount(t, "B->A", in.Amount, "325")

	kinds := make(map[DetailKind]decimal.Decimal)
	for _, detail := range in.Details {
		kinds[detail.Kind] = kinds[detail.Kind].Add(detail.Amount)
	}
	assertAmount(t, "category share", kinds[DetailCategoryShare], "500")
	assertAmount(t, "category offset", kinds[DetailCategoryOffset], "-100")
	assertAmount(t, "settlement paid", kinds[DetailSettlementPaid], "-100")
	assertAmount(t, "settlement received", kinds[DetailSettlementReceived], "25")
}
