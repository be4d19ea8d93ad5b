package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/service"
	"github.com/mmynk/roomledger/internal/storage/sqlite"
)

const household = `
roommates: [Asha, Ravi, Meera]
expenses:
  - payer: Asha
    category: Grocery
    date: 2024-03-01
    amount: 300
    payment_mode: Card
  - payer: Meera
    recipient: Asha
    category: Settlement
    date: 04/03/2024
    amount: "50"
purchases:
  - item: Rice 10kg
    amount: 60
    buyer: Ravi
    payer: Ravi
    date: 2024-03-03
    split: [Asha, Ravi, Meera]
  - item: Gas cylinder
    amount: 900.50
    buyer: Meera
    payer: Meera
    date: 2024-03-05
fixed_costs:
  - name: Rent
    amount: 24000
    category: Rent
`

func newStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestParse(t *testing.T) {
	ds, err := Parse(strings.NewReader(household))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ds.Roommates) != 3 || len(ds.Expenses) != 2 || len(ds.Purchases) != 2 || len(ds.FixedCosts) != 1 {
		t.Fatalf("unexpected counts: %+v", ds)
	}
	if !ds.Purchases[1].Amount.Equal(decimal.RequireFromString("900.5")) {
		t.Errorf("amount: expected 900.5, got %s", ds.Purchases[1].Amount)
	}
	if ds.Expenses[0].Date != "2024-03-01" {
		t.Errorf("date: expected 2024-03-01 as text, got %q", ds.Expenses[0].Date)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("roommates: [Asha]\nflatmates: [Ravi]\n"))
	if err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestParse_Empty(t *testing.T) {
	ds, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ds.Roommates) != 0 {
		t.Errorf("expected empty dataset, got %+v", ds)
	}
}

func TestImport(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	ds, err := Parse(strings.NewReader(household))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sum, err := Import(ctx, store, ds)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	want := Summary{Roommates: 3, Expenses: 2, Purchases: 2, Mirrors: 2, FixedCosts: 1}
	if sum != want {
		t.Errorf("summary: expected %+v, got %+v", want, sum)
	}

	expenses, err := store.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	// Two imported expenses plus a mirror per self-paid purchase.
	if len(expenses) != 4 {
		t.Errorf("expected 4 expenses, got %d", len(expenses))
	}
	if expenses[1].Date != "2024-03-04" {
		t.Errorf("expected normalized settlement date, got %q", expenses[1].Date)
	}

	records, err := service.LoadRecords(ctx, store)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	s := service.AllTime(records)
	// Pool: Asha 300 + Meera's gas 900.50 (no split, so its mirror is pooled).
	if want := decimal.RequireFromString("400.17"); !s.PerPerson.Equal(want) {
		t.Errorf("PerPerson: expected %s, got %s", want, s.PerPerson)
	}

	// A second import adds records again but not roommates.
	sum, err = Import(ctx, store, &Dataset{Roommates: []string{"asha", "Zoe"}})
	if err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if sum.Roommates != 1 {
		t.Errorf("expected only Zoe to be added, got %d", sum.Roommates)
	}
}

func TestImport_StopsAtInvalidRecord(t *testing.T) {
	store := newStore(t)
	ds := &Dataset{
		Roommates: []string{"Asha"},
		Purchases: []Purchase{
			{Item: "Milk", Amount: decimal.NewFromInt(40), Buyer: "Asha", Payer: "Asha", Split: []string{"Asha", "Ghost"}},
		},
	}
	_, err := Import(context.Background(), store, ds)
	if !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), "purchase 1") {
		t.Errorf("expected record position in error, got %v", err)
	}
}
