package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/service"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixture settles three roommates: Asha paid 300 of groceries, Ravi paid a
// 60 bag of rice shared by all three, and Meera already paid Asha 50.
func fixture() service.Records {
	return service.Records{
		Participants: []models.Participant{
			{ID: "p1", Name: "Asha"}, {ID: "p2", Name: "Ravi"}, {ID: "p3", Name: "Meera"},
		},
		Expenses: []models.Expense{
			{ID: "e1", PayerName: "Asha", Category: models.CategoryGrocery, Date: "2024-03-01", Amount: d("300")},
			{ID: "e2", PayerName: "Meera", RecipientName: "Asha", Category: models.CategorySettlement, Date: "2024-03-04", Amount: d("50")},
		},
		Purchases: []models.SharedPurchase{
			{ID: "s1", ItemName: "Rice", Amount: d("60"), BuyerName: "Ravi", PayerName: "Ravi",
				Date: "2024-03-03", SplitParticipants: []string{"Asha", "Ravi", "Meera"}},
		},
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		currency string
		amount   string
		want     string
	}{
		{"USD", "1234.564", "$1,234.56"},
		{"USD", "-20", "-$20.00"},
		{"", "7.5", "7.50"},
	}
	for _, tt := range tests {
		if got := NewFormatter(tt.currency).Format(d(tt.amount)); got != tt.want {
			t.Errorf("Format(%s %s) = %q, want %q", tt.currency, tt.amount, got, tt.want)
		}
	}
}

func TestMarkdown_Structure(t *testing.T) {
	s := service.AllTime(fixture())
	md := Markdown(s, NewFormatter("USD"))

	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	src := []byte(md)
	root := parser.Parse(text.NewReader(src))

	var (
		tableRows  int
		headings   []string
		foundTable bool
	)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *extast.Table:
			foundTable = true
		case *extast.TableRow:
			tableRows++
		case *ast.Heading:
			if node.Level == 3 {
				headings = append(headings, string(node.Text(src)))
			}
		}
		return ast.WalkContinue, nil
	})

	if !foundTable {
		t.Fatal("expected a balances table")
	}
	if tableRows != len(s.Balances) {
		t.Errorf("table rows: expected %d, got %d", len(s.Balances), tableRows)
	}
	if len(headings) != len(s.Instructions) {
		t.Fatalf("instruction headings: expected %d, got %v", len(s.Instructions), headings)
	}
	// Meera owes Asha 100 less the 50 already paid.
	if !strings.Contains(md, "### Meera pays Asha $50.00") {
		t.Errorf("expected Meera->Asha 50 section, got:\n%s", md)
	}
	if !strings.Contains(md, "Already paid 2024-03-04: -$50.00") {
		t.Errorf("expected settlement detail line, got:\n%s", md)
	}
}

func TestMarkdown_SettledLedger(t *testing.T) {
	s := service.AllTime(service.Records{
		Participants: []models.Participant{{Name: "Asha"}, {Name: "Ravi"}},
	})
	md := Markdown(s, NewFormatter("USD"))
	if !strings.Contains(md, "Everyone is settled up.") {
		t.Errorf("expected settled message, got:\n%s", md)
	}
}

func TestMarkdown_MonthTitle(t *testing.T) {
	months := service.Monthly(fixture(), "2024-03")
	if len(months) != 1 {
		t.Fatalf("expected one month, got %d", len(months))
	}
	md := Markdown(months[0], NewFormatter("USD"))
	if !strings.HasPrefix(md, "# Settlement 2024-03\n") {
		t.Errorf("expected month title, got %q", strings.SplitN(md, "\n", 2)[0])
	}
}

func TestRender(t *testing.T) {
	out, err := Render("# Settlement\n\nEveryone is settled up.\n", 80)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "settled") {
		t.Errorf("expected rendered text to keep content, got %q", out)
	}
}

func TestExport_ReadBack(t *testing.T) {
	records := fixture()
	s := service.AllTime(records)
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	if err := Export(path, records, s); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	want := []string{SheetRoommates, SheetExpenses, SheetPurchases, SheetSettlement}
	sheets := f.GetSheetList()
	if len(sheets) != len(want) {
		t.Fatalf("sheets: expected %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d: expected %s, got %s", i, want[i], sheets[i])
		}
	}

	rows, err := f.GetRows(SheetSettlement)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != len(s.Instructions)+1 {
		t.Fatalf("settlement rows: expected %d, got %d", len(s.Instructions)+1, len(rows))
	}
	if rows[0][0] != "From" || rows[0][2] != "Amount" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	purchases, err := f.GetRows(SheetPurchases)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if got := purchases[1][6]; got != "Asha, Ravi, Meera" {
		t.Errorf("split column: expected Asha, Ravi, Meera, got %q", got)
	}
	if got := purchases[1][7]; got != "20" {
		t.Errorf("per person column: expected 20, got %q", got)
	}
}

func TestWorkbook_ExpensesByDate(t *testing.T) {
	records := fixture()
	records.Expenses = []models.Expense{
		{ID: "late", PayerName: "Asha", Category: models.CategoryGrocery, Date: "2024-03-20", Amount: d("10")},
		{ID: "undated", PayerName: "Ravi", Category: models.CategoryGrocery, Date: "someday", Amount: d("10")},
		{ID: "early", PayerName: "Meera", Category: models.CategoryGrocery, Date: "05-03-2024", Amount: d("10")},
	}

	f, err := Workbook(records, service.AllTime(records))
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetExpenses)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	var ids []string
	for _, row := range rows[1:] {
		ids = append(ids, row[0])
	}
	if got := strings.Join(ids, ","); got != "early,late,undated" {
		t.Errorf("expense order: expected early,late,undated, got %s", got)
	}
	if records.Expenses[0].ID != "late" {
		t.Error("Workbook reordered the caller's records")
	}
}
