package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/roomledger/internal/dates"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/service"
	"github.com/mmynk/roomledger/pkg/api"
)

// Sheet names of an exported workbook.
const (
	SheetRoommates  = "Roommates"
	SheetExpenses   = "Expenses"
	SheetPurchases  = "Purchases"
	SheetSettlement = "Settlement"
)

// Workbook builds an xlsx workbook with the raw records and the computed
// settlement. Expenses and purchases are listed by date, oldest first, and
// amounts are written as numbers so spreadsheets can sum them.
func Workbook(r service.Records, s api.Settlement) (*excelize.File, error) {
	expenses := slices.Clone(r.Expenses)
	slices.SortStableFunc(expenses, func(a, b models.Expense) int {
		return dates.Compare(a.Date, b.Date)
	})
	purchases := slices.Clone(r.Purchases)
	slices.SortStableFunc(purchases, func(a, b models.SharedPurchase) int {
		return dates.Compare(a.Date, b.Date)
	})

	f := excelize.NewFile()

	// NewFile starts with "Sheet1"; rename it rather than leave it empty.
	if err := f.SetSheetName(f.GetSheetName(0), SheetRoommates); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetExpenses, SheetPurchases, SheetSettlement} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	w := sheetWriter{f: f}
	w.rows(SheetRoommates, []any{"ID", "Name"}, len(r.Participants), func(i int) []any {
		p := r.Participants[i]
		return []any{p.ID, p.Name}
	})
	w.rows(SheetExpenses,
		[]any{"ID", "Date", "Payer", "Recipient", "Category", "Amount", "Payment mode", "Note", "Purchase ID"},
		len(expenses), func(i int) []any {
			e := expenses[i]
			return []any{e.ID, e.Date, e.PayerName, e.RecipientName, string(e.Category),
				e.Amount.InexactFloat64(), e.PaymentMode, e.Note, e.PurchaseID}
		})
	w.rows(SheetPurchases,
		[]any{"ID", "Date", "Item", "Buyer", "Payer", "Amount", "Split among", "Per person", "Note"},
		len(purchases), func(i int) []any {
			p := purchases[i]
			var perPerson any
			if p.HasSplit() {
				perPerson = p.Share().Round(2).InexactFloat64()
			}
			return []any{p.ID, p.Date, p.ItemName, p.BuyerName, p.PayerName,
				p.Amount.InexactFloat64(), strings.Join(p.Splitters(), ", "), perPerson, p.Note}
		})
	w.rows(SheetSettlement, []any{"From", "To", "Amount", "Paid"}, len(s.Instructions), func(i int) []any {
		inst := s.Instructions[i]
		return []any{inst.From, inst.To, inst.Amount.InexactFloat64(), inst.Paid}
	})
	if w.err != nil {
		f.Close()
		return nil, w.err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Export writes the workbook for r and s to path.
func Export(path string, r service.Records, s api.Settlement) error {
	f, err := Workbook(r, s)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// sheetWriter keeps the first error so sheet filling reads top to bottom.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) rows(sheet string, header []any, n int, row func(int) []any) {
	if w.err != nil {
		return
	}
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		w.err = fmt.Errorf("failed to write %s header: %w", sheet, err)
		return
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			w.err = err
			return
		}
		values := row(i)
		if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
			w.err = fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
			return
		}
	}
}
