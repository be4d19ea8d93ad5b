// Package report renders settlements for people: markdown for the terminal
// and xlsx workbooks for spreadsheets.
package report

import (
	"fmt"
	"strings"

	"github.com/mmynk/roomledger/internal/ledger"
	"github.com/mmynk/roomledger/pkg/api"
)

// Markdown renders s as a markdown document: a summary, a balances table
// and one section per instruction with its breakdown.
func Markdown(s api.Settlement, f Formatter) string {
	var b strings.Builder

	title := "Settlement"
	if s.MonthKey != "" {
		title = "Settlement " + s.MonthKey
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	fmt.Fprintf(&b, "- Roommates: %d\n", s.Participants)
	fmt.Fprintf(&b, "- Total spend: %s\n", f.Format(s.TotalSpend))
	fmt.Fprintf(&b, "- Equal share per person: %s\n\n", f.Format(s.PerPerson))

	b.WriteString("## Balances\n\n")
	b.WriteString("| Name | Paid into pool | Spent | Net |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, bal := range s.Balances {
		name := escapeCell(bal.Name)
		if bal.Ghost {
			name += " (former)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			name, f.Format(bal.EqualShare), f.Format(bal.DisplaySpend), f.Format(bal.Net))
	}
	b.WriteString("\n")

	b.WriteString("## Who pays whom\n\n")
	if len(s.Instructions) == 0 {
		b.WriteString("Everyone is settled up.\n")
		return b.String()
	}
	for _, inst := range s.Instructions {
		status := ""
		if inst.Paid {
			status = " (paid)"
		}
		fmt.Fprintf(&b, "### %s pays %s %s%s\n\n", inst.From, inst.To, f.Format(inst.Amount), status)
		for _, d := range inst.Details {
			fmt.Fprintf(&b, "- %s: %s\n", detailLabel(d), f.Format(d.Amount))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func detailLabel(d api.Detail) string {
	switch ledger.DetailKind(d.Kind) {
	case ledger.DetailCategoryShare:
		return "Share of " + d.Label
	case ledger.DetailCategoryOffset:
		return "Less own " + d.Label
	case ledger.DetailPurchase:
		return "Item " + d.Label
	case ledger.DetailPurchaseOffset:
		return "Less item " + d.Label
	case ledger.DetailSettlementPaid:
		return "Already paid " + d.Label
	case ledger.DetailSettlementReceived:
		return "Received " + d.Label
	default:
		return d.Label
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
