// Package dataset imports a household's records from a YAML file.
//
// Example:
//
//	roommates: [Asha, Ravi, Meera]
//	expenses:
//	  - payer: Asha
//	    category: Grocery
//	    date: 2024-03-01
//	    amount: 300
//	  - payer: Meera
//	    recipient: Asha
//	    category: Settlement
//	    amount: 50
//	purchases:
//	  - item: Rice 10kg
//	    amount: 60
//	    buyer: Ravi
//	    payer: Ravi
//	    split: [Asha, Ravi, Meera]
//	fixed_costs:
//	  - name: Rent
//	    amount: 24000
//	    category: Rent
package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/service"
	"github.com/mmynk/roomledger/internal/storage"
	"github.com/mmynk/roomledger/pkg/api"
)

type Dataset struct {
	Roommates  []string    `yaml:"roommates"`
	Expenses   []Expense   `yaml:"expenses"`
	Purchases  []Purchase  `yaml:"purchases"`
	FixedCosts []FixedCost `yaml:"fixed_costs"`
}

type Expense struct {
	Payer       string          `yaml:"payer"`
	Recipient   string          `yaml:"recipient"`
	Category    string          `yaml:"category"`
	Date        string          `yaml:"date"`
	Amount      decimal.Decimal `yaml:"amount"`
	PaymentMode string          `yaml:"payment_mode"`
	Note        string          `yaml:"note"`
}

type Purchase struct {
	Item        string           `yaml:"item"`
	Amount      decimal.Decimal  `yaml:"amount"`
	Buyer       string           `yaml:"buyer"`
	Payer       string           `yaml:"payer"`
	Date        string           `yaml:"date"`
	PaymentMode string           `yaml:"payment_mode"`
	Note        string           `yaml:"note"`
	Split       []string         `yaml:"split"`
	PerPerson   *decimal.Decimal `yaml:"per_person"`
}

type FixedCost struct {
	Name     string          `yaml:"name"`
	Amount   decimal.Decimal `yaml:"amount"`
	Category string          `yaml:"category"`
}

// Parse decodes a dataset. Unknown fields are rejected.
func Parse(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if err == io.EOF {
			return &ds, nil
		}
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return &ds, nil
}

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Summary counts what Import wrote.
type Summary struct {
	Roommates  int
	Expenses   int
	Purchases  int
	Mirrors    int
	FixedCosts int
}

// Import validates every record the way the LedgerService does and writes
// them to store. Roommates that already exist are skipped. Import stops at
// the first invalid record; records written before it are kept.
func Import(ctx context.Context, store storage.Store, ds *Dataset) (Summary, error) {
	var sum Summary

	existing, err := store.ListParticipants(ctx)
	if err != nil {
		return sum, err
	}
	names := models.Names(existing)
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[strings.ToLower(n)] = true
	}

	for _, name := range ds.Roommates {
		name = strings.TrimSpace(name)
		if name == "" || known[strings.ToLower(name)] {
			continue
		}
		if err := store.CreateParticipant(ctx, &models.Participant{Name: name}); err != nil {
			return sum, fmt.Errorf("roommate %q: %w", name, err)
		}
		known[strings.ToLower(name)] = true
		names = append(names, name)
		sum.Roommates++
	}

	for i, in := range ds.Expenses {
		e, err := service.ExpenseFromRequest(&api.CreateExpenseRequest{
			PayerName:     in.Payer,
			RecipientName: in.Recipient,
			Category:      in.Category,
			Date:          in.Date,
			Amount:        in.Amount,
			PaymentMode:   in.PaymentMode,
			Note:          in.Note,
		})
		if err != nil {
			return sum, fmt.Errorf("expense %d: %w", i+1, err)
		}
		if err := store.CreateExpense(ctx, &e); err != nil {
			return sum, fmt.Errorf("expense %d: %w", i+1, err)
		}
		sum.Expenses++
	}

	for i, in := range ds.Purchases {
		req := &api.CreatePurchaseRequest{
			ItemName:          in.Item,
			Amount:            in.Amount,
			BuyerName:         in.Buyer,
			PayerName:         in.Payer,
			Date:              in.Date,
			PaymentMode:       in.PaymentMode,
			Note:              in.Note,
			SplitParticipants: in.Split,
		}
		if in.PerPerson != nil {
			req.PerPersonAmount = decimal.NewNullDecimal(*in.PerPerson)
		}
		p, err := service.PurchaseFromRequest(req, names)
		if err != nil {
			return sum, fmt.Errorf("purchase %d: %w", i+1, err)
		}
		mirror, err := service.RecordPurchase(ctx, store, &p)
		if err != nil {
			return sum, fmt.Errorf("purchase %d: %w", i+1, err)
		}
		sum.Purchases++
		if mirror != nil {
			sum.Mirrors++
		}
	}

	for i, in := range ds.FixedCosts {
		c, err := service.FixedCostFromRequest(&api.CreateFixedCostRequest{
			Name:     in.Name,
			Amount:   in.Amount,
			Category: in.Category,
		})
		if err != nil {
			return sum, fmt.Errorf("fixed cost %d: %w", i+1, err)
		}
		if err := store.CreateFixedCost(ctx, &c); err != nil {
			return sum, fmt.Errorf("fixed cost %d: %w", i+1, err)
		}
		sum.FixedCosts++
	}

	slog.Info("Dataset imported",
		"roommates", sum.Roommates,
		"expenses", sum.Expenses,
		"purchases", sum.Purchases,
		"mirrors", sum.Mirrors,
		"fixed_costs", sum.FixedCosts,
	)
	return sum, nil
}
