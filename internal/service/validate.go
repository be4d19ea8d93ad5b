package service

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/dates"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/pkg/api"
)

func requireName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalidf("%s is required", field)
	}
	return value, nil
}

func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidf("%s must be positive, got %s", field, amount)
	}
	return nil
}

// normalizeDate defaults an empty date to today and rewrites parseable
// dates as YYYY-MM-DD. Other text is kept as entered.
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format(dates.Format)
	}
	return dates.Normalize(date)
}

// ExpenseFromRequest validates req and builds the expense to store.
func ExpenseFromRequest(req *api.CreateExpenseRequest) (models.Expense, error) {
	payer, err := requireName("payer_name", req.PayerName)
	if err != nil {
		return models.Expense{}, err
	}
	category, err := models.ParseCategory(strings.TrimSpace(req.Category))
	if err != nil {
		return models.Expense{}, invalidf("%v", err)
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return models.Expense{}, err
	}

	e := models.Expense{
		PayerName:   payer,
		Category:    category,
		Date:        normalizeDate(req.Date),
		Amount:      req.Amount,
		PaymentMode: strings.TrimSpace(req.PaymentMode),
		Note:        strings.TrimSpace(req.Note),
	}

	recipient := strings.TrimSpace(req.RecipientName)
	if category == models.CategorySettlement {
		if recipient == "" {
			return models.Expense{}, invalidf("recipient_name is required for a settlement")
		}
		if recipient == payer {
			return models.Expense{}, invalidf("settlement recipient must differ from payer")
		}
		e.RecipientName = recipient
		if e.Note == "" {
			e.Note = "Settlement payment to " + recipient
		}
	} else if recipient != "" {
		return models.Expense{}, invalidf("recipient_name is only allowed for settlements")
	}
	return e, nil
}

// PurchaseFromRequest validates req against the known roommate names and
// builds the purchase to store.
func PurchaseFromRequest(req *api.CreatePurchaseRequest, roommates []string) (models.SharedPurchase, error) {
	item, err := requireName("item_name", req.ItemName)
	if err != nil {
		return models.SharedPurchase{}, err
	}
	buyer, err := requireName("buyer_name", req.BuyerName)
	if err != nil {
		return models.SharedPurchase{}, err
	}
	payer, err := requireName("payer_name", req.PayerName)
	if err != nil {
		return models.SharedPurchase{}, err
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return models.SharedPurchase{}, err
	}

	p := models.SharedPurchase{
		ItemName:    item,
		Amount:      req.Amount,
		BuyerName:   buyer,
		PayerName:   payer,
		Date:        normalizeDate(req.Date),
		PaymentMode: strings.TrimSpace(req.PaymentMode),
		Note:        strings.TrimSpace(req.Note),
	}

	if req.SplitParticipants != nil {
		if len(req.SplitParticipants) == 0 {
			return models.SharedPurchase{}, invalidf("split_participants must not be empty when present")
		}
		for _, name := range req.SplitParticipants {
			name = strings.TrimSpace(name)
			if !slices.Contains(roommates, name) {
				return models.SharedPurchase{}, invalidf("unknown split participant %q", name)
			}
			p.SplitParticipants = append(p.SplitParticipants, name)
		}
		p.SplitParticipants = p.Splitters()
	}

	if req.PerPersonAmount.Valid {
		if !p.HasSplit() {
			return models.SharedPurchase{}, invalidf("per_person_amount requires split_participants")
		}
		if err := requirePositive("per_person_amount", req.PerPersonAmount.Decimal); err != nil {
			return models.SharedPurchase{}, err
		}
		p.PerPersonAmount = req.PerPersonAmount
	}
	return p, nil
}

// FixedCostFromRequest validates req and builds the fixed cost to store.
func FixedCostFromRequest(req *api.CreateFixedCostRequest) (models.FixedCost, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return models.FixedCost{}, err
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return models.FixedCost{}, err
	}
	category := models.CategoryOther
	if c := strings.TrimSpace(req.Category); c != "" {
		category, err = models.ParseCategory(c)
		if err != nil {
			return models.FixedCost{}, invalidf("%v", err)
		}
	}
	if category == models.CategorySettlement {
		return models.FixedCost{}, invalidf("a fixed cost cannot be a settlement")
	}
	return models.FixedCost{Name: name, Amount: req.Amount, Category: category}, nil
}
