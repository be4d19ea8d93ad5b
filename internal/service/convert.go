package service

import (
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/pkg/api"
)

func roommateToAPI(p models.Participant) api.Roommate {
	return api.Roommate{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func expenseToAPI(e models.Expense) api.Expense {
	return api.Expense{
		ID:            e.ID,
		PayerName:     e.PayerName,
		RecipientName: e.RecipientName,
		Category:      string(e.Category),
		Date:          e.Date,
		Amount:        e.Amount,
		PaymentMode:   e.PaymentMode,
		Note:          e.Note,
		PurchaseID:    e.PurchaseID,
		CreatedAt:     e.CreatedAt,
	}
}

func purchaseToAPI(p models.SharedPurchase) api.Purchase {
	return api.Purchase{
		ID:                p.ID,
		ItemName:          p.ItemName,
		Amount:            p.Amount,
		BuyerName:         p.BuyerName,
		PayerName:         p.PayerName,
		Date:              p.Date,
		PaymentMode:       p.PaymentMode,
		Note:              p.Note,
		SplitParticipants: p.SplitParticipants,
		PerPersonAmount:   p.PerPersonAmount,
		CreatedAt:         p.CreatedAt,
	}
}

func fixedCostToAPI(c models.FixedCost) api.FixedCost {
	return api.FixedCost{
		ID:        c.ID,
		Name:      c.Name,
		Amount:    c.Amount,
		Category:  string(c.Category),
		CreatedAt: c.CreatedAt,
	}
}

func paidMarkToAPI(m models.PaidMark) api.PaidMark {
	return api.PaidMark{
		Key:       m.Key,
		FromName:  m.FromName,
		ToName:    m.ToName,
		MonthKey:  m.MonthKey,
		CreatedAt: m.CreatedAt,
	}
}
