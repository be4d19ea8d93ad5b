// Package api defines the roomledger.v1 wire messages and the Connect
// plumbing (procedure names, codec, handler and client) for LedgerService.
package api

import "github.com/shopspring/decimal"

type Roommate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type Expense struct {
	ID            string          `json:"id"`
	PayerName     string          `json:"payer_name"`
	RecipientName string          `json:"recipient_name,omitempty"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"payment_mode"`
	Note          string          `json:"note,omitempty"`
	PurchaseID    string          `json:"purchase_id,omitempty"`
	CreatedAt     int64           `json:"created_at"`
}

type Purchase struct {
	ID                string          `json:"id"`
	ItemName          string          `json:"item_name"`
	Amount            decimal.Decimal `json:"amount"`
	BuyerName         string          `json:"buyer_name"`
	PayerName         string          `json:"payer_name"`
	Date              string          `json:"date"`
	PaymentMode       string          `json:"payment_mode"`
	Note              string          `json:"note,omitempty"`
	SplitParticipants []string        `json:"split_participants,omitempty"`
	// PerPersonAmount is null when the share is amount / len(split).
	PerPersonAmount decimal.NullDecimal `json:"per_person_amount"`
	CreatedAt       int64               `json:"created_at"`
}

type FixedCost struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt int64           `json:"created_at"`
}

type PaidMark struct {
	Key       string `json:"key"`
	FromName  string `json:"from_name"`
	ToName    string `json:"to_name"`
	MonthKey  string `json:"month_key,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// Balance is one row of the settlement summary. Amounts are rounded to
// two places.
type Balance struct {
	Name         string          `json:"name"`
	EqualShare   decimal.Decimal `json:"equal_share"`
	DisplaySpend decimal.Decimal `json:"display_spend"`
	// Net is what the rest of the house owes this person (negative when
	// they owe).
	Net   decimal.Decimal `json:"net"`
	Ghost bool            `json:"ghost,omitempty"`
}

type Detail struct {
	Kind     string          `json:"kind"`
	Label    string          `json:"label"`
	Category string          `json:"category,omitempty"`
	RecordID string          `json:"record_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

type Instruction struct {
	Key     string          `json:"key"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Amount  decimal.Decimal `json:"amount"`
	Details []Detail        `json:"details"`
	Paid    bool            `json:"paid"`
}

// Settlement is the all-time settlement, or one month of it when MonthKey
// is set.
type Settlement struct {
	MonthKey     string          `json:"month_key,omitempty"`
	Participants int             `json:"participants"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
	PerPerson    decimal.Decimal `json:"per_person"`
	Balances     []Balance       `json:"balances"`
	Instructions []Instruction   `json:"instructions"`
}

type CreateRoommateRequest struct {
	Name string `json:"name"`
}

type CreateRoommateResponse struct {
	Roommate Roommate `json:"roommate"`
}

type ListRoommatesRequest struct{}

type ListRoommatesResponse struct {
	Roommates []Roommate `json:"roommates"`
}

type DeleteRoommateRequest struct {
	ID string `json:"id"`
}

type DeleteRoommateResponse struct{}

type CreateExpenseRequest struct {
	PayerName     string          `json:"payer_name"`
	RecipientName string          `json:"recipient_name,omitempty"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"payment_mode"`
	Note          string          `json:"note,omitempty"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type CreatePurchaseRequest struct {
	ItemName          string              `json:"item_name"`
	Amount            decimal.Decimal     `json:"amount"`
	BuyerName         string              `json:"buyer_name"`
	PayerName         string              `json:"payer_name"`
	Date              string              `json:"date"`
	PaymentMode       string              `json:"payment_mode"`
	Note              string              `json:"note,omitempty"`
	// SplitParticipants is null when absent. An empty list is sent as []
	// so the server can reject it.
	SplitParticipants []string            `json:"split_participants"`
	PerPersonAmount   decimal.NullDecimal `json:"per_person_amount"`
}

type CreatePurchaseResponse struct {
	Purchase Purchase `json:"purchase"`
	// Mirror is the expense recorded alongside a purchase the payer bought
	// themselves.
	Mirror *Expense `json:"mirror,omitempty"`
}

type ListPurchasesRequest struct{}

type ListPurchasesResponse struct {
	Purchases []Purchase `json:"purchases"`
}

type DeletePurchaseRequest struct {
	ID string `json:"id"`
}

type DeletePurchaseResponse struct{}

type CreateFixedCostRequest struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

type CreateFixedCostResponse struct {
	FixedCost FixedCost `json:"fixed_cost"`
}

type ListFixedCostsRequest struct{}

type ListFixedCostsResponse struct {
	FixedCosts []FixedCost `json:"fixed_costs"`
}

type DeleteFixedCostRequest struct {
	ID string `json:"id"`
}

type DeleteFixedCostResponse struct{}

// SetPaidRequest marks (or with Paid false, unmarks) the instruction
// from -> to. An empty MonthKey addresses the all-time settlement.
type SetPaidRequest struct {
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
	MonthKey string `json:"month_key,omitempty"`
	Paid     bool   `json:"paid"`
}

type SetPaidResponse struct {
	Key  string `json:"key"`
	Paid bool   `json:"paid"`
}

type ListPaidRequest struct{}

type ListPaidResponse struct {
	Marks []PaidMark `json:"marks"`
}

type GetSettlementRequest struct{}

type GetSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

// GetMonthlyBreakdownRequest selects one month with MonthKey, or every
// month when it is empty.
type GetMonthlyBreakdownRequest struct {
	MonthKey string `json:"month_key,omitempty"`
}

type GetMonthlyBreakdownResponse struct {
	Months []Settlement `json:"months"`
}
