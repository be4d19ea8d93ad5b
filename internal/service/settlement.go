package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/roomledger/internal/ledger"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/storage"
	"github.com/mmynk/roomledger/pkg/api"
)

// Records is everything a settlement is computed from.
type Records struct {
	Participants []models.Participant
	Expenses     []models.Expense
	Purchases    []models.SharedPurchase
	Paid         []models.PaidMark
}

// LoadRecords reads all ledger records from store concurrently.
func LoadRecords(ctx context.Context, store storage.Store) (Records, error) {
	var r Records
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		r.Participants, err = store.ListParticipants(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		r.Expenses, err = store.ListExpenses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		r.Purchases, err = store.ListPurchases(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		r.Paid, err = store.ListPaid(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Records{}, fmt.Errorf("failed to load records: %w", err)
	}
	return r, nil
}

// Summarize renders one settlement for the wire. Amounts are rounded to two
// places; monthKey is empty for the all-time settlement.
func Summarize(monthKey string, agg ledger.Aggregates, instructions []ledger.Instruction, paid []models.PaidMark) api.Settlement {
	paidKeys := make(map[string]bool, len(paid))
	for _, m := range paid {
		paidKeys[m.Key] = true
	}

	matrix := ledger.NewMatrix(agg)
	out := api.Settlement{
		MonthKey:     monthKey,
		Participants: agg.N(),
		TotalSpend:   decimal.Zero,
		Balances:     make([]api.Balance, 0, len(matrix.Names)),
		Instructions: make([]api.Instruction, 0, len(instructions)),
	}

	pool := decimal.Zero
	ghosts := make(map[string]bool, len(agg.Ghosts))
	for _, g := range agg.Ghosts {
		ghosts[g] = true
	}
	for _, name := range matrix.Names {
		pool = pool.Add(agg.EqualShare[name])
		out.TotalSpend = out.TotalSpend.Add(agg.DisplaySpend[name])
		out.Balances = append(out.Balances, api.Balance{
			Name:         name,
			EqualShare:   agg.EqualShare[name].Round(2),
			DisplaySpend: agg.DisplaySpend[name].Round(2),
			Net:          matrix.Net(name).Round(2),
			Ghost:        ghosts[name],
		})
	}
	out.TotalSpend = out.TotalSpend.Round(2)
	out.PerPerson = pool.Div(decimal.NewFromInt(int64(agg.N()))).Round(2)

	for _, inst := range instructions {
		key := models.PaidKey(inst.From, inst.To, monthKey)
		details := make([]api.Detail, len(inst.Details))
		for i, d := range inst.Details {
			details[i] = api.Detail{
				Kind:     string(d.Kind),
				Label:    d.Label,
				Category: string(d.Category),
				RecordID: d.RecordID,
				Amount:   d.Amount.Round(2),
			}
		}
		out.Instructions = append(out.Instructions, api.Instruction{
			Key:     key,
			From:    inst.From,
			To:      inst.To,
			Amount:  inst.Amount.Round(2),
			Details: details,
			Paid:    paidKeys[key],
		})
	}
	return out
}

// AllTime settles r over its whole history.
func AllTime(r Records) api.Settlement {
	agg, instructions := ledger.Settle(r.Expenses, r.Purchases, r.Participants)
	return Summarize("", agg, instructions, r.Paid)
}

// Monthly settles r month by month, newest first. A non-empty month keeps
// only that month.
func Monthly(r Records, month string) []api.Settlement {
	snapshots := ledger.MonthlyBreakdown(r.Expenses, r.Purchases, r.Participants)
	if month != "" {
		snap, ok := ledger.Month(snapshots, month)
		if !ok {
			return []api.Settlement{}
		}
		snapshots = []ledger.Snapshot{snap}
	}

	out := make([]api.Settlement, len(snapshots))
	for i, snap := range snapshots {
		out[i] = Summarize(snap.MonthKey, snap.Aggregates, snap.Instructions, r.Paid)
	}
	return out
}

// GetSettlement computes the all-time settlement from the stored records.
func (s *LedgerService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	slog.Info("GetSettlement request received")

	records, err := LoadRecords(ctx, s.store)
	if err != nil {
		slog.Error("GetSettlement failed", "error", err)
		return nil, toConnectError(err)
	}

	settlement := AllTime(records)
	s.recompute.WithLabelValues("all_time").Inc()

	slog.Info("GetSettlement successful",
		"participants", settlement.Participants,
		"instructions", len(settlement.Instructions),
		"total_spend", settlement.TotalSpend,
	)
	return connect.NewResponse(&api.GetSettlementResponse{Settlement: settlement}), nil
}

// GetMonthlyBreakdown settles every calendar month independently.
func (s *LedgerService) GetMonthlyBreakdown(ctx context.Context, req *connect.Request[api.GetMonthlyBreakdownRequest]) (*connect.Response[api.GetMonthlyBreakdownResponse], error) {
	slog.Info("GetMonthlyBreakdown request received", "month", req.Msg.MonthKey)

	records, err := LoadRecords(ctx, s.store)
	if err != nil {
		slog.Error("GetMonthlyBreakdown failed", "error", err)
		return nil, toConnectError(err)
	}

	months := Monthly(records, req.Msg.MonthKey)
	s.recompute.WithLabelValues("monthly").Inc()

	slog.Info("GetMonthlyBreakdown successful", "months", len(months))
	return connect.NewResponse(&api.GetMonthlyBreakdownResponse{Months: months}), nil
}
