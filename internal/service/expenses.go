package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/events"
	"github.com/mmynk/roomledger/pkg/api"
)

// CreateExpense records an expense or a settlement payment.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"payer", req.Msg.PayerName,
		"category", req.Msg.Category,
		"amount", req.Msg.Amount,
	)

	expense, err := ExpenseFromRequest(req.Msg)
	if err != nil {
		slog.Warn("CreateExpense rejected", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "settlement", expense.IsSettlement())
	s.publish(ctx, events.ExpenseCreated, expense.ID)

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: expenseToAPI(expense)}), nil
}

func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received")

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToAPI(e)
	}

	slog.Info("ListExpenses successful", "count", len(out))
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)

	if err := s.store.DeleteExpense(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ID)
	s.publish(ctx, events.ExpenseDeleted, req.Msg.ID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}
