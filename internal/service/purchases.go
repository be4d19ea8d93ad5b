package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/events"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/storage"
	"github.com/mmynk/roomledger/pkg/api"
)

// CreatePurchase records a shared purchase. When the buyer paid for it
// themselves, the mirror expense is recorded as well.
func (s *LedgerService) CreatePurchase(ctx context.Context, req *connect.Request[api.CreatePurchaseRequest]) (*connect.Response[api.CreatePurchaseResponse], error) {
	slog.Info("CreatePurchase request received",
		"item", req.Msg.ItemName,
		"buyer", req.Msg.BuyerName,
		"payer", req.Msg.PayerName,
		"split_count", len(req.Msg.SplitParticipants),
	)

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		slog.Error("CreatePurchase failed", "error", err)
		return nil, toConnectError(err)
	}

	purchase, err := PurchaseFromRequest(req.Msg, models.Names(participants))
	if err != nil {
		slog.Warn("CreatePurchase rejected", "error", err)
		return nil, toConnectError(err)
	}

	mirror, err := RecordPurchase(ctx, s.store, &purchase)
	if err != nil {
		slog.Error("CreatePurchase failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Purchase created", "purchase_id", purchase.ID, "mirrored", mirror != nil)
	s.publish(ctx, events.PurchaseCreated, purchase.ID)

	resp := &api.CreatePurchaseResponse{Purchase: purchaseToAPI(purchase)}
	if mirror != nil {
		e := expenseToAPI(*mirror)
		resp.Mirror = &e
		s.publish(ctx, events.ExpenseCreated, mirror.ID)
	}
	return connect.NewResponse(resp), nil
}

// RecordPurchase stores p and, when p needs one, its mirror expense. The
// mirror is returned, or nil.
func RecordPurchase(ctx context.Context, store storage.Store, p *models.SharedPurchase) (*models.Expense, error) {
	if err := store.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	mirror, ok := p.Mirror()
	if !ok {
		return nil, nil
	}
	if err := store.CreateExpense(ctx, &mirror); err != nil {
		return nil, fmt.Errorf("failed to record mirror expense for purchase %s: %w", p.ID, err)
	}
	return &mirror, nil
}

func (s *LedgerService) ListPurchases(ctx context.Context, req *connect.Request[api.ListPurchasesRequest]) (*connect.Response[api.ListPurchasesResponse], error) {
	slog.Info("ListPurchases request received")

	purchases, err := s.store.ListPurchases(ctx)
	if err != nil {
		slog.Error("ListPurchases failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Purchase, len(purchases))
	for i, p := range purchases {
		out[i] = purchaseToAPI(p)
	}

	slog.Info("ListPurchases successful", "count", len(out))
	return connect.NewResponse(&api.ListPurchasesResponse{Purchases: out}), nil
}

// DeletePurchase removes a purchase. Its mirror expense, if any, is a
// separate record and stays until deleted on its own.
func (s *LedgerService) DeletePurchase(ctx context.Context, req *connect.Request[api.DeletePurchaseRequest]) (*connect.Response[api.DeletePurchaseResponse], error) {
	slog.Info("DeletePurchase request received", "purchase_id", req.Msg.ID)

	if err := s.store.DeletePurchase(ctx, req.Msg.ID); err != nil {
		slog.Error("DeletePurchase failed", "purchase_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Purchase deleted", "purchase_id", req.Msg.ID)
	s.publish(ctx, events.PurchaseDeleted, req.Msg.ID)

	return connect.NewResponse(&api.DeletePurchaseResponse{}), nil
}
