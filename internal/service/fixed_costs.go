package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/events"
	"github.com/mmynk/roomledger/pkg/api"
)

func (s *LedgerService) CreateFixedCost(ctx context.Context, req *connect.Request[api.CreateFixedCostRequest]) (*connect.Response[api.CreateFixedCostResponse], error) {
	slog.Info("CreateFixedCost request received", "name", req.Msg.Name, "amount", req.Msg.Amount)

	cost, err := FixedCostFromRequest(req.Msg)
	if err != nil {
		slog.Warn("CreateFixedCost rejected", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateFixedCost(ctx, &cost); err != nil {
		slog.Error("CreateFixedCost failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Fixed cost created", "fixed_cost_id", cost.ID)
	s.publish(ctx, events.FixedCostCreated, cost.ID)

	return connect.NewResponse(&api.CreateFixedCostResponse{FixedCost: fixedCostToAPI(cost)}), nil
}

func (s *LedgerService) ListFixedCosts(ctx context.Context, req *connect.Request[api.ListFixedCostsRequest]) (*connect.Response[api.ListFixedCostsResponse], error) {
	slog.Info("ListFixedCosts request received")

	costs, err := s.store.ListFixedCosts(ctx)
	if err != nil {
		slog.Error("ListFixedCosts failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.FixedCost, len(costs))
	for i, c := range costs {
		out[i] = fixedCostToAPI(c)
	}
	return connect.NewResponse(&api.ListFixedCostsResponse{FixedCosts: out}), nil
}

func (s *LedgerService) DeleteFixedCost(ctx context.Context, req *connect.Request[api.DeleteFixedCostRequest]) (*connect.Response[api.DeleteFixedCostResponse], error) {
	slog.Info("DeleteFixedCost request received", "fixed_cost_id", req.Msg.ID)

	if err := s.store.DeleteFixedCost(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteFixedCost failed", "fixed_cost_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.publish(ctx, events.FixedCostDeleted, req.Msg.ID)
	return connect.NewResponse(&api.DeleteFixedCostResponse{}), nil
}
