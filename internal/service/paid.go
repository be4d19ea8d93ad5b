package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/dates"
	"github.com/mmynk/roomledger/internal/events"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/pkg/api"
)

// SetPaid toggles the paid status of one instruction. Paid marks are
// bookkeeping only; record a Settlement expense to change the balances.
func (s *LedgerService) SetPaid(ctx context.Context, req *connect.Request[api.SetPaidRequest]) (*connect.Response[api.SetPaidResponse], error) {
	slog.Info("SetPaid request received",
		"from", req.Msg.FromName,
		"to", req.Msg.ToName,
		"month", req.Msg.MonthKey,
		"paid", req.Msg.Paid,
	)

	from, err := requireName("from_name", req.Msg.FromName)
	if err != nil {
		return nil, toConnectError(err)
	}
	to, err := requireName("to_name", req.Msg.ToName)
	if err != nil {
		return nil, toConnectError(err)
	}
	if from == to {
		return nil, toConnectError(invalidf("from_name and to_name must differ"))
	}

	if m := req.Msg.MonthKey; m != "" && dates.MonthKey(m) != m {
		return nil, toConnectError(invalidf("month_key must be YYYY-MM or %q, got %q", dates.Undated, m))
	}

	key := models.PaidKey(from, to, req.Msg.MonthKey)
	if req.Msg.Paid {
		err = s.store.SetPaid(ctx, &models.PaidMark{
			Key:      key,
			FromName: from,
			ToName:   to,
			MonthKey: req.Msg.MonthKey,
		})
	} else {
		err = s.store.UnsetPaid(ctx, key)
	}
	if err != nil {
		slog.Error("SetPaid failed", "key", key, "error", err)
		return nil, toConnectError(err)
	}

	s.publish(ctx, events.PaidChanged, key)
	return connect.NewResponse(&api.SetPaidResponse{Key: key, Paid: req.Msg.Paid}), nil
}

func (s *LedgerService) ListPaid(ctx context.Context, req *connect.Request[api.ListPaidRequest]) (*connect.Response[api.ListPaidResponse], error) {
	slog.Info("ListPaid request received")

	marks, err := s.store.ListPaid(ctx)
	if err != nil {
		slog.Error("ListPaid failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.PaidMark, len(marks))
	for i, m := range marks {
		out[i] = paidMarkToAPI(m)
	}
	return connect.NewResponse(&api.ListPaidResponse{Marks: out}), nil
}
