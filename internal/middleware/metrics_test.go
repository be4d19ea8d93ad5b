package middleware

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"connect error", connect.NewError(connect.CodeNotFound, errors.New("missing")), "not_found"},
		{"plain error", errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf: expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRPCMetrics_CountsByCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRPCMetrics(reg)

	const procedure = "/roomledger.v1.LedgerService/GetSettlement"
	ok := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, nil
	}
	fail := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))
	}

	req := connect.NewRequest(&struct{}{})
	interceptor := m.Interceptor()
	for _, next := range []connect.UnaryFunc{ok, ok, fail} {
		// A bare request carries no spec; wrap to set the procedure label.
		_, _ = interceptor(next)(context.Background(), withProcedure{req, procedure})
	}

	counts := gatherRequests(t, reg)
	if got := counts["ok"]; got != 2 {
		t.Errorf("ok count: expected 2, got %v", got)
	}
	if got := counts["invalid_argument"]; got != 1 {
		t.Errorf("invalid_argument count: expected 1, got %v", got)
	}
}

// gatherRequests returns roomledger_rpc_requests_total by code.
func gatherRequests(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	counts := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "roomledger_rpc_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" {
					counts[label.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return counts
}

type withProcedure struct {
	*connect.Request[struct{}]
	procedure string
}

func (w withProcedure) Spec() connect.Spec {
	return connect.Spec{Procedure: w.procedure, StreamType: connect.StreamTypeUnary}
}
