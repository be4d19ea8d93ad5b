// Package service implements the LedgerService Connect handlers.
package service

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/roomledger/internal/events"
	"github.com/mmynk/roomledger/internal/storage"
	"github.com/mmynk/roomledger/pkg/api"
)

// Ensure LedgerService implements api.LedgerServiceHandler
var _ api.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
	recompute *prometheus.CounterVec
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithPublisher sends change events to p after every successful write.
func WithPublisher(p events.Publisher) Option {
	return func(s *LedgerService) { s.publisher = p }
}

// WithRegisterer registers the service's collectors with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *LedgerService) { reg.MustRegister(s.recompute) }
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:     store,
		publisher: events.Noop{},
		recompute: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roomledger",
			Subsystem: "ledger",
			Name:      "recomputes_total",
			Help:      "Settlement computations, by scope.",
		}, []string{"scope"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish reports a change. The write already succeeded, so a broker
// failure is logged and not returned.
func (s *LedgerService) publish(ctx context.Context, t events.Type, id string) {
	if err := s.publisher.Publish(ctx, events.New(t, id)); err != nil {
		slog.Warn("Failed to publish ledger event", "type", t, "id", id, "error", err)
	}
}
