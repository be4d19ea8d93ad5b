// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/roomledger/internal/models"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for ledger record storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Records are append-only with delete: there are no update operations, and
// deleting one record never cascades to others.
type Store interface {
	// CreateParticipant persists a new participant.
	// The ID and CreatedAt fields are populated by the store.
	CreateParticipant(ctx context.Context, p *models.Participant) error
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	// DeleteParticipant removes a participant and every paid mark naming
	// them. Their expenses and purchases are kept.
	DeleteParticipant(ctx context.Context, id string) error

	CreateExpense(ctx context.Context, e *models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	CreatePurchase(ctx context.Context, p *models.SharedPurchase) error
	ListPurchases(ctx context.Context) ([]models.SharedPurchase, error)
	DeletePurchase(ctx context.Context, id string) error

	CreateFixedCost(ctx context.Context, c *models.FixedCost) error
	ListFixedCosts(ctx context.Context) ([]models.FixedCost, error)
	DeleteFixedCost(ctx context.Context, id string) error

	// SetPaid records a paid mark, replacing any mark with the same key.
	SetPaid(ctx context.Context, mark *models.PaidMark) error
	// UnsetPaid removes a paid mark. Removing a missing mark is not an error.
	UnsetPaid(ctx context.Context, key string) error
	ListPaid(ctx context.Context) ([]models.PaidMark, error)

	// Close releases any resources held by the store.
	Close() error
}
