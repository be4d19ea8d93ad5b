// Package events publishes ledger change notifications so other processes
// (dashboards, chat bots) can refresh their view of the settlement.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Type names what changed.
type Type string

const (
	RoommateCreated  Type = "roommate.created"
	RoommateDeleted  Type = "roommate.deleted"
	ExpenseCreated   Type = "expense.created"
	ExpenseDeleted   Type = "expense.deleted"
	PurchaseCreated  Type = "purchase.created"
	PurchaseDeleted  Type = "purchase.deleted"
	FixedCostCreated Type = "fixed_cost.created"
	FixedCostDeleted Type = "fixed_cost.deleted"
	PaidChanged      Type = "paid.changed"
)

// Event is a lightweight change notification. It carries only the record
// id; consumers fetch the record or the settlement themselves.
type Event struct {
	Type      Type      `json:"type"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// New returns an Event stamped with the current time.
func New(t Type, id string) Event {
	return Event{Type: t, ID: id, Timestamp: time.Now().UTC()}
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers change events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                          { return nil }
