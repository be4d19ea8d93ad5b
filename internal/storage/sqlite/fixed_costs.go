package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/roomledger/internal/models"
)

// CreateFixedCost persists a new fixed cost.
func (s *SQLiteStore) CreateFixedCost(ctx context.Context, c *models.FixedCost) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO fixed_costs (id, name, amount, category, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Amount.String(), string(c.Category), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fixed cost: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListFixedCosts(ctx context.Context) ([]models.FixedCost, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, amount, category, created_at FROM fixed_costs ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}
	defer rows.Close()

	var costs []models.FixedCost
	for rows.Next() {
		var (
			c        models.FixedCost
			category string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Amount, &category, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed cost: %w", err)
		}
		c.Category = models.Category(category)
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fixed costs: %w", err)
	}
	return costs, nil
}

func (s *SQLiteStore) DeleteFixedCost(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "fixed_costs", id)
}
