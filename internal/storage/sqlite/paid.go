package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/roomledger/internal/models"
)

// SetPaid upserts a paid mark keyed by mark.Key.
func (s *SQLiteStore) SetPaid(ctx context.Context, mark *models.PaidMark) error {
	if mark.Key == "" {
		mark.Key = models.PaidKey(mark.FromName, mark.ToName, mark.MonthKey)
	}
	if mark.CreatedAt == 0 {
		mark.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO paid_marks (key, from_name, to_name, month_key, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET created_at = excluded.created_at`,
		mark.Key, mark.FromName, mark.ToName, mark.MonthKey, mark.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert paid mark: %w", err)
	}
	return nil
}

func (s *SQLiteStore) UnsetPaid(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM paid_marks WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete paid mark: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListPaid(ctx context.Context) ([]models.PaidMark, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, from_name, to_name, month_key, created_at FROM paid_marks ORDER BY key",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid marks: %w", err)
	}
	defer rows.Close()

	var marks []models.PaidMark
	for rows.Next() {
		var m models.PaidMark
		if err := rows.Scan(&m.Key, &m.FromName, &m.ToName, &m.MonthKey, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan paid mark: %w", err)
		}
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate paid marks: %w", err)
	}
	return marks, nil
}
