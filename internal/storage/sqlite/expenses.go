package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/roomledger/internal/models"
)

// CreateExpense persists a new expense.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses
			(id, payer_name, recipient_name, category, date, amount, payment_mode, note, purchase_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.PayerName, nullString(e.RecipientName), string(e.Category), e.Date,
		e.Amount.String(), e.PaymentMode, nullString(e.Note), nullString(e.PurchaseID), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ListExpenses returns expenses in the order they were recorded.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payer_name, recipient_name, category, date, amount, payment_mode, note, purchase_id, created_at
		FROM expenses ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var (
			e                           models.Expense
			category                    string
			recipient, note, purchaseID sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.PayerName, &recipient, &category, &e.Date,
			&e.Amount, &e.PaymentMode, &note, &purchaseID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Category = models.Category(category)
		e.RecipientName = recipient.String
		e.Note = note.String
		e.PurchaseID = purchaseID.String
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "expenses", id)
}
