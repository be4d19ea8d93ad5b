package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

// CreatePurchase persists a shared purchase and its split participants.
func (s *SQLiteStore) CreatePurchase(ctx context.Context, p *models.SharedPurchase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO purchases
			(id, item_name, amount, buyer_name, payer_name, date, payment_mode, note, per_person_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ItemName, p.Amount.String(), p.BuyerName, p.PayerName, p.Date,
		p.PaymentMode, nullString(p.Note), p.PerPersonAmount, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	for i, name := range p.SplitParticipants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO purchase_splits (purchase_id, position, name) VALUES (?, ?, ?)",
			p.ID, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListPurchases returns purchases in the order they were recorded, each
// with its split participants.
func (s *SQLiteStore) ListPurchases(ctx context.Context) ([]models.SharedPurchase, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, item_name, amount, buyer_name, payer_name, date, payment_mode, note, per_person_amount, created_at
		FROM purchases ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.SharedPurchase
	index := make(map[string]int)
	for rows.Next() {
		var (
			p    models.SharedPurchase
			note sql.NullString
			per  decimal.NullDecimal
		)
		if err := rows.Scan(&p.ID, &p.ItemName, &p.Amount, &p.BuyerName, &p.PayerName,
			&p.Date, &p.PaymentMode, &note, &per, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		p.Note = note.String
		p.PerPersonAmount = per
		index[p.ID] = len(purchases)
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	rows.Close()

	splitRows, err := s.db.QueryContext(ctx,
		"SELECT purchase_id, name FROM purchase_splits ORDER BY purchase_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get split participants: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var purchaseID, name string
		if err := splitRows.Scan(&purchaseID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan split participant: %w", err)
		}
		i, ok := index[purchaseID]
		if !ok {
			continue
		}
		purchases[i].SplitParticipants = append(purchases[i].SplitParticipants, name)
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split participants: %w", err)
	}
	return purchases, nil
}

// DeletePurchase removes a purchase and its split rows. A mirror expense
// recorded alongside it is left in place.
func (s *SQLiteStore) DeletePurchase(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "purchases", id)
}
