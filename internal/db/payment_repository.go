package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ordersys/orderflow-go/internal/domain"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(database *PostgresDB) *PaymentRepository {
	return &PaymentRepository{db: database.Conn}
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status
	`
	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.Amount.Amount,
		payment.Amount.Currency,
		string(payment.Status),
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return nil
}

// FindByOrderID returns the most recent payment attempt for an order, or
// nil without error when none exists.
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `
		SELECT id, order_id, amount, currency, status, created_at
		FROM payments WHERE order_id = $1
		ORDER BY created_at DESC LIMIT 1
	`

	var payment domain.Payment
	var status string
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Amount.Amount,
		&payment.Amount.Currency,
		&status,
		&payment.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	payment.Status = domain.PaymentStatus(status)

	return &payment, nil
}
