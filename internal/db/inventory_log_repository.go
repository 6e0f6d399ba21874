package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ordersys/orderflow-go/internal/domain"
)

type InventoryLogRepository struct {
	db *sql.DB
}

func NewInventoryLogRepository(database *PostgresDB) *InventoryLogRepository {
	return &InventoryLogRepository{db: database.Conn}
}

// Save appends a fact record; logs are never updated.
func (r *InventoryLogRepository) Save(ctx context.Context, entry *domain.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (order_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, entry.OrderID, entry.ProductID, entry.Quantity, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save inventory log: %w", err)
	}

	return nil
}

func (r *InventoryLogRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.InventoryLog, error) {
	query := `
		SELECT order_id, product_id, quantity, created_at
		FROM inventory_logs WHERE order_id = $1 ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryLog
	for rows.Next() {
		var e domain.InventoryLog
		if err := rows.Scan(&e.OrderID, &e.ProductID, &e.Quantity, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan inventory log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory logs: %w", err)
	}

	return entries, nil
}
