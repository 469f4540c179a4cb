package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
)

// OrderRepo is the Postgres adapter for the durable order record. The order
// lifecycle is owned elsewhere; dispatch only reads matching facts and writes
// status transitions.
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order persistence adapter
func NewOrderRepository(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// GetOrder retrieves the dispatch-relevant subset of an order
func (r *OrderRepo) GetOrder(ctx context.Context, orderID string) (*models.OrderRequest, error) {
	query := `
		SELECT
			id, client_id, COALESCE(driver_id, '') AS driver_id,
			order_type, status,
			(pickup_location[1])::float8 AS latitude,
			(pickup_location[0])::float8 AS longitude,
			created_at
		FROM orders
		WHERE id = $1
	`

	var order models.OrderRequest
	err := r.db.QueryRowxContext(ctx, query, orderID).StructScan(&order)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", orderID, dispatch.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// UpdateStatus transitions an order's status and writes the optional
// driver binding and rejection reason in the same statement
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, update models.OrderStatusUpdate) error {
	query := `
		UPDATE orders
		SET status = $1,
		    driver_id = NULLIF($2, ''),
		    reject_reason = NULLIF($3, ''),
		    updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, status, update.DriverID, update.Reason, time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("order %s: %w", orderID, dispatch.ErrNotFound)
	}

	return nil
}

// FindPending returns orders still awaiting a match created before olderThan
func (r *OrderRepo) FindPending(ctx context.Context, olderThan time.Time) ([]*models.OrderRequest, error) {
	query := `
		SELECT
			id, client_id, COALESCE(driver_id, '') AS driver_id,
			order_type, status,
			(pickup_location[1])::float8 AS latitude,
			(pickup_location[0])::float8 AS longitude,
			created_at
		FROM orders
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, models.OrderStatusCreated, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.OrderRequest
	for rows.Next() {
		var order models.OrderRequest
		if err := rows.StructScan(&order); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending orders: %w", err)
	}

	return orders, nil
}
