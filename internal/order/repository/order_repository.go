package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	"github.com/ikaro-souza/warlike-spiders/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// InsertOrder writes the order and its items in one transaction; a
// partially written order is never visible.
func (r *MySQLOrderRepository) InsertOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// MySQL ignores rollback if already committed.
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, customer_id, status, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, orderQuery,
		order.ID, order.CustomerID, order.Status, order.CompletedAt, order.CreatedAt,
	); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, position, item_id, item_name, item_unitary_price, item_image, item_quantity, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for position, item := range order.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			item.ID, order.ID, position, item.ItemID,
			item.Item.Name, item.Item.UnitaryPrice, item.Item.Image,
			item.ItemQuantity, item.Note,
		); err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}
	return nil
}

func (r *MySQLOrderRepository) FindLatestByCustomer(ctx context.Context, customerID, status string) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, status, completed_at, created_at
		FROM orders
		WHERE customer_id = ?
	`
	args := []interface{}{customerID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC LIMIT 1"

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&order.ID, &order.CustomerID, &order.Status, &order.CompletedAt, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no order for customer %s", customerID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer order: %w", err)
	}

	items, err := r.findItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *MySQLOrderRepository) findItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, item_id, item_name, item_unitary_price, item_image, item_quantity, note
		FROM order_items
		WHERE order_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.ItemID,
			&item.Item.Name, &item.Item.UnitaryPrice, &item.Item.Image,
			&item.ItemQuantity, &item.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
