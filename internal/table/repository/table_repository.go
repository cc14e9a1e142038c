package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	"github.com/ikaro-souza/warlike-spiders/internal/errors"
)

type MySQLTableRepository struct {
	db *sql.DB
}

func NewMySQLTableRepository(db *sql.DB) *MySQLTableRepository {
	return &MySQLTableRepository{db: db}
}

// FindSessionByTable loads the open session for a table: the seated
// customers and their confirmed orders.
func (r *MySQLTableRepository) FindSessionByTable(ctx context.Context, tableID string) (*domain.TableSession, error) {
	sessionQuery := `
		SELECT s.id, t.seats, s.created_at
		FROM table_sessions s
		JOIN tables t ON t.id = s.table_id
		WHERE s.table_id = ? AND s.status != ?
		ORDER BY s.created_at DESC
		LIMIT 1
	`

	var session domain.TableSession
	err := r.db.QueryRowContext(ctx, sessionQuery, tableID, domain.TableStatusClosed).Scan(
		&session.ID, &session.Seats, &session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no open session for table %s", tableID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying table session: %w", err)
	}

	customers, err := r.findSessionCustomers(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.Customers = customers

	history, total, err := r.findOrderHistory(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.OrderHistory = history
	session.TotalOrdered = total

	return &session, nil
}

func (r *MySQLTableRepository) findSessionCustomers(ctx context.Context, sessionID string) ([]domain.TableSessionCustomer, error) {
	query := `
		SELECT c.id, c.name, c.image
		FROM session_customers sc
		JOIN customers c ON c.id = sc.customer_id
		WHERE sc.session_id = ?
		ORDER BY sc.seated_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying session customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.TableSessionCustomer
	for rows.Next() {
		var c domain.TableSessionCustomer
		if err := rows.Scan(&c.ID, &c.Name, &c.Image); err != nil {
			return nil, fmt.Errorf("scanning session customer row: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session customer rows: %w", err)
	}

	return customers, nil
}

func (r *MySQLTableRepository) findOrderHistory(ctx context.Context, sessionID string) ([]domain.TableSessionOrder, float64, error) {
	query := `
		SELECT o.id, o.customer_id, o.created_at,
		       oi.id, oi.item_id, oi.item_name, oi.item_unitary_price, oi.item_image, oi.item_quantity, oi.note
		FROM orders o
		JOIN session_customers sc ON sc.customer_id = o.customer_id
		JOIN order_items oi ON oi.order_id = o.id
		WHERE sc.session_id = ? AND o.status != ?
		ORDER BY o.created_at ASC, oi.position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID, domain.OrderStatusCanceled)
	if err != nil {
		return nil, 0, fmt.Errorf("querying order history: %w", err)
	}
	defer rows.Close()

	var (
		history    []domain.TableSessionOrder
		orderIndex = map[string]int{}
		total      float64
	)
	for rows.Next() {
		var (
			order domain.TableSessionOrder
			item  domain.OrderItem
		)
		err := rows.Scan(
			&order.ID, &order.CustomerID, &order.CreatedAt,
			&item.ID, &item.ItemID, &item.Item.Name, &item.Item.UnitaryPrice, &item.Item.Image,
			&item.ItemQuantity, &item.Note,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning order history row: %w", err)
		}

		idx, ok := orderIndex[order.ID]
		if !ok {
			history = append(history, order)
			idx = len(history) - 1
			orderIndex[order.ID] = idx
		}
		history[idx].Items = append(history[idx].Items, item)
		total += item.Item.UnitaryPrice * float64(item.ItemQuantity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating order history rows: %w", err)
	}

	return history, total, nil
}

func (r *MySQLTableRepository) TotalSoldToday(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(SUM(oi.item_unitary_price * oi.item_quantity), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = ? AND DATE(o.created_at) = CURDATE()
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, domain.OrderStatusServed).Scan(&total); err != nil {
		return 0, fmt.Errorf("querying total sold: %w", err)
	}
	return total, nil
}

func (r *MySQLTableRepository) TotalOrderedToday(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE status != ? AND DATE(created_at) = CURDATE()
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, domain.OrderStatusCanceled).Scan(&count); err != nil {
		return 0, fmt.Errorf("querying total ordered: %w", err)
	}
	return count, nil
}

func (r *MySQLTableRepository) ServingTables(ctx context.Context) ([]domain.WaiterShiftSummaryTable, error) {
	query := `
		SELECT s.id, t.number, s.status, COALESCE(MAX(o.created_at), s.created_at)
		FROM table_sessions s
		JOIN tables t ON t.id = s.table_id
		LEFT JOIN session_customers sc ON sc.session_id = s.id
		LEFT JOIN orders o ON o.customer_id = sc.customer_id
		WHERE s.status != ?
		GROUP BY s.id, t.number, s.status, s.created_at
		ORDER BY t.number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.TableStatusClosed)
	if err != nil {
		return nil, fmt.Errorf("querying serving tables: %w", err)
	}
	defer rows.Close()

	var tables []domain.WaiterShiftSummaryTable
	for rows.Next() {
		var t domain.WaiterShiftSummaryTable
		if err := rows.Scan(&t.ID, &t.Number, &t.Status, &t.LastOrder); err != nil {
			return nil, fmt.Errorf("scanning serving table row: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating serving table rows: %w", err)
	}

	return tables, nil
}
