package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. It expects a MySQL instance at
// localhost:3306 with a database named 'warlike_spiders_test' and skips
// the calling test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/warlike_spiders_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"order_items", "orders",
		"session_customers", "table_sessions", "customers", "tables",
		"menu_items", "menu_sections", "menus",
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema the repositories expect.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createMenusTable := `
	CREATE TABLE IF NOT EXISTS menus (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createMenuSectionsTable := `
	CREATE TABLE IF NOT EXISTS menu_sections (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		menu_id VARCHAR(36) NOT NULL,
		name VARCHAR(50) NOT NULL,
		highlight TINYINT(1) NOT NULL DEFAULT 0,
		position INT NOT NULL DEFAULT 0,
		FOREIGN KEY (menu_id) REFERENCES menus(id) ON DELETE CASCADE,
		INDEX idx_menu (menu_id)
	)`

	createMenuItemsTable := `
	CREATE TABLE IF NOT EXISTS menu_items (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		section_id VARCHAR(36) NOT NULL,
		name VARCHAR(50) NOT NULL,
		description VARCHAR(100) NOT NULL DEFAULT '',
		unitary_price DECIMAL(10,2) NOT NULL,
		image VARCHAR(500) NOT NULL,
		position INT NOT NULL DEFAULT 0,
		FOREIGN KEY (section_id) REFERENCES menu_sections(id) ON DELETE CASCADE,
		INDEX idx_section (section_id)
	)`

	createTablesTable := `
	CREATE TABLE IF NOT EXISTS tables (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		number INT NOT NULL,
		seats INT NOT NULL DEFAULT 4
	)`

	createCustomersTable := `
	CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(30) NOT NULL,
		image VARCHAR(500) NOT NULL
	)`

	createTableSessionsTable := `
	CREATE TABLE IF NOT EXISTS table_sessions (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		table_id VARCHAR(36) NOT NULL,
		status VARCHAR(30) NOT NULL DEFAULT 'open',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (table_id) REFERENCES tables(id),
		INDEX idx_table (table_id)
	)`

	createSessionCustomersTable := `
	CREATE TABLE IF NOT EXISTS session_customers (
		session_id VARCHAR(36) NOT NULL,
		customer_id VARCHAR(36) NOT NULL,
		seated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (session_id, customer_id),
		FOREIGN KEY (session_id) REFERENCES table_sessions(id) ON DELETE CASCADE,
		FOREIGN KEY (customer_id) REFERENCES customers(id)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		customer_id VARCHAR(36) NOT NULL,
		status VARCHAR(30) NOT NULL DEFAULT 'created',
		completed_at DATETIME NULL,
		created_at DATETIME NOT NULL,
		INDEX idx_customer (customer_id)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS order_items (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		order_id VARCHAR(36) NOT NULL,
		position INT NOT NULL DEFAULT 0,
		item_id VARCHAR(36) NOT NULL,
		item_name VARCHAR(50) NOT NULL,
		item_unitary_price DECIMAL(10,2) NOT NULL,
		item_image VARCHAR(500) NOT NULL,
		item_quantity INT NOT NULL DEFAULT 1,
		note VARCHAR(255) NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		INDEX idx_order (order_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"menus", createMenusTable},
		{"menu_sections", createMenuSectionsTable},
		{"menu_items", createMenuItemsTable},
		{"tables", createTablesTable},
		{"customers", createCustomersTable},
		{"table_sessions", createTableSessionsTable},
		{"session_customers", createSessionCustomersTable},
		{"orders", createOrdersTable},
		{"order_items", createOrderItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
