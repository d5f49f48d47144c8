// Package sqlite provides the SQLite-backed implementation of the store
// repositories.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa. foreign_keys is switched on so the database itself rejects an order
// row pointing at a customer or product that does not exist.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	// Register the pure-Go SQLite driver.
	// We use modernc.org/sqlite instead of mattn/go-sqlite3 to avoid CGO
	// requirements, making it easier to build and run in Docker (Alpine).
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. All three kinds are append-only:
// rows are inserted, read, and never updated or deleted, so ids assigned by
// AUTOINCREMENT are never reused.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    name    TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT    NOT NULL,
    customer_id INTEGER NOT NULL REFERENCES customers(id)
);

-- Link table for the order/product many-to-many. position preserves the
-- product sequence the order was created with, so reads return products in
-- exactly the order they were persisted.
CREATE TABLE IF NOT EXISTS order_products (
    order_id   INTEGER NOT NULL REFERENCES orders(id),
    position   INTEGER NOT NULL,
    product_id INTEGER NOT NULL REFERENCES products(id),
    PRIMARY KEY (order_id, position)
);

-- Index for resolving a customer's orders.
CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);

-- Index for the back-reference query: "which orders contain product X".
CREATE INDEX IF NOT EXISTS idx_order_products_product_id ON order_products(product_id);
`

// Store wraps the shared database handle. The per-kind repositories are
// views over the same handle so relation joins stay within one database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema. Use ":memory:" for an ephemeral database in tests.
//
//	store, err := sqlite.Open("./data/store.db")
func Open(path string) (*Store, error) {
	// The pure-Go driver uses _pragma query parameters to configure
	// connection state. busy_timeout waits for locks instead of failing
	// immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3" for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection; a single
	// connection also keeps an in-memory database alive across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable. Used by the readiness probe.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// orderDirection maps the normalized sort spec to a SQL keyword. Only the
// direction is interpolated into queries; it never carries user input.
func orderDirection(descending bool) string {
	if descending {
		return "DESC"
	}
	return "ASC"
}

// placeholders returns "?, ?, ?" for n parameters of an IN clause.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// int64Args widens ids for driver calls.
func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
