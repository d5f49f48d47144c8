package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type customerRepository struct {
	store *Store
}

// Customers returns the SQLite-backed customer repository.
func (s *Store) Customers() domain.CustomerRepository { return &customerRepository{store: s} }

var _ domain.CustomerRepository = (*customerRepository)(nil)

func (r *customerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, bool, error) {
	const q = `SELECT id, name FROM customers WHERE id = ?`

	var customer domain.Customer
	err := r.store.db.QueryRowContext(ctx, q, id).Scan(&customer.ID, &customer.Name)
	if err == sql.ErrNoRows {
		return domain.Customer{}, false, nil
	}
	if err != nil {
		return domain.Customer{}, false, fmt.Errorf("sqlite: get customer %d: %w", id, err)
	}

	orderIDs, err := r.store.customerOrderIDs(ctx, []int64{id})
	if err != nil {
		return domain.Customer{}, false, err
	}
	customer.OrderIDs = orderIDs[id]
	return customer, true, nil
}

func (r *customerRepository) Insert(ctx context.Context, name string) (domain.Customer, error) {
	const q = `INSERT INTO customers (name) VALUES (?)`

	res, err := r.store.db.ExecContext(ctx, q, name)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("sqlite: insert customer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("sqlite: insert customer: %w", err)
	}
	return domain.Customer{ID: id, Name: name}, nil
}

func (r *customerRepository) List(ctx context.Context, name string, req domain.PageRequest) (domain.Page[domain.Customer], error) {
	var zero domain.Page[domain.Customer]

	// instr over lowered text gives a case-insensitive substring match
	// without LIKE wildcard escaping concerns.
	where := ""
	var args []any
	if filter := strings.TrimSpace(name); filter != "" {
		where = `WHERE instr(lower(name), lower(?)) > 0`
		args = append(args, filter)
	}

	var total int64
	countQ := fmt.Sprintf(`SELECT COUNT(*) FROM customers %s`, where)
	if err := r.store.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return zero, fmt.Errorf("sqlite: count customers: %w", err)
	}

	pageQ := fmt.Sprintf(
		`SELECT id, name FROM customers %s ORDER BY id %s LIMIT ? OFFSET ?`,
		where, orderDirection(req.Descending()),
	)
	rows, err := r.store.db.QueryContext(ctx, pageQ, append(args, req.Size, req.Offset())...)
	if err != nil {
		return zero, fmt.Errorf("sqlite: list customers: %w", err)
	}
	defer rows.Close()

	var content []domain.Customer
	var ids []int64
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return zero, fmt.Errorf("sqlite: scan customer: %w", err)
		}
		content = append(content, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return zero, fmt.Errorf("sqlite: list customers: %w", err)
	}

	orderIDs, err := r.store.customerOrderIDs(ctx, ids)
	if err != nil {
		return zero, err
	}
	for i := range content {
		content[i].OrderIDs = orderIDs[content[i].ID]
	}

	return domain.NewPage(content, req, total), nil
}

// customerOrderIDs batch-resolves the order back-references for a set of
// customers in one query, so relation data is attached before projection and
// never fetched lazily per row.
func (s *Store) customerOrderIDs(ctx context.Context, customerIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(customerIDs))
	if len(customerIDs) == 0 {
		return result, nil
	}

	q := fmt.Sprintf(
		`SELECT customer_id, id FROM orders WHERE customer_id IN (%s) ORDER BY id`,
		placeholders(len(customerIDs)),
	)
	rows, err := s.db.QueryContext(ctx, q, int64Args(customerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: resolve customer orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var customerID, orderID int64
		if err := rows.Scan(&customerID, &orderID); err != nil {
			return nil, fmt.Errorf("sqlite: resolve customer orders: %w", err)
		}
		result[customerID] = append(result[customerID], orderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: resolve customer orders: %w", err)
	}
	return result, nil
}
