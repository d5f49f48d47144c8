package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type orderRepository struct {
	store *Store
}

// Orders returns the SQLite-backed order repository.
func (s *Store) Orders() domain.OrderRepository { return &orderRepository{store: s} }

var _ domain.OrderRepository = (*orderRepository)(nil)

func (r *orderRepository) GetByID(ctx context.Context, id int64) (domain.Order, bool, error) {
	const q = `
		SELECT o.id, o.description, c.id, c.name
		FROM   orders o
		JOIN   customers c ON c.id = o.customer_id
		WHERE  o.id = ?`

	var order domain.Order
	err := r.store.db.QueryRowContext(ctx, q, id).Scan(
		&order.ID, &order.Description, &order.Customer.ID, &order.Customer.Name,
	)
	if err == sql.ErrNoRows {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("sqlite: get order %d: %w", id, err)
	}

	productsByOrder, err := r.store.orderProducts(ctx, []int64{id})
	if err != nil {
		return domain.Order{}, false, err
	}
	order.Products = productsByOrder[id]
	return order, true, nil
}

// Insert writes the order row and its product links in one transaction.
// With foreign_keys on, a reference to a missing customer or product makes
// the whole transaction fail, so no partial order can ever be observed.
func (r *orderRepository) Insert(ctx context.Context, description string, customer domain.Customer, products []domain.Product) (domain.Order, error) {
	var zero domain.Order

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("sqlite: begin insert order: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (description, customer_id) VALUES (?, ?)`,
		description, customer.ID,
	)
	if err != nil {
		return zero, fmt.Errorf("sqlite: insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return zero, fmt.Errorf("sqlite: insert order: %w", err)
	}

	for i, p := range products {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO order_products (order_id, position, product_id) VALUES (?, ?, ?)`,
			id, i, p.ID,
		)
		if err != nil {
			return zero, fmt.Errorf("sqlite: link order %d to product %d: %w", id, p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("sqlite: commit insert order: %w", err)
	}

	return domain.Order{
		ID:          id,
		Description: description,
		Customer:    customer,
		Products:    products,
	}, nil
}

func (r *orderRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Order], error) {
	var zero domain.Page[domain.Order]

	var total int64
	if err := r.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return zero, fmt.Errorf("sqlite: count orders: %w", err)
	}

	pageQ := fmt.Sprintf(`
		SELECT o.id, o.description, c.id, c.name
		FROM   orders o
		JOIN   customers c ON c.id = o.customer_id
		ORDER  BY o.id %s
		LIMIT  ? OFFSET ?`,
		orderDirection(req.Descending()),
	)
	rows, err := r.store.db.QueryContext(ctx, pageQ, req.Size, req.Offset())
	if err != nil {
		return zero, fmt.Errorf("sqlite: list orders: %w", err)
	}
	defer rows.Close()

	var content []domain.Order
	var ids []int64
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Description, &o.Customer.ID, &o.Customer.Name); err != nil {
			return zero, fmt.Errorf("sqlite: scan order: %w", err)
		}
		content = append(content, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return zero, fmt.Errorf("sqlite: list orders: %w", err)
	}

	productsByOrder, err := r.store.orderProducts(ctx, ids)
	if err != nil {
		return zero, err
	}
	for i := range content {
		content[i].Products = productsByOrder[content[i].ID]
	}

	return domain.NewPage(content, req, total), nil
}

// orderProducts batch-resolves the product lists for a set of orders in one
// query, preserving the position each product was stored at.
func (s *Store) orderProducts(ctx context.Context, orderIDs []int64) (map[int64][]domain.Product, error) {
	result := make(map[int64][]domain.Product, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	q := fmt.Sprintf(`
		SELECT op.order_id, p.id, p.description
		FROM   order_products op
		JOIN   products p ON p.id = op.product_id
		WHERE  op.order_id IN (%s)
		ORDER  BY op.order_id, op.position`,
		placeholders(len(orderIDs)),
	)
	rows, err := s.db.QueryContext(ctx, q, int64Args(orderIDs)...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: resolve order products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var p domain.Product
		if err := rows.Scan(&orderID, &p.ID, &p.Description); err != nil {
			return nil, fmt.Errorf("sqlite: resolve order products: %w", err)
		}
		result[orderID] = append(result[orderID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: resolve order products: %w", err)
	}
	return result, nil
}
