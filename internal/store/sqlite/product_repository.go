package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type productRepository struct {
	store *Store
}

// Products returns the SQLite-backed product repository.
func (s *Store) Products() domain.ProductRepository { return &productRepository{store: s} }

var _ domain.ProductRepository = (*productRepository)(nil)

func (r *productRepository) GetByID(ctx context.Context, id int64) (domain.Product, bool, error) {
	const q = `SELECT id, description FROM products WHERE id = ?`

	var product domain.Product
	err := r.store.db.QueryRowContext(ctx, q, id).Scan(&product.ID, &product.Description)
	if err == sql.ErrNoRows {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("sqlite: get product %d: %w", id, err)
	}

	orderIDs, err := r.store.productOrderIDs(ctx, []int64{id})
	if err != nil {
		return domain.Product{}, false, err
	}
	product.OrderIDs = orderIDs[id]
	return product, true, nil
}

// GetAllByIDs returns only the products that exist, in ascending id order.
// The IN clause collapses duplicate requested ids naturally.
func (r *productRepository) GetAllByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := fmt.Sprintf(
		`SELECT id, description FROM products WHERE id IN (%s) ORDER BY id`,
		placeholders(len(ids)),
	)
	rows, err := r.store.db.QueryContext(ctx, q, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: get products by ids: %w", err)
	}
	defer rows.Close()

	var found []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Description); err != nil {
			return nil, fmt.Errorf("sqlite: scan product: %w", err)
		}
		found = append(found, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: get products by ids: %w", err)
	}
	return found, nil
}

func (r *productRepository) Insert(ctx context.Context, description string) (domain.Product, error) {
	const q = `INSERT INTO products (description) VALUES (?)`

	res, err := r.store.db.ExecContext(ctx, q, description)
	if err != nil {
		return domain.Product{}, fmt.Errorf("sqlite: insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, fmt.Errorf("sqlite: insert product: %w", err)
	}
	return domain.Product{ID: id, Description: description}, nil
}

func (r *productRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	var zero domain.Page[domain.Product]

	var total int64
	if err := r.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return zero, fmt.Errorf("sqlite: count products: %w", err)
	}

	pageQ := fmt.Sprintf(
		`SELECT id, description FROM products ORDER BY id %s LIMIT ? OFFSET ?`,
		orderDirection(req.Descending()),
	)
	rows, err := r.store.db.QueryContext(ctx, pageQ, req.Size, req.Offset())
	if err != nil {
		return zero, fmt.Errorf("sqlite: list products: %w", err)
	}
	defer rows.Close()

	var content []domain.Product
	var ids []int64
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Description); err != nil {
			return zero, fmt.Errorf("sqlite: scan product: %w", err)
		}
		content = append(content, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return zero, fmt.Errorf("sqlite: list products: %w", err)
	}

	orderIDs, err := r.store.productOrderIDs(ctx, ids)
	if err != nil {
		return zero, err
	}
	for i := range content {
		content[i].OrderIDs = orderIDs[content[i].ID]
	}

	return domain.NewPage(content, req, total), nil
}

// productOrderIDs batch-resolves which orders reference each of the given
// products. DISTINCT guards against an order listing the same product twice.
func (s *Store) productOrderIDs(ctx context.Context, productIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	q := fmt.Sprintf(
		`SELECT DISTINCT product_id, order_id FROM order_products WHERE product_id IN (%s) ORDER BY order_id`,
		placeholders(len(productIDs)),
	)
	rows, err := s.db.QueryContext(ctx, q, int64Args(productIDs)...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: resolve product orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID, orderID int64
		if err := rows.Scan(&productID, &orderID); err != nil {
			return nil, fmt.Errorf("sqlite: resolve product orders: %w", err)
		}
		result[productID] = append(result[productID], orderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: resolve product orders: %w", err)
	}
	return result, nil
}
