package memory

import (
	"context"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type orderRepository struct {
	store *Store
}

var _ domain.OrderRepository = (*orderRepository)(nil)

func (r *orderRepository) GetByID(ctx context.Context, id int64) (domain.Order, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false, nil
	}
	return s.resolveOrder(rec), true, nil
}

func (r *orderRepository) Insert(ctx context.Context, description string, customer domain.Customer, products []domain.Product) (domain.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	rec := orderRecord{
		id:          s.nextOrderID,
		description: description,
		customerID:  customer.ID,
		productIDs:  make([]int64, len(products)),
	}
	for i, p := range products {
		rec.productIDs[i] = p.ID
	}
	s.orders[rec.id] = rec
	return s.resolveOrder(rec), nil
}

func (r *orderRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Order], error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := sortedIDs(s.orders, req)
	content := make([]domain.Order, 0, req.Size)
	for _, id := range slicePage(ids, req) {
		content = append(content, s.resolveOrder(s.orders[id]))
	}
	return domain.NewPage(content, req, int64(len(ids))), nil
}

// resolveOrder joins the stored id references back to full records, preserving
// the positional product order written at insert time. Callers must hold at
// least a read lock.
func (s *Store) resolveOrder(rec orderRecord) domain.Order {
	order := domain.Order{
		ID:          rec.id,
		Description: rec.description,
		Customer:    s.customers[rec.customerID],
		Products:    make([]domain.Product, 0, len(rec.productIDs)),
	}
	for _, pid := range rec.productIDs {
		order.Products = append(order.Products, s.products[pid])
	}
	return order
}
