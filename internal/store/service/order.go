package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/jcmexdev/store-service/internal/pkg/cache"
	"github.com/jcmexdev/store-service/internal/pkg/metrics"
	"github.com/jcmexdev/store-service/internal/store/domain"
)

// OrderService serves order reads through the cache and runs the order
// assembly workflow.
type OrderService struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	products  domain.ProductRepository
	cache     cache.Cache
	metrics   *metrics.StoreMetrics
}

// NewOrderService wires the order use cases. metrics may be nil.
func NewOrderService(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	c cache.Cache,
	m *metrics.StoreMetrics,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
		cache:     c,
		metrics:   m,
	}
}

// List returns one page of order views.
func (s *OrderService) List(ctx context.Context, req domain.PageRequest) (domain.Page[OrderView], error) {
	req = req.Normalize()
	return readThrough(ctx, s.cache, s.metrics, domain.KindOrder, pageKey(req), func() (domain.Page[OrderView], error) {
		page, err := s.orders.List(ctx, req)
		if err != nil {
			return domain.Page[OrderView]{}, err
		}
		return domain.MapPage(page, projectOrder), nil
	})
}

// GetByID returns a single order view or a NotFoundError.
func (s *OrderService) GetByID(ctx context.Context, id int64) (OrderView, error) {
	return readThrough(ctx, s.cache, s.metrics, domain.KindOrder, idKey(id), func() (OrderView, error) {
		order, ok, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return OrderView{}, err
		}
		if !ok {
			return OrderView{}, domain.NotFound(domain.KindOrder, id)
		}
		return projectOrder(order), nil
	})
}

// Create runs the order assembly workflow:
//
//  1. Resolve the customer; a missing customer fails immediately, nothing
//     else is looked up.
//  2. Bulk-resolve the products and diff the requested ids against the found
//     ones. All missing ids are reported together, sorted ascending, not
//     just the first.
//  3. Persist the order referencing the resolved records and evict the order
//     read models.
//
// A failure at step 1 or 2 persists nothing. Products are stored in the
// bulk-lookup order (ascending id), not the caller's order.
func (s *OrderService) Create(ctx context.Context, description string, customerID int64, productIDs []int64) (OrderView, error) {
	customer, ok, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return OrderView{}, err
	}
	if !ok {
		return OrderView{}, domain.NotFound(domain.KindCustomer, customerID)
	}

	products, err := s.products.GetAllByIDs(ctx, productIDs)
	if err != nil {
		return OrderView{}, err
	}
	if missing := missingIDs(productIDs, products); len(missing) > 0 {
		return OrderView{}, domain.ProductsNotFound(missing)
	}

	order, err := s.orders.Insert(ctx, description, customer, products)
	if err != nil {
		return OrderView{}, err
	}

	evict(ctx, s.cache, domain.KindOrder)
	s.metrics.EntityCreated(domain.KindOrder)
	slog.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"customer_id", customer.ID,
		"products", len(order.Products),
	)

	return projectOrder(order), nil
}

// missingIDs diffs the requested product ids against the found records and
// returns the absent ids deduplicated and sorted ascending.
func missingIDs(requested []int64, found []domain.Product) []int64 {
	foundSet := make(map[int64]bool, len(found))
	for _, p := range found {
		foundSet[p.ID] = true
	}

	seen := make(map[int64]bool, len(requested))
	var missing []int64
	for _, id := range requested {
		if foundSet[id] || seen[id] {
			continue
		}
		seen[id] = true
		missing = append(missing, id)
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
