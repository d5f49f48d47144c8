package service

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/store-service/internal/pkg/cache"
	"github.com/jcmexdev/store-service/internal/pkg/metrics"
	"github.com/jcmexdev/store-service/internal/store/domain"
)

// CustomerService serves customer reads through the cache and handles
// customer creation.
type CustomerService struct {
	repo    domain.CustomerRepository
	cache   cache.Cache
	metrics *metrics.StoreMetrics
}

// NewCustomerService wires the customer use cases. metrics may be nil.
func NewCustomerService(repo domain.CustomerRepository, c cache.Cache, m *metrics.StoreMetrics) *CustomerService {
	return &CustomerService{repo: repo, cache: c, metrics: m}
}

// List returns one page of customer views, optionally restricted to names
// containing the given substring (case-insensitive). Blank and absent filters
// are equivalent.
func (s *CustomerService) List(ctx context.Context, name string, req domain.PageRequest) (domain.Page[CustomerView], error) {
	req = req.Normalize()
	return readThrough(ctx, s.cache, s.metrics, domain.KindCustomer, customerPageKey(name, req), func() (domain.Page[CustomerView], error) {
		page, err := s.repo.List(ctx, name, req)
		if err != nil {
			return domain.Page[CustomerView]{}, err
		}
		return domain.MapPage(page, projectCustomer), nil
	})
}

// Create persists a new customer and evicts the customer read models.
func (s *CustomerService) Create(ctx context.Context, name string) (CustomerView, error) {
	customer, err := s.repo.Insert(ctx, name)
	if err != nil {
		return CustomerView{}, err
	}

	evict(ctx, s.cache, domain.KindCustomer)
	s.metrics.EntityCreated(domain.KindCustomer)
	slog.InfoContext(ctx, "customer created", "customer_id", customer.ID)

	return projectCustomer(customer), nil
}
