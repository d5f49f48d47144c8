package service

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/store-service/internal/pkg/cache"
	"github.com/jcmexdev/store-service/internal/pkg/metrics"
	"github.com/jcmexdev/store-service/internal/store/domain"
)

// ProductService serves product reads through the cache and handles product
// creation.
type ProductService struct {
	repo    domain.ProductRepository
	cache   cache.Cache
	metrics *metrics.StoreMetrics
}

// NewProductService wires the product use cases. metrics may be nil.
func NewProductService(repo domain.ProductRepository, c cache.Cache, m *metrics.StoreMetrics) *ProductService {
	return &ProductService{repo: repo, cache: c, metrics: m}
}

// List returns one page of product views.
func (s *ProductService) List(ctx context.Context, req domain.PageRequest) (domain.Page[ProductView], error) {
	req = req.Normalize()
	return readThrough(ctx, s.cache, s.metrics, domain.KindProduct, pageKey(req), func() (domain.Page[ProductView], error) {
		page, err := s.repo.List(ctx, req)
		if err != nil {
			return domain.Page[ProductView]{}, err
		}
		return domain.MapPage(page, projectProduct), nil
	})
}

// GetByID returns a single product view or a NotFoundError.
func (s *ProductService) GetByID(ctx context.Context, id int64) (ProductView, error) {
	return readThrough(ctx, s.cache, s.metrics, domain.KindProduct, idKey(id), func() (ProductView, error) {
		product, ok, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return ProductView{}, err
		}
		if !ok {
			return ProductView{}, domain.NotFound(domain.KindProduct, id)
		}
		return projectProduct(product), nil
	})
}

// Create persists a new product and evicts the product read models.
func (s *ProductService) Create(ctx context.Context, description string) (ProductView, error) {
	product, err := s.repo.Insert(ctx, description)
	if err != nil {
		return ProductView{}, err
	}

	evict(ctx, s.cache, domain.KindProduct)
	s.metrics.EntityCreated(domain.KindProduct)
	slog.InfoContext(ctx, "product created", "product_id", product.ID)

	return projectProduct(product), nil
}
