package memory

import (
	"context"
	"sort"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type productRepository struct {
	store *Store
}

var _ domain.ProductRepository = (*productRepository)(nil)

func (r *productRepository) GetByID(ctx context.Context, id int64) (domain.Product, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return domain.Product{}, false, nil
	}
	product.OrderIDs = s.orderIDsForProduct(id)
	return product, true, nil
}

// GetAllByIDs returns only the products that exist, ascending by id.
// Duplicate requested ids yield a single record.
func (r *productRepository) GetAllByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	found := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := s.products[id]; ok {
			found = append(found, product)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found, nil
}

func (r *productRepository) Insert(ctx context.Context, description string) (domain.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	product := domain.Product{ID: s.nextProductID, Description: description}
	s.products[product.ID] = product
	return product, nil
}

func (r *productRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := sortedIDs(s.products, req)
	content := make([]domain.Product, 0, req.Size)
	for _, id := range slicePage(ids, req) {
		product := s.products[id]
		product.OrderIDs = s.orderIDsForProduct(id)
		content = append(content, product)
	}
	return domain.NewPage(content, req, int64(len(ids))), nil
}
