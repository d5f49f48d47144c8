package memory

import (
	"context"
	"strings"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type customerRepository struct {
	store *Store
}

var _ domain.CustomerRepository = (*customerRepository)(nil)

func (r *customerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return domain.Customer{}, false, nil
	}
	customer.OrderIDs = s.orderIDsForCustomer(id)
	return customer, true, nil
}

func (r *customerRepository) Insert(ctx context.Context, name string) (domain.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCustomerID++
	customer := domain.Customer{ID: s.nextCustomerID, Name: name}
	s.customers[customer.ID] = customer
	return customer, nil
}

func (r *customerRepository) List(ctx context.Context, name string, req domain.PageRequest) (domain.Page[domain.Customer], error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter := strings.ToLower(strings.TrimSpace(name))

	matching := make(map[int64]domain.Customer, len(s.customers))
	for id, c := range s.customers {
		if filter == "" || strings.Contains(strings.ToLower(c.Name), filter) {
			matching[id] = c
		}
	}

	ids := sortedIDs(matching, req)
	content := make([]domain.Customer, 0, req.Size)
	for _, id := range slicePage(ids, req) {
		customer := matching[id]
		customer.OrderIDs = s.orderIDsForCustomer(id)
		content = append(content, customer)
	}
	return domain.NewPage(content, req, int64(len(ids))), nil
}
