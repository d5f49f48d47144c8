// Package memory provides an in-memory implementation of the store
// repositories, intended for tests and local development. All three kinds
// live behind a single mutex so that relation resolution (orders joined to
// customers and products) sees a consistent snapshot.
package memory

import (
	"sort"
	"sync"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

// orderRecord is the stored form of an order: relations are kept as ids and
// resolved on read, mirroring how the SQLite store joins its link table.
type orderRecord struct {
	id          int64
	description string
	customerID  int64
	productIDs  []int64
}

// Store holds every record of every kind. The zero value is not usable; call
// NewStore.
type Store struct {
	mu sync.RWMutex

	customers map[int64]domain.Customer
	products  map[int64]domain.Product
	orders    map[int64]orderRecord

	nextCustomerID int64
	nextProductID  int64
	nextOrderID    int64
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		customers: make(map[int64]domain.Customer),
		products:  make(map[int64]domain.Product),
		orders:    make(map[int64]orderRecord),
	}
}

// Customers returns the customer repository backed by this store.
func (s *Store) Customers() domain.CustomerRepository { return &customerRepository{store: s} }

// Products returns the product repository backed by this store.
func (s *Store) Products() domain.ProductRepository { return &productRepository{store: s} }

// Orders returns the order repository backed by this store.
func (s *Store) Orders() domain.OrderRepository { return &orderRepository{store: s} }

// OrderCount reports the number of persisted orders. Tests use it to assert
// that failed order creations performed no partial writes.
func (s *Store) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// orderIDsForCustomer collects ids of orders owned by the customer, ascending.
// Callers must hold at least a read lock.
func (s *Store) orderIDsForCustomer(customerID int64) []int64 {
	var ids []int64
	for _, rec := range s.orders {
		if rec.customerID == customerID {
			ids = append(ids, rec.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// orderIDsForProduct collects ids of orders referencing the product, ascending.
// Callers must hold at least a read lock.
func (s *Store) orderIDsForProduct(productID int64) []int64 {
	var ids []int64
	for _, rec := range s.orders {
		for _, pid := range rec.productIDs {
			if pid == productID {
				ids = append(ids, rec.id)
				break
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedIDs returns the keys of m ordered according to req's sort direction.
func sortedIDs[T any](m map[int64]T, req domain.PageRequest) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	if req.Descending() {
		sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	} else {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return ids
}

// slicePage cuts one page out of the full ordered id list.
func slicePage(ids []int64, req domain.PageRequest) []int64 {
	start := req.Offset()
	if start >= len(ids) {
		return nil
	}
	end := start + req.Size
	if end > len(ids) {
		end = len(ids)
	}
	return ids[start:end]
}
