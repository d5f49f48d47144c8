package domain

import "context"

// Repository ports. The services depend on these abstractions, not on SQLite
// directly, so the implementation can be swapped for the in-memory variant in
// tests and local development.
//
// Lookup methods report a missing id with ok=false, never with an error: an
// absent record is a normal outcome, the error return is reserved for store
// failures.

// CustomerRepository persists Customer records.
type CustomerRepository interface {
	// GetByID returns the customer with its order-id list attached.
	GetByID(ctx context.Context, id int64) (Customer, bool, error)

	// Insert assigns an id and persists the customer, returning the stored form.
	Insert(ctx context.Context, name string) (Customer, error)

	// List returns one page of customers. A non-blank name restricts the
	// result to customers whose name contains it, case-insensitively; a
	// blank name returns all customers.
	List(ctx context.Context, name string, req PageRequest) (Page[Customer], error)
}

// ProductRepository persists Product records.
type ProductRepository interface {
	// GetByID returns the product with its referencing order-id list attached.
	GetByID(ctx context.Context, id int64) (Product, bool, error)

	// GetAllByIDs returns only the products that exist, in ascending id
	// order. Callers diff the requested set against the returned ids to
	// detect missing ones; the repository does not report which were absent.
	GetAllByIDs(ctx context.Context, ids []int64) ([]Product, error)

	// Insert assigns an id and persists the product.
	Insert(ctx context.Context, description string) (Product, error)

	// List returns one page of products, order-id lists attached.
	List(ctx context.Context, req PageRequest) (Page[Product], error)
}

// OrderRepository persists Order records.
type OrderRepository interface {
	// GetByID returns the order with customer and products fully resolved.
	GetByID(ctx context.Context, id int64) (Order, bool, error)

	// Insert assigns an id and persists the order and its product links as
	// one atomic write. Customer and products must already be resolved; the
	// product sequence is stored positionally and read back in that order.
	Insert(ctx context.Context, description string, customer Customer, products []Product) (Order, error)

	// List returns one page of orders, relations resolved.
	List(ctx context.Context, req PageRequest) (Page[Order], error)
}
