// Package domain defines the store's entity records, paging primitives,
// typed errors, and the repository ports the rest of the service depends on.
//
// All three entity kinds are append-only: a record is created once, read many
// times, and never updated or deleted. Identity is an int64 assigned by the
// store at insert time and never reused.
package domain

// Customer is a buyer. It owns zero or more orders; the OrderIDs back-reference
// is attached by the repository before the record reaches the projection layer,
// never lazily afterwards.
type Customer struct {
	ID       int64
	Name     string
	OrderIDs []int64
}

// Product is a purchasable item. OrderIDs lists the orders referencing it,
// attached eagerly by the repository on single and paged lookups. It is left
// nil when the product is embedded inside an Order.
type Product struct {
	ID          int64
	Description string
	OrderIDs    []int64
}

// Order links one customer to one or more products. Customer and Products are
// always fully resolved when an Order leaves a repository: creating an order
// with a dangling reference is rejected before anything is persisted.
type Order struct {
	ID          int64
	Description string
	Customer    Customer
	Products    []Product
}
