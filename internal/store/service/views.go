// Package service implements the store's use cases on top of the repository
// ports: read-through cached listings, single-entity lookups, and the order
// assembly workflow. It also owns the projection layer that shapes internal
// records into the views returned over HTTP.
package service

import "github.com/jcmexdev/store-service/internal/store/domain"

// CustomerView is the external shape of a customer.
type CustomerView struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Orders []int64 `json:"orders"`
}

// ProductView is the external shape of a product. Orders lists the ids of
// orders referencing it.
type ProductView struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Orders      []int64 `json:"orders"`
}

// CustomerSummary is the customer embedded in an order view.
type CustomerSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductSummary is a product embedded in an order view.
type ProductSummary struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// OrderView is the external shape of an order, relations flattened into
// embedded summaries.
type OrderView struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Customer    CustomerSummary  `json:"customer"`
	Products    []ProductSummary `json:"products"`
}

// Projections are pure transforms: every relation they render was already
// resolved and attached by the repository, no lookups happen here.

func projectCustomer(c domain.Customer) CustomerView {
	orders := c.OrderIDs
	if orders == nil {
		orders = []int64{}
	}
	return CustomerView{ID: c.ID, Name: c.Name, Orders: orders}
}

func projectProduct(p domain.Product) ProductView {
	orders := p.OrderIDs
	if orders == nil {
		orders = []int64{}
	}
	return ProductView{ID: p.ID, Description: p.Description, Orders: orders}
}

func projectOrder(o domain.Order) OrderView {
	products := make([]ProductSummary, len(o.Products))
	for i, p := range o.Products {
		products[i] = ProductSummary{ID: p.ID, Description: p.Description}
	}
	return OrderView{
		ID:          o.ID,
		Description: o.Description,
		Customer:    CustomerSummary{ID: o.Customer.ID, Name: o.Customer.Name},
		Products:    products,
	}
}
