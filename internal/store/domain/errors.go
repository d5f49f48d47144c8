package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Entity kinds as they appear in error messages and cache namespaces.
// KindProducts is the order workflow's bulk-lookup kind: its message
// enumerates every missing id, even when only one product is missing.
const (
	KindCustomer = "customer"
	KindProduct  = "product"
	KindProducts = "products"
	KindOrder    = "order"
)

// NotFoundError reports that one or more referenced entities do not exist.
// It is returned at the point of detection and inspected with errors.As at
// the HTTP boundary, which maps it to a 404.
type NotFoundError struct {
	Kind string
	IDs  []int64
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Kind == KindProducts:
		return "Not Found Product IDs: " + formatIDList(e.IDs)
	case e.Kind == KindProduct:
		return fmt.Sprintf("Not Found Product by ID %d", e.firstID())
	case e.Kind == KindOrder:
		return fmt.Sprintf("Not Found Order by ID %d", e.firstID())
	default:
		return fmt.Sprintf("Not Found Customer by ID %d", e.firstID())
	}
}

func (e *NotFoundError) firstID() int64 {
	if len(e.IDs) == 0 {
		return 0
	}
	return e.IDs[0]
}

// NotFound builds a NotFoundError for a single missing id.
func NotFound(kind string, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, IDs: []int64{id}}
}

// ProductsNotFound builds a NotFoundError enumerating every missing product
// id. The workflow guarantees ids arrive deduplicated and sorted ascending.
func ProductsNotFound(ids []int64) *NotFoundError {
	return &NotFoundError{Kind: KindProducts, IDs: ids}
}

// formatIDList renders ids as "[2, 5, 9]".
func formatIDList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ValidationError reports malformed or missing input. It is raised before any
// domain logic runs and maps to a 400 at the boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
