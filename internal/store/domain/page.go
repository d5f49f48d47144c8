package domain

import "strings"

// Pagination defaults. They match the public API contract: unless the caller
// overrides them, listings return the newest 50 records first.
const (
	DefaultPageSize = 50
	DefaultSort     = "id,desc"
	MaxPageSize     = 500
)

// PageRequest describes one slice of an ordered listing. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

// DefaultPageRequest returns the first page with the default size and sort.
func DefaultPageRequest() PageRequest {
	return PageRequest{Page: 0, Size: DefaultPageSize, Sort: DefaultSort}
}

// Normalize clamps out-of-range values and canonicalises the sort spec so
// that equivalent requests produce identical cache keys.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	switch strings.ToLower(strings.TrimSpace(p.Sort)) {
	case "id,asc", "id":
		p.Sort = "id,asc"
	default:
		p.Sort = DefaultSort
	}
	return p
}

// Descending reports whether the normalized sort orders by descending id.
func (p PageRequest) Descending() bool {
	return p.Sort != "id,asc"
}

// Offset is the number of records to skip for this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a larger result set plus total-count metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a Page from one slice of content and the total count of
// matching records.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// MapPage applies fn to every element, keeping the paging metadata. Used by
// the projection layer to turn a page of records into a page of views.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
