package models

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100

	// maxOffset keeps Offset within a 32-bit signed range on every platform.
	maxOffset = math.MaxInt32
)

// PageRequest carries the paging and filtering parameters of a list call.
type PageRequest struct {
	Page    int
	PerPage int
	Search  string // case-insensitive substring filter on the entity's text field
}

// NewPageRequest normalizes page and perPage, falling back to the defaults
// for missing or non-positive values. perPage is capped at MaxPerPage and
// page is clamped so that Offset never exceeds maxOffset.
func NewPageRequest(page, perPage int, search string) PageRequest {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page < 1 {
		page = DefaultPage
	}
	if lastPage := maxOffset/perPage + 1; page > lastPage {
		page = lastPage
	}
	return PageRequest{Page: page, PerPage: perPage, Search: search}
}

// Offset returns the number of records to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages returns ceil(total/perPage).
func (p PageRequest) TotalPages(total int64) int64 {
	if p.PerPage < 1 {
		return 0
	}
	per := int64(p.PerPage)
	pages := total / per
	if total%per != 0 {
		pages++
	}
	return pages
}

// QuantityRange bounds stock quantities, both ends inclusive. Nil means unbounded.
type QuantityRange struct {
	Min *int
	Max *int
}

// Contains reports whether q lies within the range.
func (r QuantityRange) Contains(q int) bool {
	if r.Min != nil && q < *r.Min {
		return false
	}
	if r.Max != nil && q > *r.Max {
		return false
	}
	return true
}
