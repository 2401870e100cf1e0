// Package pagination provides page-number pagination over ordered result sets.
//
// The page parameter arrives as an untrusted string (usually a query
// parameter). Coercion is deliberately lenient: a value that does not parse
// as a positive integer falls back to page 1, and a page beyond the end
// falls back to the last page. Callers never see an error for a bad page
// request - the behavior is part of the public contract.
package pagination

import "strconv"

// DefaultPageSize is the listing page size used when config does not
// override it.
const DefaultPageSize = 3

// Page contains one page of results and its position metadata.
// Page numbering is 1-based. An empty sequence still has one (empty) page.
type Page[T any] struct {
	Items       []T  `json:"items"`
	PageNumber  int  `json:"page_number"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// ParsePage converts a raw page parameter into a page number.
// Non-numeric, empty, zero, and negative values all coerce to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate slices items into the requested page.
// pageSize must be >= 1; smaller values are raised to 1.
// Requested pages past the end return the last page.
func Paginate[T any](items []T, pageSize int, requested int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	// Copy so callers can't mutate the backing sequence through the page.
	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Page[T]{
		Items:       pageItems,
		PageNumber:  page,
		TotalPages:  totalPages,
		TotalItems:  len(items),
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// PaginateParam is Paginate with the raw request string, applying the
// lenient coercion rules in one step.
func PaginateParam[T any](items []T, pageSize int, rawPage string) Page[T] {
	return Paginate(items, pageSize, ParsePage(rawPage))
}
