package query

import "math"

// Pagination is a 1-indexed page window.
type Pagination struct {
	Limit int
	Page  int
}

func (p Pagination) normalizedLimit() int {
	if p.Limit < 1 {
		return DefaultLimit
	}

	return p.Limit
}

func (p Pagination) normalizedPage() int {
	if p.Page < 1 {
		return DefaultPage
	}

	return p.Page
}

// Overflows reports whether the page starts beyond what an int64 offset can hold.
func (p Pagination) Overflows() bool {
	before := int64(p.normalizedPage() - 1)

	return before > 0 && int64(p.normalizedLimit()) > math.MaxInt64/before
}

// Skip is the number of matching documents before the page starts. It
// saturates at math.MaxInt64 instead of wrapping.
func (p Pagination) Skip() int64 {
	if p.Overflows() {
		return math.MaxInt64
	}

	return int64(p.normalizedPage()-1) * int64(p.normalizedLimit())
}

// TotalPages is ceil(total / limit).
func (p Pagination) TotalPages(total int64) int64 {
	limit := int64(p.normalizedLimit())

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return pages
}

// CurrentPage is the page number reported back to callers.
func (p Pagination) CurrentPage() int {
	return p.normalizedPage()
}
