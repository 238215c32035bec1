package entity

import "math"

// ListQuery is the page window and sort token for list endpoints.
// Page is 1-based.
type ListQuery struct {
	Page     int
	PageSize int
	SortBy   string
}

// Offset is the number of rows skipped before the page starts. It saturates
// at math.MaxInt instead of wrapping for very large pages.
func (q ListQuery) Offset() int {
	if q.Page <= 1 || q.PageSize <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PageSize
}

// PastEnd reports whether the page starts after the last of total rows.
func (q ListQuery) PastEnd(total int64) bool {
	return q.Offset() > 0 && int64(q.Offset()) >= total
}
