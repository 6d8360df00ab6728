package domain

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps page and page size to sane values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Bounds returns the slice window [start, end) for n items.
func (p Pagination) Bounds(n int) (int, int) {
	if n <= 0 || p.Page < 1 || p.PageSize <= 0 {
		return 0, 0
	}
	// Compare in pages so a huge page number cannot overflow the offset.
	if p.Page-1 >= (n+p.PageSize-1)/p.PageSize {
		return n, n
	}
	start := (p.Page - 1) * p.PageSize
	end := n
	if n-start > p.PageSize {
		end = start + p.PageSize
	}
	return start, end
}

