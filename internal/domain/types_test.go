package domain

import "testing"

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		n          int
		start, end int
	}{
		{"first page", 1, 2, 5, 0, 2},
		{"partial last page", 3, 2, 5, 4, 5},
		{"past the end", 4, 2, 5, 5, 5},
		{"no items", 1, 20, 0, 0, 0},
		{"huge page", 1 << 62, 100, 5, 5, 5},
		{"max int page", int(^uint(0) >> 1), MaxPageSize, 5, 5, 5},
	}
	for _, tc := range tests {
		p := Pagination{Page: tc.page, PageSize: tc.size}.Normalize()
		start, end := p.Bounds(tc.n)
		if start != tc.start || end != tc.end {
			t.Fatalf("%s: expected [%d:%d) got [%d:%d)", tc.name, tc.start, tc.end, start, end)
		}
		if start < 0 || start > end || end > tc.n {
			t.Fatalf("%s: window [%d:%d) outside [0:%d]", tc.name, start, end, tc.n)
		}
	}
}

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{Page: -3, PageSize: 1000}.Normalize()
	if p.Page != 1 || p.PageSize != MaxPageSize {
		t.Fatalf("unexpected %+v", p)
	}
	if p := (Pagination{}).Normalize(); p.PageSize != DefaultPageSize {
		t.Fatalf("default page size: %+v", p)
	}
}
