package domain

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults pass through", page: 1, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "zero page is clamped", page: 0, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "negative page is clamped", page: -5, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "zero page size is clamped to one", page: 1, pageSize: 0, wantPage: 1, wantPageSize: 1},
		{name: "negative page size is clamped to one", page: 1, pageSize: -1, wantPage: 1, wantPageSize: 1},
		{name: "oversized page size is capped", page: 1, pageSize: 5000, wantPage: 1, wantPageSize: MaxPageSize},
		{name: "ceiling passes through", page: 1, pageSize: MaxPageSize, wantPage: 1, wantPageSize: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize)

			if p.Page() != tt.wantPage {
				t.Errorf("Page() = %d, want %d", p.Page(), tt.wantPage)
			}
			if p.PageSize() != tt.wantPageSize {
				t.Errorf("PageSize() = %d, want %d", p.PageSize(), tt.wantPageSize)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{name: "first page starts at zero", page: 1, pageSize: 10, wantLimit: 10, wantOffset: 0},
		{name: "second page skips one window", page: 2, pageSize: 10, wantLimit: 10, wantOffset: 10},
		{name: "window scales with page size", page: 3, pageSize: 7, wantLimit: 7, wantOffset: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize)

			if p.Limit() != tt.wantLimit {
				t.Errorf("Limit() = %d, want %d", p.Limit(), tt.wantLimit)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", p.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		pageSize     int
		wantLastPage int
	}{
		{name: "exact multiple", totalRecords: 20, pageSize: 10, wantLastPage: 2},
		{name: "partial last page rounds up", totalRecords: 25, pageSize: 10, wantLastPage: 3},
		{name: "single record", totalRecords: 1, pageSize: 10, wantLastPage: 1},
		{name: "empty result", totalRecords: 0, pageSize: 10, wantLastPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetadata(tt.totalRecords, NewPagination(1, tt.pageSize))

			if m.LastPage != tt.wantLastPage {
				t.Errorf("LastPage = %d, want %d", m.LastPage, tt.wantLastPage)
			}
			if m.TotalRecords != tt.totalRecords {
				t.Errorf("TotalRecords = %d, want %d", m.TotalRecords, tt.totalRecords)
			}
		})
	}
}
