package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Pagination is an immutable page window. Construct it with NewPagination so
// that out-of-range client input is clamped exactly once.
type Pagination struct {
	page     int
	pageSize int
}

func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Pagination{page: page, pageSize: pageSize}
}

func (p Pagination) Page() int {
	return p.page
}

func (p Pagination) PageSize() int {
	return p.pageSize
}

func (p Pagination) Limit() int {
	return p.pageSize
}

func (p Pagination) Offset() int {
	return (p.page - 1) * p.pageSize
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords int, p Pagination) *Metadata {
	return &Metadata{
		CurrentPage:  p.Page(),
		FirstPage:    1,
		LastPage:     (totalRecords + p.PageSize() - 1) / p.PageSize(),
		PageSize:     p.PageSize(),
		TotalRecords: totalRecords,
	}
}
