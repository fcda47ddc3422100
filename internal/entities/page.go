package entities

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PageRequest struct {
	PageNo   int
	PageSize int
}

// Normalize подставляет значения по умолчанию вместо некорректных.
func (p PageRequest) Normalize() PageRequest {
	if p.PageNo < 1 {
		p.PageNo = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

func (p PageRequest) Offset() uint64 {
	p = p.Normalize()
	return uint64((p.PageNo - 1) * p.PageSize)
}

func (p PageRequest) Limit() uint64 {
	return uint64(p.Normalize().PageSize)
}

type Page[T any] struct {
	Items    []T
	Total    int
	PageNo   int
	PageSize int
}

func NewPage[T any](req PageRequest, total int, items []T) Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, PageNo: req.PageNo, PageSize: req.PageSize}
}

func (p Page[T]) TotalPages() int {
	if p.PageSize == 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
