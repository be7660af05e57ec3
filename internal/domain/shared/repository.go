package shared

// Filter represents list query options using offset pagination
type Filter struct {
	Limit    int
	Offset   int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// Default and maximum page sizes for admin list endpoints
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Limit:    DefaultLimit,
		Offset:   0,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// Normalize clamps limit and offset into their valid ranges
func (f Filter) Normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.OrderDir != "asc" {
		f.OrderDir = "desc"
	}
	if f.Filters == nil {
		f.Filters = make(map[string]interface{})
	}
	return f
}

// Page is an offset-paginated result
type Page[T any] struct {
	Items  []T
	Count  int64
	Limit  int
	Offset int
}

// NewPage creates a page for the given filter
func NewPage[T any](items []T, count int64, filter Filter) Page[T] {
	return Page[T]{
		Items:  items,
		Count:  count,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
}
