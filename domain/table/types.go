package table

// Record is one opaque data item as returned by the backend. Nesting is
// arbitrary and optional; no schema is assumed by the engine.
type Record = map[string]interface{}

// CompareAs selects the comparison used when sorting a column.
type CompareAs string

const (
	CompareText   CompareAs = "text"
	CompareNumber CompareAs = "number"
	CompareDate   CompareAs = "date"
)

// SortDirection orders a sorted column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterAll is the sentinel value that disables a discrete filter.
const FilterAll = "all"

// ColumnDefinition declares how one table column is titled, sorted and
// exported. Key and ExportKey are dotted field paths into a record.
type ColumnDefinition struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Sortable  bool      `json:"sortable"`
	ExportKey string    `json:"export_key,omitempty"`
	CompareAs CompareAs `json:"compare_as,omitempty"`
}

// ValuePath is the field path holding the column's display value:
// ExportKey when set, Key otherwise. Columns whose Key points at a nested
// object set ExportKey to the leaf that should be shown, sorted and
// exported in its place.
func (c ColumnDefinition) ValuePath() string {
	if c.ExportKey != "" {
		return c.ExportKey
	}
	return c.Key
}

// FilterState is the filter/search/page state owned by a hosting screen.
type FilterState struct {
	SearchTerm string            `json:"search_term"`
	Filters    map[string]string `json:"filters,omitempty"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// NewFilterState returns the default state for a freshly mounted screen.
func NewFilterState(pageSize int) FilterState {
	if pageSize < 1 {
		pageSize = 1
	}
	return FilterState{
		Filters:  make(map[string]string),
		Page:     1,
		PageSize: pageSize,
	}
}

// SetSearch updates the search term and resets to the first page.
func (s *FilterState) SetSearch(term string) {
	s.SearchTerm = term
	s.Page = 1
}

// SetFilter updates one discrete filter and resets to the first page.
func (s *FilterState) SetFilter(name, value string) {
	if s.Filters == nil {
		s.Filters = make(map[string]string)
	}
	s.Filters[name] = value
	s.Page = 1
}

// SetPageSize changes the page size and resets to the first page so the
// user is never stranded on an out-of-range page.
func (s *FilterState) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	s.PageSize = size
	s.Page = 1
}

// SortState is the active sort key and direction for a screen. A nil key
// keeps the record set in fetch order.
type SortState struct {
	Key       string        `json:"key,omitempty"`
	Direction SortDirection `json:"direction"`
}

// Toggle applies a column-header click: clicking the active key flips the
// direction, clicking a new key resets to ascending.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		if s.Direction == SortAsc {
			s.Direction = SortDesc
		} else {
			s.Direction = SortAsc
		}
		return
	}
	s.Key = key
	s.Direction = SortAsc
}

// PageResult is the clamped, sliced view of a filtered/sorted record set.
type PageResult struct {
	Items       []Record `json:"items"`
	CurrentPage int      `json:"current_page"`
	TotalPages  int      `json:"total_pages"`
	TotalItems  int      `json:"total_items"`
	PageSize    int      `json:"page_size"`
}
