package app

import (
	"edudesk/domain/table"
)

// TableService derives the visible page from a client-held record set. The
// pipeline is strictly filter, then sort, then paginate; it is synchronous,
// deterministic for a fixed input and state, and never mutates the record
// set it is given.
type TableService struct{}

// NewTableService creates the table engine facade used by every screen.
func NewTableService() *TableService {
	return &TableService{}
}

// BuildPage runs the full pipeline for one screen state.
func (s *TableService) BuildPage(records []table.Record, screen Screen, filter table.FilterState, sortState table.SortState) table.PageResult {
	filtered := table.Apply(records, filter, screen.SearchableFields)
	sorted := table.Sort(filtered, sortState, screen.Columns)
	return table.Paginate(sorted, filter.Page, filter.PageSize)
}

// BuildFullSet runs filter and sort without pagination; exports and print
// documents operate on this set.
func (s *TableService) BuildFullSet(records []table.Record, screen Screen, filter table.FilterState, sortState table.SortState) []table.Record {
	filtered := table.Apply(records, filter, screen.SearchableFields)
	return table.Sort(filtered, sortState, screen.Columns)
}
