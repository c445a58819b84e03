package app

import (
	"context"
	"fmt"
	"time"

	"edudesk/adapters/excel"
	"edudesk/domain/table"
	"edudesk/internal"
	"edudesk/ports"
)

// ExportService turns a screen's filtered view into a downloadable
// spreadsheet. The record set is re-fetched unpaginated from the backend,
// then filtered and sorted exactly like the on-screen table, so the file
// matches what the user sees across every page.
type ExportService struct {
	backend  ports.BackendPort
	notifier ports.Notifier
	tables   *TableService
	logger   *internal.Logger
	now      func() time.Time
}

// NewExportService creates an export service.
func NewExportService(backend ports.BackendPort, notifier ports.Notifier, tables *TableService) *ExportService {
	return &ExportService{
		backend:  backend,
		notifier: notifier,
		tables:   tables,
		logger:   internal.DefaultLogger,
		now:      time.Now,
	}
}

// Export builds the workbook and its filter-aware filename for one screen
// state. Exactly one notification reports the outcome.
func (s *ExportService) Export(ctx context.Context, screen Screen, filter table.FilterState, sortState table.SortState) (string, []byte, error) {
	records, err := s.backend.FetchAll(ctx, screen.Resource, activeFilters(filter))
	if err != nil {
		s.logger.Error("export fetch for %s failed: %v", screen.Resource, err)
		s.notifier.Notify(fmt.Sprintf("Export failed: could not load %s", screen.Title), ports.NotifyError)
		return "", nil, err
	}

	visible := s.tables.BuildFullSet(records, screen, filter, sortState)
	data, err := excel.Export(visible, screen.Columns)
	if err != nil {
		s.logger.Error("export for %s failed: %v", screen.Resource, err)
		s.notifier.Notify(fmt.Sprintf("Export failed: %v", err), ports.NotifyError)
		return "", nil, err
	}

	filename := excel.Filename(screen.Name, s.now(), excel.FilterTokens(filter))
	s.notifier.Notify(fmt.Sprintf("Exported %d %s records", len(visible), screen.Title), ports.NotifySuccess)
	return filename, data, nil
}

// activeFilters forwards non-default discrete filters to the backend so
// the unpaginated fetch stays as small as the screen's view.
func activeFilters(filter table.FilterState) map[string]string {
	params := make(map[string]string)
	for name, value := range filter.Filters {
		if value != "" && value != table.FilterAll {
			params[name] = value
		}
	}
	return params
}
