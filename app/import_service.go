package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"edudesk/domain/csvimport"
	"edudesk/domain/table"
	"edudesk/internal"
	"edudesk/ports"
)

// ImportService runs the CSV bulk-import pipeline for a screen: header
// validation, fail-fast row validation, then one create call per validated
// record. The create calls are dispatched concurrently with no ordering
// and no atomicity: if one fails after others succeeded, the earlier
// creates stay applied server-side. There is no rollback; that is the
// documented dispatch contract, enforced only up to validation.
type ImportService struct {
	backend  ports.BackendPort
	notifier ports.Notifier
	logger   *internal.Logger
}

// NewImportService creates an import service.
func NewImportService(backend ports.BackendPort, notifier ports.Notifier) *ImportService {
	return &ImportService{
		backend:  backend,
		notifier: notifier,
		logger:   internal.DefaultLogger,
	}
}

// Import validates the uploaded text and dispatches the batch. It returns
// the number of records imported; on any validation failure nothing at all
// is dispatched. Exactly one notification reports the outcome.
func (s *ImportService) Import(ctx context.Context, contract csvimport.Contract, text string) (int, error) {
	records, err := csvimport.Run(text, contract)
	if err != nil {
		s.logger.Warn("import for %s rejected: %v", contract.Resource, err)
		s.notifier.Notify(fmt.Sprintf("Import failed: %v", err), ports.NotifyError)
		return 0, err
	}

	if err := s.dispatch(ctx, contract.Resource, records); err != nil {
		s.logger.Error("import dispatch for %s failed: %v", contract.Resource, err)
		s.notifier.Notify(fmt.Sprintf("Import failed during dispatch: %v", err), ports.NotifyError)
		return 0, err
	}

	s.notifier.Notify(fmt.Sprintf("Imported %d records", len(records)), ports.NotifySuccess)
	return len(records), nil
}

// dispatch launches every create concurrently and waits for all of them to
// settle, reporting the first error.
func (s *ImportService) dispatch(ctx context.Context, resource string, records []table.Record) error {
	var g errgroup.Group
	for _, record := range records {
		g.Go(func() error {
			return s.backend.Create(ctx, resource, record)
		})
	}
	return g.Wait()
}

// Template returns the screen's sample CSV. Always available, independent
// of the import state machine.
func (s *ImportService) Template(contract csvimport.Contract) ([]byte, error) {
	return csvimport.SampleTemplate(contract)
}
