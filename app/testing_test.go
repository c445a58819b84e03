package app

import (
	"context"
	"sync"

	"edudesk/domain/table"
	"edudesk/ports"
)

// fakeBackend records calls and serves a canned record set.
type fakeBackend struct {
	mu      sync.Mutex
	records []table.Record
	created []table.Record
	// failCreateFor makes Create fail for records whose "title" matches.
	failCreateFor string
	fetchErr      error
}

func (f *fakeBackend) List(ctx context.Context, resource string, query ports.ListQuery) (*ports.ListResult, error) {
	return &ports.ListResult{Records: f.records}, nil
}

func (f *fakeBackend) FetchAll(ctx context.Context, resource string, params map[string]string) ([]table.Record, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.records, nil
}

func (f *fakeBackend) Create(ctx context.Context, resource string, record table.Record) error {
	if f.failCreateFor != "" && record["title"] == f.failCreateFor {
		return context.DeadlineExceeded
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, record)
	return nil
}

func (f *fakeBackend) Update(ctx context.Context, resource, id string, record table.Record) error {
	return nil
}

func (f *fakeBackend) Delete(ctx context.Context, resource, id string) error {
	return nil
}

func (f *fakeBackend) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

// recordingNotifier captures every notification for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	kinds    []ports.NotificationKind
}

func (r *recordingNotifier) Notify(message string, kind ports.NotificationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	r.kinds = append(r.kinds, kind)
}
