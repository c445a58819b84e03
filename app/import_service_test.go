package app

import (
	"context"
	"strings"
	"testing"

	"edudesk/domain/csvimport"
	"edudesk/ports"
)

func importContract() csvimport.Contract {
	return csvimport.Contract{
		Resource: "courses",
		Required: []string{"title", "level", "mode"},
		Fields: []csvimport.FieldSpec{
			{Name: "title", Type: csvimport.FieldText, Required: true, Example: "Intro to Go"},
			{Name: "level", Type: csvimport.FieldEnum, Required: true, Enum: []string{"beginner", "advanced"}, Example: "beginner"},
			{Name: "mode", Type: csvimport.FieldEnum, Required: true, Enum: []string{"online", "onsite"}, Example: "online"},
		},
	}
}

func TestImportDispatchesEveryValidatedRecord(t *testing.T) {
	backend := &fakeBackend{}
	notifier := &recordingNotifier{}
	svc := NewImportService(backend, notifier)

	csvText := strings.Join([]string{
		"title,level,mode",
		"Course A,beginner,online",
		"Course B,advanced,onsite",
		"Course C,beginner,online",
	}, "\n")

	count, err := svc.Import(context.Background(), importContract(), csvText)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if backend.createdCount() != 3 {
		t.Errorf("backend saw %d creates, want 3", backend.createdCount())
	}
	if len(notifier.messages) != 1 || notifier.kinds[0] != ports.NotifySuccess {
		t.Errorf("expected exactly one success notification, got %v", notifier.messages)
	}
	if !strings.Contains(notifier.messages[0], "3") {
		t.Errorf("success message must report the count: %q", notifier.messages[0])
	}
}

func TestImportFailFastDispatchesNothing(t *testing.T) {
	backend := &fakeBackend{}
	notifier := &recordingNotifier{}
	svc := NewImportService(backend, notifier)

	// Row 2 is invalid; rows before and after are valid.
	csvText := strings.Join([]string{
		"title,level,mode",
		"Course A,beginner,online",
		"Course B,wizard,online",
		"Course C,beginner,online",
	}, "\n")

	count, err := svc.Import(context.Background(), importContract(), csvText)
	if err == nil {
		t.Fatal("invalid row must fail the import")
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if backend.createdCount() != 0 {
		t.Errorf("backend saw %d creates, want 0 — nothing may be dispatched", backend.createdCount())
	}
	if len(notifier.messages) != 1 || notifier.kinds[0] != ports.NotifyError {
		t.Errorf("expected exactly one error notification, got %v", notifier.messages)
	}
}

func TestImportHeaderGateDispatchesNothing(t *testing.T) {
	backend := &fakeBackend{}
	notifier := &recordingNotifier{}
	svc := NewImportService(backend, notifier)

	_, err := svc.Import(context.Background(), importContract(), "title,level\nCourse A,beginner\n")
	if err == nil {
		t.Fatal("missing required column must fail the import")
	}
	if !strings.Contains(err.Error(), "mode") {
		t.Errorf("error must list the missing column: %v", err)
	}
	if backend.createdCount() != 0 {
		t.Errorf("backend saw %d creates, want 0", backend.createdCount())
	}
}

// A create failure mid-batch surfaces as an overall import failure, but
// creates that already succeeded are not rolled back.
func TestImportDispatchFailureKeepsEarlierCreates(t *testing.T) {
	backend := &fakeBackend{failCreateFor: "Course B"}
	notifier := &recordingNotifier{}
	svc := NewImportService(backend, notifier)

	csvText := strings.Join([]string{
		"title,level,mode",
		"Course A,beginner,online",
		"Course B,advanced,onsite",
	}, "\n")

	count, err := svc.Import(context.Background(), importContract(), csvText)
	if err == nil {
		t.Fatal("dispatch failure must surface as an import failure")
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 on failure", count)
	}
	if backend.createdCount() != 1 {
		t.Errorf("succeeded creates = %d, want 1 kept (no rollback)", backend.createdCount())
	}
	if len(notifier.messages) != 1 || notifier.kinds[0] != ports.NotifyError {
		t.Errorf("expected exactly one error notification, got %v", notifier.messages)
	}
}

func TestTemplateRoundTrips(t *testing.T) {
	svc := NewImportService(&fakeBackend{}, &recordingNotifier{})

	data, err := svc.Template(importContract())
	if err != nil {
		t.Fatalf("Template failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "title,level,mode") {
		t.Errorf("template header wrong: %s", data)
	}
}
