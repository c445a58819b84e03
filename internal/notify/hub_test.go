package notify

import (
	"testing"
	"time"

	"edudesk/ports"
)

func TestNotifyAndActive(t *testing.T) {
	hub := NewHub()
	hub.Notify("import complete: 12 records", ports.NotifySuccess)
	hub.Notify("export failed", ports.NotifyError)

	active := hub.Active()
	if len(active) != 2 {
		t.Fatalf("got %d notifications, want 2", len(active))
	}
	if active[0].Message != "import complete: 12 records" || active[0].Kind != ports.NotifySuccess {
		t.Errorf("first notification wrong: %+v", active[0])
	}
	if active[0].ID == active[1].ID {
		t.Error("notifications must have distinct ids")
	}
}

func TestAutoDismissAfterInterval(t *testing.T) {
	current := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	hub := NewHub()
	hub.now = func() time.Time { return current }

	hub.Notify("stale", ports.NotifyInfo)
	current = current.Add(DefaultDismissAfter + time.Second)
	hub.Notify("fresh", ports.NotifyInfo)

	active := hub.Active()
	if len(active) != 1 || active[0].Message != "fresh" {
		t.Errorf("expected only the fresh notification, got %+v", active)
	}
}

func TestDismissByID(t *testing.T) {
	hub := NewHub()
	hub.Notify("one", ports.NotifyInfo)
	hub.Notify("two", ports.NotifyInfo)

	id := hub.Active()[0].ID
	hub.Dismiss(id)

	active := hub.Active()
	if len(active) != 1 || active[0].Message != "two" {
		t.Errorf("dismiss removed the wrong entry: %+v", active)
	}
}
