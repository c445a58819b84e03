package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"edudesk/ports"
)

// DefaultDismissAfter is how long a toast stays visible before it is
// dropped from the feed.
const DefaultDismissAfter = 5 * time.Second

// Notification is one toast in the feed.
type Notification struct {
	ID      string                 `json:"id"`
	Message string                 `json:"message"`
	Kind    ports.NotificationKind `json:"kind"`
	Created time.Time              `json:"created"`
}

// Hub collects operation-outcome notifications for the UI to poll. Each
// operation emits exactly one notification; entries auto-dismiss after a
// fixed interval instead of piling up.
type Hub struct {
	mu           sync.Mutex
	entries      []Notification
	dismissAfter time.Duration
	now          func() time.Time
}

// NewHub creates a hub with the default dismiss interval.
func NewHub() *Hub {
	return &Hub{
		dismissAfter: DefaultDismissAfter,
		now:          time.Now,
	}
}

var _ ports.Notifier = (*Hub)(nil)

// Notify appends one notification to the feed.
func (h *Hub) Notify(message string, kind ports.NotificationKind) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, Notification{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		Created: h.now(),
	})
}

// Active returns the notifications that have not yet expired, pruning the
// rest.
func (h *Hub) Active() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	cutoff := h.now().Add(-h.dismissAfter)
	kept := h.entries[:0]
	for _, n := range h.entries {
		if n.Created.After(cutoff) {
			kept = append(kept, n)
		}
	}
	h.entries = kept

	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// Dismiss removes one notification by id before its interval elapses.
func (h *Hub) Dismiss(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, n := range h.entries {
		if n.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}
