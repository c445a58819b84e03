package ports

// NotificationKind classifies a toast notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notifier is the transient-UI message bus injected into the engine's
// callers. Each operation outcome produces exactly one notification;
// presentation (toast rendering, auto-dismiss) lives behind this port.
type Notifier interface {
	Notify(message string, kind NotificationKind)
}
