package ports

// PrintSurface receives a finished print document. The production surface
// is the browser window the client opens for the generated HTML; tests
// assert on the document string instead of on OS print behavior. Once a
// document is handed over there is no abort hook.
type PrintSurface interface {
	Open(document string) error
}
