package printer

import (
	"io"

	"edudesk/internal/errors"
)

// WriterSurface delivers a print document to an io.Writer — in production
// the HTTP response the client opens in a new browser window, in tests a
// buffer. Once Open returns there is no way to recall the document.
type WriterSurface struct {
	w io.Writer
}

// NewWriterSurface wraps a writer as a print surface.
func NewWriterSurface(w io.Writer) *WriterSurface {
	return &WriterSurface{w: w}
}

// Open writes the finished document to the surface.
func (s *WriterSurface) Open(document string) error {
	if _, err := io.WriteString(s.w, document); err != nil {
		return errors.Wrap(err, "could not deliver print document")
	}
	return nil
}
