package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to all of its writers, e.g. log lines to both
// stdout and the rotating log file. A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write reports len(p) as soon as a single writer took the whole of p.
// Errors of the remaining writers are still returned, combined.
func (cw CombinedWriter) Write(p []byte) (int, error) {
	var (
		err      error
		accepted bool
	)
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if written == len(p) {
			accepted = true
		}
	}
	if !accepted {
		return 0, err
	}
	return len(p), err
}
