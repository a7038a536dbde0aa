package ui

import (
	"fmt"
	"io"
)

// Steps prints numbered progress for a fixed sequence of pipeline
// stages.
type Steps struct {
	out   io.Writer
	total int
	n     int
}

// NewSteps creates a step printer for a pipeline of total stages.
func NewSteps(out io.Writer, total int) *Steps {
	return &Steps{out: out, total: total}
}

// Start announces the next stage.
func (s *Steps) Start(label string) {
	s.n++
	_, _ = fmt.Fprintf(s.out, "[%d/%d] %s\n", s.n, s.total, label)
}

// Log prints an informational message under the current stage.
func (s *Steps) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, "  "+format+"\n", args...)
}
