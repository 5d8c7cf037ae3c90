package summarizer

import (
	"fmt"
	"io"
)

// Writer prints formatted summaries.
type Writer struct {
	formatter Formatter
	out       io.Writer
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, out io.Writer) *Writer {
	return &Writer{
		formatter: formatter,
		out:       out,
	}
}

// Write formats the summary to the writer's output.
func (w *Writer) Write(summary *Summary) error {
	if _, err := io.WriteString(w.out, w.formatter.Format(summary)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
