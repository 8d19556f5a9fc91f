// Package jsonl writes single-field Records as JSON Lines, one raw line per Record
package jsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-sif/samplecsv"
)

// Writer writes raw JSON lines
type Writer struct {
	w *bufio.Writer
}

// CreateWriter returns a new JSONL Writer
func CreateWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(out)}
}

// WriteRecord writes the single field of r followed by a newline
func (jw *Writer) WriteRecord(r samplecsv.Record) error {
	if len(r) != 1 {
		return fmt.Errorf("a JSON line record must have exactly one field, got %d", len(r))
	}
	if _, err := jw.w.WriteString(r[0]); err != nil {
		return err
	}
	return jw.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer
func (jw *Writer) Flush() error {
	return jw.w.Flush()
}

var _ samplecsv.RecordWriter = &Writer{}
