// Package dsv writes Records as delimiter-separated values, quoting fields only where required
package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/samplecsv"
)

// WriterConf configures a DSV Writer
type WriterConf struct {
	Delimiter rune // The delimiter separating columns. Defaults to ,
	UseCRLF   bool // Terminate lines with \r\n rather than \n
}

// Writer writes Records as DSV
type Writer struct {
	w *csv.Writer
}

// CreateWriter returns a new DSV Writer
func CreateWriter(out io.Writer, conf *WriterConf) *Writer {
	w := csv.NewWriter(out)
	if conf.Delimiter != 0 {
		w.Comma = conf.Delimiter
	}
	w.UseCRLF = conf.UseCRLF
	return &Writer{w: w}
}

// WriteRecord writes a single Record
func (dw *Writer) WriteRecord(r samplecsv.Record) error {
	return dw.w.Write(r)
}

// Flush writes any buffered data to the underlying writer
func (dw *Writer) Flush() error {
	dw.w.Flush()
	return dw.w.Error()
}

var _ samplecsv.RecordWriter = &Writer{}
