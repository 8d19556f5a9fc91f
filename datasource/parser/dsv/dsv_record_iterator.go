package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/samplecsv"
	"github.com/go-sif/samplecsv/datasource"
	errors "github.com/go-sif/samplecsv/errors"
)

type dsvRecordIterator struct {
	datasource.EndListeners
	reader  *csv.Reader
	hasNext bool
}

// HasNextRecord returns true iff this RecordIterator might produce another Record.
// The end of the stream is only discovered by the NextRecord call which reaches it.
func (dsvi *dsvRecordIterator) HasNextRecord() bool {
	return dsvi.hasNext
}

// NextRecord returns the next Record if one is available, or an error.
// The returned Record is only valid until the next call.
func (dsvi *dsvRecordIterator) NextRecord() (samplecsv.Record, error) {
	if !dsvi.hasNext {
		return nil, errors.NoMoreRecordsError{}
	}
	fields, err := dsvi.reader.Read()
	if err == io.EOF {
		dsvi.finish()
		return nil, errors.NoMoreRecordsError{}
	} else if err != nil {
		return nil, err
	}
	return fields, nil
}

func (dsvi *dsvRecordIterator) finish() {
	dsvi.hasNext = false
	dsvi.FireEnd()
}
