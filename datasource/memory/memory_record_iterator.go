// Package memory provides a RecordIterator over Records already held in memory
package memory

import (
	"github.com/go-sif/samplecsv"
	"github.com/go-sif/samplecsv/datasource"
	errors "github.com/go-sif/samplecsv/errors"
)

type recordIterator struct {
	datasource.EndListeners
	data []samplecsv.Record
	next int
}

// CreateIterator returns a RecordIterator which produces data in order
func CreateIterator(data []samplecsv.Record) samplecsv.RecordIterator {
	return &recordIterator{data: data}
}

// HasNextRecord returns true iff this RecordIterator can produce another Record
func (mi *recordIterator) HasNextRecord() bool {
	return mi.next < len(mi.data)
}

// NextRecord returns the next Record if one is available, or an error
func (mi *recordIterator) NextRecord() (samplecsv.Record, error) {
	if mi.next >= len(mi.data) {
		mi.FireEnd()
		return nil, errors.NoMoreRecordsError{}
	}
	r := mi.data[mi.next]
	mi.next++
	if mi.next == len(mi.data) {
		mi.FireEnd()
	}
	return r, nil
}
