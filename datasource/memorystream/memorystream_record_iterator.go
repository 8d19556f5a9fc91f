// Package memorystream provides a RecordIterator which generates Records on demand,
// so that arbitrarily long streams can be produced without holding them in memory.
package memorystream

import (
	"github.com/go-sif/samplecsv"
	"github.com/go-sif/samplecsv/datasource"
	errors "github.com/go-sif/samplecsv/errors"
)

// Unbounded may be passed as a limit to produce a stream which never ends
const Unbounded int64 = -1

type recordIterator struct {
	datasource.EndListeners
	generator func(idx int64) (samplecsv.Record, error)
	limit     int64
	idx       int64
}

// CreateIterator returns a RecordIterator which calls generator once per Record, with the
// Record's stream position, until limit Records have been produced. A generator error
// is returned from NextRecord as-is.
func CreateIterator(limit int64, generator func(idx int64) (samplecsv.Record, error)) samplecsv.RecordIterator {
	return &recordIterator{generator: generator, limit: limit}
}

// HasNextRecord returns true iff this RecordIterator can produce another Record
func (mi *recordIterator) HasNextRecord() bool {
	return mi.limit == Unbounded || mi.idx < mi.limit
}

// NextRecord returns the next Record if one is available, or an error
func (mi *recordIterator) NextRecord() (samplecsv.Record, error) {
	if !mi.HasNextRecord() {
		mi.FireEnd()
		return nil, errors.NoMoreRecordsError{}
	}
	r, err := mi.generator(mi.idx)
	if err != nil {
		return nil, err
	}
	mi.idx++
	if !mi.HasNextRecord() {
		mi.FireEnd()
	}
	return r, nil
}
