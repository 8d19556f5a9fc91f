package sampler

import (
	"context"

	"github.com/go-sif/samplecsv"
)

// contextIterator stops a RecordIterator once its context is done
type contextIterator struct {
	ctx context.Context
	samplecsv.RecordIterator
}

func (ci *contextIterator) NextRecord() (samplecsv.Record, error) {
	if err := ci.ctx.Err(); err != nil {
		return nil, err
	}
	return ci.RecordIterator.NextRecord()
}
