package reservoir

import (
	"github.com/go-sif/samplecsv"
	errors "github.com/go-sif/samplecsv/errors"
)

// Sample consumes records to exhaustion and returns a uniform random sample of at most
// conf.Capacity of them. A negative capacity fails before records is touched. Errors
// produced by records stop the pass and are returned unchanged.
func Sample(records samplecsv.RecordIterator, conf *Conf) ([]samplecsv.Record, error) {
	r, err := New(conf)
	if err != nil {
		return nil, err
	}
	r.stats.Start()
	defer r.stats.Finish()
	for records.HasNextRecord() {
		record, err := records.NextRecord()
		if errors.IsNoMoreRecords(err) {
			break
		} else if err != nil {
			return nil, err
		}
		if err = r.Accumulate(record); err != nil {
			return nil, err
		}
	}
	return r.Records(), nil
}
