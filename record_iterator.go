package samplecsv

// RecordIterator is a generalized interface for iterating over Records, regardless of where they come from.
// Iteration is pull-based and strictly sequential: each Record is produced exactly once, in stream order.
type RecordIterator interface {
	HasNextRecord() bool
	// NextRecord returns the next Record, or an errors.NoMoreRecordsError once the stream is exhausted.
	// The returned Record may share its backing array with the next one; callers which retain it must Clone it.
	NextRecord() (Record, error)
	OnEnd(onEnd func())
}
