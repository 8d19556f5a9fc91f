package errors

import (
	"fmt"
)

// InvalidArgumentError occurs when an operation is invoked with an argument outside of its domain
type InvalidArgumentError struct {
	Name   string
	Value  interface{}
	Reason string
}

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Name, e.Value, e.Reason)
}

// NoMoreRecordsError occurs when there are no more Records in a RecordIterator
type NoMoreRecordsError struct{}

// Error returns a textual representation of this NoMoreRecordsError
func (e NoMoreRecordsError) Error() string {
	return "No more records"
}

// SniffError occurs when the dialect of a delimited-text stream cannot be determined
type SniffError struct{ Reason string }

// Error returns a textual representation of this SniffError
func (e SniffError) Error() string {
	return fmt.Sprintf("could not determine delimiter: %s", e.Reason)
}

// IsNoMoreRecords returns true iff err signals the end of a RecordIterator
func IsNoMoreRecords(err error) bool {
	_, ok := err.(NoMoreRecordsError)
	return ok
}
