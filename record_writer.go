package samplecsv

// A RecordWriter serializes Records to an output stream
type RecordWriter interface {
	WriteRecord(r Record) error // WriteRecord serializes a single Record, possibly buffering it
	Flush() error               // Flush writes any buffered data and reports any error which occurred while writing
}
