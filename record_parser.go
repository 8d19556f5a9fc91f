package samplecsv

import "io"

// A Parser is capable of turning a raw byte stream into a header and a RecordIterator
type Parser interface {
	// Parse consumes the header from r, if the format has one, and returns an iterator over the
	// remaining Records. header is nil when there is none. onIteratorEnd, if not nil, fires
	// once the iterator is exhausted.
	Parse(r io.Reader, onIteratorEnd func()) (header Record, records RecordIterator, err error)
}
