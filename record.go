package samplecsv

// A Record is an ordered sequence of field values from a delimited-record stream.
// The sampler never inspects the fields of a Record.
type Record []string

// Clone returns a copy of this Record which does not share a backing array with it
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	copy(c, r)
	return c
}
