package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/samplecsv"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter  rune // The delimiter separating columns in the file. Defaults to ,
	Comment    rune // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	Header     bool // Whether the first record is a header, which is returned separately and never sampled
	LazyQuotes bool // Tolerate quotes appearing inside unquoted fields, and bare quotes inside quoted fields
}

// Parser produces Records from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Delimiter returns the delimiter this Parser splits fields on
func (p *Parser) Delimiter() rune {
	return p.conf.Delimiter
}

// Parse parses DSV data to produce Records
func (p *Parser) Parse(r io.Reader, onIteratorEnd func()) (samplecsv.Record, samplecsv.RecordIterator, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.LazyQuotes = p.conf.LazyQuotes
	reader.FieldsPerRecord = -1

	// the header is read before record reuse is switched on, since it outlives the next Read
	var header samplecsv.Record
	exhausted := false
	if p.conf.Header {
		fields, err := reader.Read()
		if err == io.EOF {
			exhausted = true
		} else if err != nil {
			return nil, nil, err
		} else {
			header = fields
		}
	}
	reader.ReuseRecord = true

	iterator := &dsvRecordIterator{
		reader:  reader,
		hasNext: true,
	}
	if onIteratorEnd != nil {
		iterator.OnEnd(onIteratorEnd)
	}
	if exhausted {
		iterator.finish()
	}
	return header, iterator, nil
}

var _ samplecsv.Parser = &Parser{}
