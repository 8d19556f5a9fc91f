package jsonl

import (
	"bufio"
	"io"

	"github.com/go-sif/samplecsv"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Columns       []string // gjson paths to project each line onto. If empty, each Record is the raw line as a single field.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces Records from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. When Columns are configured, the column paths form the header,
// and values within the JSON which do not correspond to a column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Projecting returns true iff this Parser extracts columns rather than passing lines through
func (p *Parser) Projecting() bool {
	return len(p.conf.Columns) > 0
}

// Parse parses JSONL data to produce Records
func (p *Parser) Parse(r io.Reader, onIteratorEnd func()) (samplecsv.Record, samplecsv.RecordIterator, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	var header samplecsv.Record
	if p.Projecting() {
		header = samplecsv.Record(p.conf.Columns).Clone()
	}
	iterator := &jsonlRecordIterator{
		parser:  p,
		scanner: scanner,
		hasNext: true,
		fields:  make(samplecsv.Record, len(p.conf.Columns)),
	}
	if onIteratorEnd != nil {
		iterator.OnEnd(onIteratorEnd)
	}
	return header, iterator, nil
}

var _ samplecsv.Parser = &Parser{}
