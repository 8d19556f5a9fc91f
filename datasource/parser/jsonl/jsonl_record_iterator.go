package jsonl

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/go-sif/samplecsv"
	"github.com/go-sif/samplecsv/datasource"
	errors "github.com/go-sif/samplecsv/errors"
	"github.com/tidwall/gjson"
)

type jsonlRecordIterator struct {
	datasource.EndListeners
	parser  *Parser
	scanner *bufio.Scanner
	hasNext bool
	line    int
	fields  samplecsv.Record // reused between projected Records
}

// HasNextRecord returns true iff this RecordIterator might produce another Record
func (jsonli *jsonlRecordIterator) HasNextRecord() bool {
	return jsonli.hasNext
}

// NextRecord returns the next Record if one is available, or an error.
// A projected Record is only valid until the next call.
func (jsonli *jsonlRecordIterator) NextRecord() (samplecsv.Record, error) {
	for jsonli.hasNext {
		if !jsonli.scanner.Scan() {
			jsonli.hasNext = false
			jsonli.FireEnd()
			if err := jsonli.scanner.Err(); err != nil {
				return nil, err
			}
			break
		}
		jsonli.line++
		raw := jsonli.scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		if !gjson.ValidBytes(raw) {
			return nil, fmt.Errorf("line %d is not valid JSON", jsonli.line)
		}
		if !jsonli.parser.Projecting() {
			return samplecsv.Record{string(raw)}, nil
		}
		results := gjson.GetManyBytes(raw, jsonli.parser.conf.Columns...)
		for i, res := range results {
			jsonli.fields[i] = res.String()
		}
		return jsonli.fields, nil
	}
	return nil, errors.NoMoreRecordsError{}
}
