package jsonl

import (
	"strings"
	"testing"

	"github.com/go-sif/samplecsv"
	errors "github.com/go-sif/samplecsv/errors"
	"github.com/stretchr/testify/require"
)

const testData = `{"id": 1, "user": {"name": "ada"}, "tags": ["x"]}

{"id": 2, "user": {"name": "grace"}}
`

func collect(t *testing.T, it samplecsv.RecordIterator) []samplecsv.Record {
	var result []samplecsv.Record
	for it.HasNextRecord() {
		r, err := it.NextRecord()
		if errors.IsNoMoreRecords(err) {
			break
		}
		require.Nil(t, err)
		result = append(result, r.Clone())
	}
	return result
}

func TestRawLines(t *testing.T) {
	ended := false
	parser := CreateParser(&ParserConf{})
	header, it, err := parser.Parse(strings.NewReader(testData), func() { ended = true })
	require.Nil(t, err)
	require.Nil(t, header)
	records := collect(t, it)
	require.Len(t, records, 2)
	require.Equal(t, `{"id": 2, "user": {"name": "grace"}}`, records[1][0])
	require.True(t, ended)
}

func TestProjectedColumns(t *testing.T) {
	parser := CreateParser(&ParserConf{Columns: []string{"id", "user.name", "tags.0"}})
	header, it, err := parser.Parse(strings.NewReader(testData), nil)
	require.Nil(t, err)
	require.Equal(t, samplecsv.Record{"id", "user.name", "tags.0"}, header)
	require.Equal(t, []samplecsv.Record{
		{"1", "ada", "x"},
		{"2", "grace", ""},
	}, collect(t, it))
}

func TestInvalidLine(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	_, it, err := parser.Parse(strings.NewReader("{\"ok\": true}\n{nope\n"), nil)
	require.Nil(t, err)
	_, err = it.NextRecord()
	require.Nil(t, err)
	_, err = it.NextRecord()
	require.EqualError(t, err, "line 2 is not valid JSON")
}
