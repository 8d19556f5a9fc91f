package dsv

import (
	"encoding/csv"
	"strconv"
	"strings"
	"unicode/utf8"

	errors "github.com/go-sif/samplecsv/errors"
)

// SniffSize is the number of leading bytes of a stream which are inspected to detect its dialect
const SniffSize = 4098

// maxHeaderCheckRows bounds the number of rows compared against a candidate header
const maxHeaderCheckRows = 20

// candidateDelimiters are considered in order of preference
var candidateDelimiters = []rune{',', '\t', ';', '|', ':'}

// Dialect describes the encoding of a DSV stream
type Dialect struct {
	Delimiter rune
	HasHeader bool
	UseCRLF   bool // Whether lines are terminated by \r\n rather than \n
}

// Sniff detects the Dialect of a DSV stream from sample, its first bytes. atEOF reports whether
// sample holds the whole stream; if not, the trailing partial line is ignored. A SniffError is
// returned when no candidate delimiter splits the sample consistently into two or more columns.
func Sniff(sample []byte, atEOF bool) (*Dialect, error) {
	text := sampleText(sample, atEOF)
	if strings.TrimSpace(text) == "" {
		return nil, errors.SniffError{Reason: "sample is empty"}
	}
	var (
		best      rune
		bestScore float64
		bestWidth int
		bestRows  [][]string
	)
	for _, d := range candidateDelimiters {
		if !strings.ContainsRune(text, d) {
			continue
		}
		rows := readRows(text, d)
		width, count := modalWidth(rows)
		if width < 2 {
			continue
		}
		score := float64(count) / float64(len(rows))
		if score > bestScore || (score == bestScore && width > bestWidth) {
			best, bestScore, bestWidth, bestRows = d, score, width, rows
		}
	}
	if best == 0 {
		return nil, errors.SniffError{Reason: "no candidate delimiter produced more than one column"}
	}
	return &Dialect{
		Delimiter: best,
		HasHeader: hasHeader(bestRows),
		UseCRLF:   strings.Contains(text, "\r\n"),
	}, nil
}

// SniffHeader reports whether the first row of sample looks like a header when split on delimiter.
// A column votes for a header when the first row's value differs in kind (numeric or not) or in
// length from the values consistently found beneath it.
func SniffHeader(sample []byte, atEOF bool, delimiter rune) bool {
	return hasHeader(readRows(sampleText(sample, atEOF), delimiter))
}

func sampleText(sample []byte, atEOF bool) string {
	text := string(sample)
	if !atEOF {
		if i := strings.LastIndexByte(text, '\n'); i >= 0 {
			text = text[:i+1]
		}
	}
	return text
}

// readRows parses as many rows from text as possible, stopping at the first malformed one
func readRows(text string, delimiter rune) [][]string {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	var rows [][]string
	for {
		row, err := reader.Read()
		if err != nil {
			return rows
		}
		rows = append(rows, row)
	}
}

// modalWidth returns the most common number of fields per row, and how many rows have it.
// Ties go to the wider row.
func modalWidth(rows [][]string) (width int, count int) {
	counts := make(map[int]int)
	for _, r := range rows {
		counts[len(r)]++
	}
	for w, c := range counts {
		if c > count || (c == count && w > width) {
			width, count = w, c
		}
	}
	return
}

// columnKind is either numeric, or a fixed length of text
type columnKind struct {
	numeric bool
	length  int
}

func kindOf(value string) columnKind {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return columnKind{numeric: true}
	}
	return columnKind{length: utf8.RuneCountInString(value)}
}

func hasHeader(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}
	header := rows[0]
	kinds := make(map[int]columnKind, len(header))
	inconsistent := make(map[int]bool)
	checked := 0
	for _, row := range rows[1:] {
		if checked >= maxHeaderCheckRows {
			break
		}
		if len(row) != len(header) {
			continue
		}
		checked++
		for col, value := range row {
			if inconsistent[col] {
				continue
			}
			k := kindOf(value)
			if prev, ok := kinds[col]; !ok {
				kinds[col] = k
			} else if prev != k {
				delete(kinds, col)
				inconsistent[col] = true
			}
		}
	}
	votes := 0
	for col, k := range kinds {
		if k.numeric {
			if kindOf(header[col]).numeric {
				votes--
			} else {
				votes++
			}
		} else if utf8.RuneCountInString(header[col]) != k.length {
			votes++
		} else {
			votes--
		}
	}
	return votes > 0
}
