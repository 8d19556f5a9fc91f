package sampler

import (
	"io"
	"os"

	errors "github.com/go-sif/samplecsv/errors"
	"github.com/go-sif/samplecsv/logging"
	"github.com/spf13/afero"
)

// Format identifies the record format of the input
type Format string

const (
	// CSV is delimiter-separated values, with the delimiter and header detected automatically
	CSV Format = "csv"
	// JSONL is JSON Lines, one record per line
	JSONL Format = "jsonl"
)

// DefaultCapacity is the sample size used when none is configured
const DefaultCapacity = 1000

// Conf configures a sampling run
type Conf struct {
	Path          string          // The input path, or "-" for Stdin
	Capacity      int             // The number of records to sample. Must not be negative.
	PreserveOrder bool            // Output the sample in input order
	Seed          *uint64         // Seeds the random draws for a reproducible run. Randomly seeded if nil.
	Format        Format          // The input format. Defaults to CSV.
	Delimiter     rune            // Overrides the detected CSV delimiter, if not 0
	Header        *bool           // Overrides CSV header detection, if not nil
	Columns       []string        // gjson paths to project JSONL records onto. JSONL records pass through unchanged if empty.
	Fs            afero.Fs        // The filesystem Path is opened on. Defaults to the OS filesystem.
	Stdin         io.Reader       // Read when Path is "-". Defaults to os.Stdin.
	Logger        *logging.Logger // Defaults to a Logger which discards everything.
}

// validate checks conf and fills in defaults
func (conf *Conf) validate() error {
	if conf.Capacity < 0 {
		return errors.InvalidArgumentError{Name: "capacity", Value: conf.Capacity, Reason: "must not be negative"}
	}
	if conf.Format == "" {
		conf.Format = CSV
	}
	if conf.Format != CSV && conf.Format != JSONL {
		return errors.InvalidArgumentError{Name: "format", Value: conf.Format, Reason: "must be csv or jsonl"}
	}
	if conf.Format == CSV && len(conf.Columns) > 0 {
		return errors.InvalidArgumentError{Name: "columns", Value: conf.Columns, Reason: "only apply to jsonl input"}
	}
	if conf.Delimiter == '"' || conf.Delimiter == '\r' || conf.Delimiter == '\n' {
		return errors.InvalidArgumentError{Name: "delimiter", Value: string(conf.Delimiter), Reason: "cannot be a quote or line break"}
	}
	if conf.Path == "" {
		return errors.InvalidArgumentError{Name: "path", Value: conf.Path, Reason: "must not be empty"}
	}
	if conf.Fs == nil {
		conf.Fs = afero.NewOsFs()
	}
	if conf.Stdin == nil {
		conf.Stdin = os.Stdin
	}
	if conf.Logger == nil {
		conf.Logger = logging.Discard()
	}
	return nil
}
