package sampler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-sif/samplecsv"
	dsvsink "github.com/go-sif/samplecsv/datasink/dsv"
	jsonlsink "github.com/go-sif/samplecsv/datasink/jsonl"
	"github.com/go-sif/samplecsv/datasource/file"
	"github.com/go-sif/samplecsv/datasource/parser/dsv"
	"github.com/go-sif/samplecsv/datasource/parser/jsonl"
	"github.com/go-sif/samplecsv/logging"
	"github.com/go-sif/samplecsv/random"
	"github.com/go-sif/samplecsv/reservoir"
	"github.com/go-sif/samplecsv/stats"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// Result describes a completed sampling run
type Result struct {
	RunID       string
	Header      samplecsv.Record // nil if the input had no header
	Delimiter   rune             // the delimiter of the output, or 0 for raw JSON lines
	Compression file.Compression
	Seen        int64 // the number of body records read
	Sampled     int
	Runtime     time.Duration
}

// Run samples the input described by conf and writes the header, if any, followed by the
// sample to out. Errors from closing the input or flushing the output are combined with
// any error from the run itself.
func Run(ctx context.Context, conf *Conf, out io.Writer) (result *Result, err error) {
	if err = conf.validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	result = &Result{RunID: id.String()}
	logger := conf.Logger.With(fmt.Sprintf("run %s", result.RunID))

	source, err := file.Open(conf.Fs, conf.Path, conf.Stdin)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := source.Close(); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("unable to close %s: %w", source.Name(), cerr))
		}
	}()
	result.Compression = source.Compression()
	logger.Debugf("opened %s (compression: %s)", source.Name(), source.Compression())

	parser, writer, err := configure(conf, source, out, result, logger)
	if err != nil {
		return nil, err
	}
	header, records, err := parser.Parse(source, func() {
		logger.Debugf("reached the end of %s", source.Name())
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read header of %s: %w", source.Name(), err)
	}
	result.Header = header

	rng := random.NewRandomlySeeded()
	if conf.Seed != nil {
		rng = random.NewSeeded(*conf.Seed)
	}
	st := &stats.SampleStatistics{}
	sample, err := reservoir.Sample(&contextIterator{ctx: ctx, RecordIterator: records}, &reservoir.Conf{
		Capacity:      conf.Capacity,
		PreserveOrder: conf.PreserveOrder,
		Random:        rng,
		Stats:         st,
	})
	result.Seen = st.GetNumRecordsSeen()
	result.Runtime = st.GetRuntime()
	if err != nil {
		return nil, fmt.Errorf("sampling %s stopped after %d records: %w", source.Name(), result.Seen, err)
	}
	result.Sampled = len(sample)
	logger.Infof("sampled %s of %s records from %s in %s (%s replacements)",
		humanize.Comma(int64(result.Sampled)), humanize.Comma(result.Seen), source.Name(),
		result.Runtime, humanize.Comma(st.GetNumRecordsReplaced()))

	if header != nil {
		if err = writer.WriteRecord(header); err != nil {
			return nil, fmt.Errorf("unable to write header: %w", err)
		}
	}
	for _, r := range sample {
		if err = writer.WriteRecord(r); err != nil {
			return nil, fmt.Errorf("unable to write sample: %w", err)
		}
	}
	if err = writer.Flush(); err != nil {
		return nil, fmt.Errorf("unable to write sample: %w", err)
	}
	return result, nil
}

// configure chooses the Parser for the input and the RecordWriter for the output. For CSV input
// the dialect is sniffed from the head of the stream, unless overridden by conf.
func configure(conf *Conf, source *file.Source, out io.Writer, result *Result, logger *logging.Logger) (samplecsv.Parser, samplecsv.RecordWriter, error) {
	if conf.Format == JSONL {
		parser := jsonl.CreateParser(&jsonl.ParserConf{Columns: conf.Columns})
		if parser.Projecting() {
			result.Delimiter = ','
			return parser, dsvsink.CreateWriter(out, &dsvsink.WriterConf{}), nil
		}
		return parser, jsonlsink.CreateWriter(out), nil
	}

	head, atEOF, err := source.Peek(dsv.SniffSize)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read %s: %w", source.Name(), err)
	}
	dialect, err := dsv.Sniff(head, atEOF)
	sniffed := err == nil
	if !sniffed {
		if conf.Delimiter == 0 {
			logger.Warnf("%s; assuming ','", err)
		}
		dialect = &dsv.Dialect{Delimiter: ',', UseCRLF: bytes.Contains(head, []byte("\r\n"))}
	}
	delimiter := dialect.Delimiter
	if conf.Delimiter != 0 {
		delimiter = conf.Delimiter
	}
	hasHeader := dialect.HasHeader
	if conf.Header != nil {
		hasHeader = *conf.Header
	} else if !sniffed || delimiter != dialect.Delimiter {
		hasHeader = dsv.SniffHeader(head, atEOF, delimiter)
	}
	logger.Debugf("dialect of %s: delimiter %q, header %t, crlf %t", source.Name(), delimiter, hasHeader, dialect.UseCRLF)

	result.Delimiter = delimiter
	parser := dsv.CreateParser(&dsv.ParserConf{Delimiter: delimiter, Header: hasHeader})
	writer := dsvsink.CreateWriter(out, &dsvsink.WriterConf{Delimiter: delimiter, UseCRLF: dialect.UseCRLF})
	return parser, writer, nil
}
