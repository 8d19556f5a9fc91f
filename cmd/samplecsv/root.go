package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-sif/samplecsv/logging"
	"github.com/go-sif/samplecsv/random"
	"github.com/go-sif/samplecsv/sampler"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	capacity      int
	preserveOrder bool
	seed          string
	delimiter     string
	header        bool
	noHeader      bool
	format        string
	columns       []string
	output        string
	logLevel      string
}

func newRootCmd(fs afero.Fs, stdin io.Reader, stdout io.Writer, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "samplecsv FILE",
		Short: "A utility to randomly sample data from a csv file.",
		Long: `samplecsv draws a uniform random sample of records from a csv file, reading it once
and holding only the sample in memory. The delimiter and the presence of a header are
detected automatically; the header is always copied to the output. FILE may be "-" to
read standard input, and gzip, zstd and lz4 compressed input is decompressed on the fly.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, fs, stdin, stdout, stderr, args[0], opts)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVarP(&opts.capacity, "num", "n", sampler.DefaultCapacity, "number of lines to sample")
	flags.BoolVar(&opts.preserveOrder, "preserve-order", false, "keep samples in same order as in file")
	flags.StringVar(&opts.seed, "seed", "", "any string; runs with the same seed and input produce the same sample")
	flags.StringVar(&opts.delimiter, "delimiter", "", `field delimiter, overriding detection ("\t" for tab)`)
	flags.BoolVar(&opts.header, "header", false, "treat the first line as a header, overriding detection")
	flags.BoolVar(&opts.noHeader, "no-header", false, "treat the first line as data, overriding detection")
	flags.StringVar(&opts.format, "format", string(sampler.CSV), "input format: csv or jsonl")
	flags.StringSliceVar(&opts.columns, "columns", nil, "gjson paths to extract from jsonl input as csv columns")
	flags.StringVarP(&opts.output, "output", "o", "", "write the sample to this file instead of standard output")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "trace, debug, info, warn or error")
	cmd.MarkFlagsMutuallyExclusive("header", "no-header")
	return cmd
}

func runSample(cmd *cobra.Command, fs afero.Fs, stdin io.Reader, stdout io.Writer, stderr io.Writer, path string, opts *rootOptions) (err error) {
	level, err := logging.ParseLogLevel(opts.logLevel)
	if err != nil {
		return err
	}
	delimiter, err := parseDelimiter(opts.delimiter)
	if err != nil {
		return err
	}
	conf := &sampler.Conf{
		Path:          path,
		Capacity:      opts.capacity,
		PreserveOrder: opts.preserveOrder,
		Format:        sampler.Format(opts.format),
		Delimiter:     delimiter,
		Columns:       opts.columns,
		Fs:            fs,
		Stdin:         stdin,
		Logger:        logging.NewLogger(stderr, level, "samplecsv"),
	}
	if opts.seed != "" {
		s := random.SeedFromString(opts.seed)
		conf.Seed = &s
	}
	if cmd.Flags().Changed("header") || cmd.Flags().Changed("no-header") {
		h := opts.header && !opts.noHeader
		conf.Header = &h
	}

	out := stdout
	if opts.output != "" {
		f, cerr := fs.Create(opts.output)
		if cerr != nil {
			return fmt.Errorf("unable to create %s: %w", opts.output, cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				err = multierror.Append(err, cerr)
			}
		}()
		out = f
	}
	_, err = sampler.Run(cmd.Context(), conf, out)
	return err
}

// parseDelimiter accepts a single character, or an escaped tab
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
