package file

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/spf13/afero"
)

// StdinPath is the path which denotes standard input
const StdinPath = "-"

const bufferSize = 64 * 1024

// Compression identifies the compression format of a stream
type Compression int

const (
	// None indicates an uncompressed stream
	None Compression = iota
	// Gzip indicates a gzip stream
	Gzip
	// Zstd indicates a zstandard stream
	Zstd
	// LZ4 indicates an lz4 frame stream
	LZ4
)

var magics = []struct {
	compression Compression
	magic       []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{LZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

// String returns a textual representation of this Compression
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Source is an opened, decompressed byte stream
type Source struct {
	name        string
	compression Compression
	reader      *bufio.Reader
	closers     []func() error
}

// Open opens path on fs, or stdin if path is StdinPath. The caller must Close the Source.
func Open(fs afero.Fs, path string, stdin io.Reader) (*Source, error) {
	s := &Source{name: path}
	var raw io.Reader
	if path == StdinPath {
		s.name = "stdin"
		raw = stdin
	} else {
		f, err := fs.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open %s: %w", path, err)
		}
		s.closers = append(s.closers, f.Close)
		raw = f
	}
	buffered := bufio.NewReaderSize(raw, bufferSize)
	head, err := buffered.Peek(4)
	if err != nil && err != io.EOF {
		_ = s.Close()
		return nil, fmt.Errorf("unable to read %s: %w", s.name, err)
	}
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			s.compression = m.compression
			break
		}
	}
	if err = s.decompress(buffered); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("unable to decompress %s as %s: %w", s.name, s.compression, err)
	}
	return s, nil
}

func (s *Source) decompress(r *bufio.Reader) error {
	switch s.compression {
	case Gzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, gz.Close)
		s.reader = bufio.NewReaderSize(gz, bufferSize)
	case Zstd:
		// decode synchronously on the calling goroutine
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return err
		}
		s.closers = append(s.closers, func() error {
			dec.Close()
			return nil
		})
		s.reader = bufio.NewReaderSize(dec, bufferSize)
	case LZ4:
		s.reader = bufio.NewReaderSize(lz4.NewReader(r), bufferSize)
	default:
		s.reader = r
	}
	return nil
}

// Name returns the path this Source was opened from, or "stdin"
func (s *Source) Name() string {
	return s.name
}

// Compression returns the detected compression format of this Source
func (s *Source) Compression() Compression {
	return s.compression
}

// Peek returns up to the next n decompressed bytes without consuming them.
// atEOF is true when the returned bytes are the remainder of the stream.
func (s *Source) Peek(n int) (head []byte, atEOF bool, err error) {
	head, err = s.reader.Peek(n)
	if err == io.EOF {
		return head, true, nil
	}
	return head, false, err
}

// Read reads decompressed bytes from this Source
func (s *Source) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

// Close releases the decompressor and the underlying file, in that order
func (s *Source) Close() error {
	var errs *multierror.Error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	s.closers = nil
	return errs.ErrorOrNil()
}
