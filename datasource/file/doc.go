// Package file opens the byte stream a sample is drawn from: a file on an afero filesystem, or
// standard input. Compressed streams (gzip, zstd, lz4) are detected by their magic bytes and
// decompressed transparently, and the head of the stream can be peeked for dialect sniffing
// without consuming it.
package file
