// Package dsv parses delimiter-separated values (CSV, TSV and friends) into Records, and
// detects the delimiter and header presence of a stream from a sample of its first bytes.
package dsv
