// Package datasource contains helpers shared by the RecordIterators of samplecsv.
// Each subpackage produces Records from a different kind of source.
package datasource
