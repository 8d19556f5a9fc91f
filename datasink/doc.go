// Package datasink groups the RecordWriters which serialize a sample, one subpackage per format.
package datasink
