// Package samplecsv contains the core contracts of samplecsv, a tool which draws a
// uniform random sample of fixed size from a delimited-record stream of unknown length,
// in a single pass and with memory bounded by the sample size.
// This root package defines the types shared by the record sources, the reservoir
// sampler and the output sinks, and is a good overview of the project's key concepts.
package samplecsv
