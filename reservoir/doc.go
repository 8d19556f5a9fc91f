// Package reservoir implements single-pass uniform sampling of a fixed number of Records
// from a stream of unknown length (Vitter's Algorithm R), optionally restoring the
// original stream order of the sample. Memory use is bounded by the sample size,
// no matter how long the stream is.
package reservoir
