package samplecsv

// A RandomSource draws uniformly distributed integers. A RandomSource is owned by a
// single sampling run and need not be safe for concurrent use.
type RandomSource interface {
	Draw(upper int64) int64 // Draw returns a uniformly random integer in the inclusive range [0, upper]
}
