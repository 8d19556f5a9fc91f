// Package stats tracks statistics about a sampling run: how many records were seen,
// how many entered the reservoir, how many were replaced or discarded, and how long it took.
package stats
