package random

import (
	"fmt"

	"github.com/go-sif/samplecsv"
)

// Scripted is a RandomSource which replays a fixed sequence of draws. It is intended for tests.
// Draw panics if the script is exhausted or if a scripted value falls outside the requested range.
type Scripted struct {
	values []int64
	next   int
	Uppers []int64 // Uppers records the upper bound of every Draw call, in order
}

// NewScripted returns a RandomSource which returns values in order
func NewScripted(values ...int64) *Scripted {
	return &Scripted{values: values}
}

// Draw returns the next scripted value
func (s *Scripted) Draw(upper int64) int64 {
	s.Uppers = append(s.Uppers, upper)
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("scripted random source exhausted after %d draws", len(s.values)))
	}
	v := s.values[s.next]
	s.next++
	if v < 0 || v > upper {
		panic(fmt.Sprintf("scripted value %d is outside [0, %d]", v, upper))
	}
	return v
}

// Midpoint is a RandomSource which always returns the midpoint of the requested range, rounded down
type Midpoint struct{}

// Draw returns upper / 2
func (Midpoint) Draw(upper int64) int64 {
	return upper / 2
}

var _ samplecsv.RandomSource = &Scripted{}
var _ samplecsv.RandomSource = Midpoint{}
