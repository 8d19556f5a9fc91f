package reservoir

import (
	"slices"

	"github.com/go-sif/samplecsv"
	errors "github.com/go-sif/samplecsv/errors"
	"github.com/go-sif/samplecsv/random"
	"github.com/go-sif/samplecsv/stats"
)

// Conf configures a Reservoir
type Conf struct {
	Capacity      int                     // The number of Records to sample. Must not be negative.
	PreserveOrder bool                    // Whether the sample is returned in stream order. Otherwise its order is unspecified.
	Random        samplecsv.RandomSource  // The source of random draws. Defaults to a randomly seeded generator.
	Stats         *stats.SampleStatistics // Receives statistics about the pass, if not nil.
}

// Slot is a sampled Record along with its 0-based position in the stream
type Slot struct {
	Position int64
	Record   samplecsv.Record
}

// Reservoir holds a uniform random sample of every Record it has accumulated so far
type Reservoir struct {
	capacity      int
	preserveOrder bool
	random        samplecsv.RandomSource
	stats         *stats.SampleStatistics
	slots         []Slot
	seen          int64
}

// New creates an empty Reservoir, or returns an InvalidArgumentError if conf.Capacity is negative
func New(conf *Conf) (*Reservoir, error) {
	if conf.Capacity < 0 {
		return nil, errors.InvalidArgumentError{Name: "capacity", Value: conf.Capacity, Reason: "must not be negative"}
	}
	rng := conf.Random
	if rng == nil {
		rng = random.NewRandomlySeeded()
	}
	st := conf.Stats
	if st == nil {
		st = &stats.SampleStatistics{}
	}
	return &Reservoir{
		capacity:      conf.Capacity,
		preserveOrder: conf.PreserveOrder,
		random:        rng,
		stats:         st,
		slots:         make([]Slot, 0, conf.Capacity),
	}, nil
}

// Accumulate offers the next Record of the stream to this Reservoir. The Record is
// copied if it is kept, so callers may reuse its backing array afterwards.
func (r *Reservoir) Accumulate(record samplecsv.Record) error {
	idx := r.seen
	r.seen++
	if len(r.slots) < r.capacity {
		r.slots = append(r.slots, Slot{Position: idx, Record: record.Clone()})
		r.stats.RecordFilled()
		return nil
	}
	if r.capacity == 0 {
		r.stats.RecordDiscarded()
		return nil
	}
	// idx+1 equally likely outcomes, capacity of which land in the reservoir
	i := r.random.Draw(idx)
	if i < int64(r.capacity) {
		r.slots[i] = Slot{Position: idx, Record: record.Clone()}
		r.stats.RecordReplaced()
		return nil
	}
	r.stats.RecordDiscarded()
	return nil
}

// Len returns the number of Records currently held
func (r *Reservoir) Len() int {
	return len(r.slots)
}

// Capacity returns the maximum number of Records this Reservoir holds
func (r *Reservoir) Capacity() int {
	return r.capacity
}

// Seen returns the number of Records accumulated so far
func (r *Reservoir) Seen() int64 {
	return r.seen
}

// Slots returns a copy of the held Slots. When the Reservoir preserves order they are sorted
// by stream position; otherwise they are in slot order, which reflects the history of
// replacements rather than the stream.
func (r *Reservoir) Slots() []Slot {
	result := make([]Slot, len(r.slots))
	copy(result, r.slots)
	if r.preserveOrder {
		slices.SortFunc(result, func(a, b Slot) int {
			switch {
			case a.Position < b.Position:
				return -1
			case a.Position > b.Position:
				return 1
			default:
				return 0
			}
		})
	}
	return result
}

// Records returns the held Records, ordered as described by Slots
func (r *Reservoir) Records() []samplecsv.Record {
	slots := r.Slots()
	result := make([]samplecsv.Record, len(slots))
	for i, s := range slots {
		result[i] = s.Record
	}
	return result
}
