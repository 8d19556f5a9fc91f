package reservoir

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/go-sif/samplecsv"
	"github.com/go-sif/samplecsv/datasource/memory"
	"github.com/go-sif/samplecsv/datasource/memorystream"
	errors "github.com/go-sif/samplecsv/errors"
	"github.com/go-sif/samplecsv/random"
	"github.com/go-sif/samplecsv/stats"
	"github.com/stretchr/testify/require"
)

// positionalRecords produces n single-field Records holding their own stream position
func positionalRecords(n int) []samplecsv.Record {
	records := make([]samplecsv.Record, n)
	for i := range records {
		records[i] = samplecsv.Record{strconv.Itoa(i)}
	}
	return records
}

func recordValues(records []samplecsv.Record) []string {
	result := make([]string, len(records))
	for i, r := range records {
		result[i] = r[0]
	}
	return result
}

// untouchableIterator fails the test if it is used in any way
type untouchableIterator struct{ t *testing.T }

func (u untouchableIterator) HasNextRecord() bool {
	u.t.Fatal("HasNextRecord called")
	return false
}

func (u untouchableIterator) NextRecord() (samplecsv.Record, error) {
	u.t.Fatal("NextRecord called")
	return nil, nil
}

func (u untouchableIterator) OnEnd(func()) {
	u.t.Fatal("OnEnd called")
}

func TestNegativeCapacityFailsBeforeConsuming(t *testing.T) {
	_, err := Sample(untouchableIterator{t}, &Conf{Capacity: -1})
	require.NotNil(t, err)
	require.IsType(t, errors.InvalidArgumentError{}, err)
	_, err = New(&Conf{Capacity: -7})
	require.IsType(t, errors.InvalidArgumentError{}, err)
}

func TestZeroCapacity(t *testing.T) {
	st := &stats.SampleStatistics{}
	result, err := Sample(memory.CreateIterator(positionalRecords(10)), &Conf{Capacity: 0, Stats: st})
	require.Nil(t, err)
	require.Len(t, result, 0)
	require.EqualValues(t, 10, st.GetNumRecordsSeen())
	require.EqualValues(t, 10, st.GetNumRecordsDiscarded())
}

func TestEmptyStream(t *testing.T) {
	for _, capacity := range []int{0, 1, 1000} {
		result, err := Sample(memory.CreateIterator(nil), &Conf{Capacity: capacity})
		require.Nil(t, err)
		require.Len(t, result, 0)
	}
}

func TestExactlyCapacity(t *testing.T) {
	input := positionalRecords(5)
	unordered, err := Sample(memory.CreateIterator(input), &Conf{Capacity: 5, Random: random.NewSeeded(1)})
	require.Nil(t, err)
	ordered, err := Sample(memory.CreateIterator(input), &Conf{Capacity: 5, PreserveOrder: true, Random: random.NewSeeded(1)})
	require.Nil(t, err)
	require.Equal(t, input, unordered)
	require.Equal(t, unordered, ordered)
}

func TestMidpointDraws(t *testing.T) {
	// slots: [0 1 2] -> idx3 draws 1 -> [0 3 2] -> idx4 draws 2 -> [0 3 4] -> idx5 draws 2 -> [0 3 5],
	// then idx6..9 draw 3, 3, 4, 4, which all fall outside the reservoir
	unordered, err := Sample(memory.CreateIterator(positionalRecords(10)), &Conf{Capacity: 3, Random: random.Midpoint{}})
	require.Nil(t, err)
	require.Equal(t, []string{"0", "3", "5"}, recordValues(unordered))
	ordered, err := Sample(memory.CreateIterator(positionalRecords(10)), &Conf{Capacity: 3, PreserveOrder: true, Random: random.Midpoint{}})
	require.Nil(t, err)
	require.Equal(t, []string{"0", "3", "5"}, recordValues(ordered))
}

func TestUnorderedResultKeepsSlotOrder(t *testing.T) {
	// slots: [0 1 2] -> idx3 replaces slot 0 -> [3 1 2] -> idx4 replaces slot 1 -> [3 4 2]
	unordered, err := Sample(memory.CreateIterator(positionalRecords(5)), &Conf{Capacity: 3, Random: random.NewScripted(0, 1)})
	require.Nil(t, err)
	require.Equal(t, []string{"3", "4", "2"}, recordValues(unordered))
	ordered, err := Sample(memory.CreateIterator(positionalRecords(5)), &Conf{Capacity: 3, PreserveOrder: true, Random: random.NewScripted(0, 1)})
	require.Nil(t, err)
	require.Equal(t, []string{"2", "3", "4"}, recordValues(ordered))
}

func TestDrawIsInclusiveOfPosition(t *testing.T) {
	script := random.NewScripted(3, 4, 5, 6, 7, 8, 9)
	result, err := Sample(memory.CreateIterator(positionalRecords(10)), &Conf{Capacity: 3, Random: script})
	require.Nil(t, err)
	// each draw may return the current position itself, which never lands in the reservoir
	require.Equal(t, []int64{3, 4, 5, 6, 7, 8, 9}, script.Uppers)
	require.Equal(t, []string{"0", "1", "2"}, recordValues(result))
}

func TestResultSizeAndOrdering(t *testing.T) {
	for capacity := 0; capacity <= 6; capacity++ {
		for length := 0; length <= 9; length++ {
			input := positionalRecords(length)
			for _, preserveOrder := range []bool{false, true} {
				r, err := New(&Conf{Capacity: capacity, PreserveOrder: preserveOrder, Random: random.NewSeeded(uint64(capacity*100 + length))})
				require.Nil(t, err)
				for _, rec := range input {
					require.Nil(t, r.Accumulate(rec))
				}
				slots := r.Slots()
				expectedLen := capacity
				if length < capacity {
					expectedLen = length
				}
				require.Len(t, slots, expectedLen, "capacity=%d length=%d", capacity, length)
				require.EqualValues(t, length, r.Seen())

				positions := make(map[int64]bool)
				for i, s := range slots {
					require.False(t, positions[s.Position], "duplicate position %d", s.Position)
					positions[s.Position] = true
					require.Equal(t, strconv.FormatInt(s.Position, 10), s.Record[0])
					if preserveOrder && i > 0 {
						require.Less(t, slots[i-1].Position, s.Position)
					}
				}
				if length <= capacity && preserveOrder {
					require.Equal(t, input, r.Records())
				} else if length <= capacity {
					require.ElementsMatch(t, input, r.Records())
				}
			}
		}
	}
}

func TestUniformInclusion(t *testing.T) {
	const (
		length   = 10
		capacity = 3
		trials   = 20000
	)
	input := positionalRecords(length)
	counts := make([]int, length)
	for trial := 0; trial < trials; trial++ {
		result, err := Sample(memory.CreateIterator(input), &Conf{Capacity: capacity, Random: random.NewSeeded(uint64(trial))})
		require.Nil(t, err)
		require.Len(t, result, capacity)
		for _, r := range result {
			idx, err := strconv.Atoi(r[0])
			require.Nil(t, err)
			counts[idx]++
		}
	}
	expected := float64(capacity) / float64(length)
	for idx, c := range counts {
		freq := float64(c) / trials
		require.InDelta(t, expected, freq, 0.02, "record %d was included with frequency %f", idx, freq)
	}
}

func TestSourceErrorIsPropagatedUnchanged(t *testing.T) {
	boom := fmt.Errorf("disk on fire")
	it := memorystream.CreateIterator(10, func(idx int64) (samplecsv.Record, error) {
		if idx == 4 {
			return nil, boom
		}
		return samplecsv.Record{strconv.FormatInt(idx, 10)}, nil
	})
	result, err := Sample(it, &Conf{Capacity: 2, Random: random.NewSeeded(3)})
	require.Nil(t, result)
	require.Equal(t, boom, err)
}

func TestReusedRecordBuffersAreCloned(t *testing.T) {
	shared := make(samplecsv.Record, 1)
	it := memorystream.CreateIterator(4, func(idx int64) (samplecsv.Record, error) {
		shared[0] = strconv.FormatInt(idx, 10)
		return shared, nil
	})
	result, err := Sample(it, &Conf{Capacity: 4, PreserveOrder: true})
	require.Nil(t, err)
	require.Equal(t, []string{"0", "1", "2", "3"}, recordValues(result))
}

func TestHugeStreamUsesBoundedMemory(t *testing.T) {
	const length = 1000000
	st := &stats.SampleStatistics{}
	r, err := New(&Conf{Capacity: 3, Random: random.NewSeeded(99), Stats: st})
	require.Nil(t, err)
	it := memorystream.CreateIterator(length, func(idx int64) (samplecsv.Record, error) {
		return samplecsv.Record{"x"}, nil
	})
	for it.HasNextRecord() {
		rec, err := it.NextRecord()
		if err != nil {
			t.Fatal(err)
		}
		if err = r.Accumulate(rec); err != nil {
			t.Fatal(err)
		}
	}
	require.Equal(t, 3, cap(r.slots))
	require.Equal(t, 3, r.Len())
	require.EqualValues(t, length, r.Seen())
	require.EqualValues(t, length, st.GetNumRecordsSeen())
	require.EqualValues(t, 3, st.GetNumRecordsFilled())
	require.EqualValues(t, length-3, st.GetNumRecordsReplaced()+st.GetNumRecordsDiscarded())
}
