package stats

import (
	"time"
)

// SampleStatistics contains statistics about a running sampling pass
type SampleStatistics struct {
	started      bool
	finished     bool
	startTime    time.Time
	totalRuntime time.Duration
	seen         int64
	filled       int64 // records appended while the reservoir was not yet full
	replaced     int64 // records which overwrote an existing slot
	discarded    int64
}

// Start triggers statistics tracking, if it hasn't been started already
func (ss *SampleStatistics) Start() {
	if !ss.started {
		ss.started = true
		ss.startTime = time.Now()
	}
}

// Finish completes statistics tracking
func (ss *SampleStatistics) Finish() {
	if !ss.finished {
		ss.finished = true
		ss.totalRuntime = time.Since(ss.startTime)
	}
}

// RecordFilled tracks a record appended to a reservoir which was not yet full
func (ss *SampleStatistics) RecordFilled() {
	ss.seen++
	ss.filled++
}

// RecordReplaced tracks a record which overwrote a reservoir slot
func (ss *SampleStatistics) RecordReplaced() {
	ss.seen++
	ss.replaced++
}

// RecordDiscarded tracks a record which was not selected
func (ss *SampleStatistics) RecordDiscarded() {
	ss.seen++
	ss.discarded++
}

// GetStartTime returns the start time of the sampling pass
func (ss *SampleStatistics) GetStartTime() time.Time {
	return ss.startTime
}

// GetRuntime returns the running time of the sampling pass
func (ss *SampleStatistics) GetRuntime() time.Duration {
	if ss.finished {
		return ss.totalRuntime
	}
	if !ss.started {
		return 0
	}
	return time.Since(ss.startTime)
}

// GetNumRecordsSeen returns the number of records consumed so far
func (ss *SampleStatistics) GetNumRecordsSeen() int64 {
	return ss.seen
}

// GetNumRecordsFilled returns the number of records appended before the reservoir became full
func (ss *SampleStatistics) GetNumRecordsFilled() int64 {
	return ss.filled
}

// GetNumRecordsReplaced returns the number of records which overwrote a reservoir slot
func (ss *SampleStatistics) GetNumRecordsReplaced() int64 {
	return ss.replaced
}

// GetNumRecordsDiscarded returns the number of records which were never stored
func (ss *SampleStatistics) GetNumRecordsDiscarded() int64 {
	return ss.discarded
}
