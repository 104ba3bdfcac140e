package compression

import (
	"io"
)

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates the end of the data was reached.
	RunLength int
}

// InvalidRLERun is returned by [RunLengthGrouper.GetNextRun] once the data is
// exhausted.
var InvalidRLERun = ByteRun{Byte: 0, RunLength: 0}

// RunLengthGrouper splits a byte slice into maximal runs of identical bytes.
// Run lengths are not capped.
type RunLengthGrouper struct {
	data     []byte
	position int
}

func NewRunLengthGrouper(data []byte) *RunLengthGrouper {
	return &RunLengthGrouper{data: data}
}

// GetNextRun returns a [ByteRun] for the next byte or run of byte values in the
// data. Once all the data has been consumed it returns [InvalidRLERun] and
// [io.EOF].
func (grouper *RunLengthGrouper) GetNextRun() (ByteRun, error) {
	if grouper.position >= len(grouper.data) {
		return InvalidRLERun, io.EOF
	}

	firstByte := grouper.data[grouper.position]
	runEnd := grouper.position + 1
	for runEnd < len(grouper.data) && grouper.data[runEnd] == firstByte {
		runEnd++
	}

	run := ByteRun{Byte: firstByte, RunLength: runEnd - grouper.position}
	grouper.position = runEnd
	return run, nil
}

// CountRuns returns the number of maximal runs in `data`.
func CountRuns(data []byte) int {
	grouper := NewRunLengthGrouper(data)
	total := 0
	for {
		if _, err := grouper.GetNextRun(); err != nil {
			return total
		}
		total++
	}
}
