package compression

import (
	"fmt"
	"io"

	"github.com/dargueta/rle8"
)

const (
	// MinRunLength is the shortest run stored as a run record. Shorter runs are
	// written as a single literal byte.
	MinRunLength = 2
	// MaxRunLength is the longest run a single record can hold. Longer runs are
	// split across several records.
	MaxRunLength = MinRunLength + 255
)

// Encode run-length encodes `raw` and returns the result in a new slice. It
// never fails. An empty input gives an empty, non-nil slice.
func Encode(raw []byte) []byte {
	encoded := make([]byte, 0, len(raw))
	grouper := NewRunLengthGrouper(raw)

	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			// The grouper only fails when it runs out of data.
			return encoded
		}

		for run.RunLength >= MinRunLength {
			recordLength := run.RunLength
			if recordLength > MaxRunLength {
				recordLength = MaxRunLength
			}

			encoded = append(
				encoded, run.Byte, run.Byte, byte(recordLength-MinRunLength))
			run.RunLength -= recordLength
		}

		if run.RunLength == 1 {
			encoded = append(encoded, run.Byte)
		}
	}
}

// Decode reverses [Encode]. The data must be well-formed; the only malformation
// detected is a repetition marker at the very end of the data with no length
// byte after it, which fails with [rle8.ErrMalformedData].
func Decode(encoded []byte) ([]byte, error) {
	decoded := make([]byte, 0, len(encoded))
	if len(encoded) == 0 {
		return decoded, nil
	}

	previous := sentinelFor(encoded[0])
	for i := 0; i < len(encoded); i++ {
		current := encoded[i]

		if current != previous {
			decoded = append(decoded, current)
			previous = current
			continue
		}

		// Got two bytes in a row that are the same. The next byte is a repeat
		// count.
		if i+1 >= len(encoded) {
			return nil, newMissingRepeatCountError(current)
		}
		i++
		repeatCount := int(encoded[i])

		// Note we're writing out repeatCount + 1 instead of +2. We do this
		// because on the previous iteration of the loop we already wrote it
		// out once.
		for j := 0; j <= repeatCount; j++ {
			decoded = append(decoded, current)
		}

		// The group is done, so the next byte must never be taken for a marker.
		// If we didn't do this, runs of 258+ bytes would be decompressed
		// incorrectly.
		if i+1 < len(encoded) {
			previous = sentinelFor(encoded[i+1])
		}
	}
	return decoded, nil
}

// sentinelFor returns a byte value guaranteed to differ from `value`.
func sentinelFor(value byte) byte {
	if value == 0xff {
		return value - 1
	}
	return value + 1
}

func newMissingRepeatCountError(value byte) error {
	return rle8.ErrMalformedData.
		Wrap(io.ErrUnexpectedEOF).
		WithMessage(fmt.Sprintf("missing repeat count after two %02x bytes", value))
}
