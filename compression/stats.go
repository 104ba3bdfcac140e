package compression

import (
	"fmt"
	"io"

	"github.com/boljen/go-bitmap"
)

// Stats describes the result of encoding one buffer.
type Stats struct {
	// InputSize is the size of the raw data, in bytes.
	InputSize int
	// OutputSize is the size of the encoded data, in bytes.
	OutputSize int
	// Runs is the number of maximal runs in the raw data, without the record
	// length cap applied.
	Runs int
	// DistinctBytes is the number of different byte values in the raw data.
	DistinctBytes int
}

// NewStats computes the statistics for `raw` and its encoded form.
func NewStats(raw, encoded []byte) Stats {
	return Stats{
		InputSize:     len(raw),
		OutputSize:    len(encoded),
		Runs:          CountRuns(raw),
		DistinctBytes: countDistinctBytes(raw),
	}
}

// Ratio returns how much smaller the output is than the input, as a fraction
// of the input size. Negative values mean the data grew. The ratio of an empty
// input is 0.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return 1.0 - (float64(s.OutputSize) / float64(s.InputSize))
}

// WriteReport writes a human-readable summary of the statistics to `output`.
func (s Stats) WriteReport(output io.Writer) error {
	_, err := fmt.Fprintf(
		output,
		"Uncompressed file size: %d\n"+
			"Compressed file size: %d\n"+
			"Compression ratio: %.2f%%\n"+
			"Runs: %d\n"+
			"Distinct byte values: %d\n",
		s.InputSize,
		s.OutputSize,
		s.Ratio()*100.0,
		s.Runs,
		s.DistinctBytes,
	)
	return err
}

func countDistinctBytes(data []byte) int {
	seen := bitmap.New(256)
	total := 0
	for _, value := range data {
		if !seen.Get(int(value)) {
			seen.Set(int(value), true)
			total++
		}
	}
	return total
}
