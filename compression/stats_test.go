package compression_test

import (
	"bytes"
	"strings"
	"testing"

	c "github.com/dargueta/rle8/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStats(t *testing.T) {
	raw := []byte{9, 5, 5, 5, 5, 5, 3, 7, 7}
	stats := c.NewStats(raw, c.Encode(raw))

	assert.Equal(t, 9, stats.InputSize)
	assert.Equal(t, 8, stats.OutputSize)
	assert.Equal(t, 4, stats.Runs)
	assert.Equal(t, 4, stats.DistinctBytes)
}

func TestStats__AllByteValues(t *testing.T) {
	raw := make([]byte, 512)
	for i := range raw {
		raw[i] = byte(i)
	}
	stats := c.NewStats(raw, c.Encode(raw))

	assert.Equal(t, 256, stats.DistinctBytes)
	assert.Equal(t, 512, stats.Runs)
	assert.Equal(t, 0.0, stats.Ratio())
}

func TestStatsRatio(t *testing.T) {
	assert.InDelta(t, 0.75, c.Stats{InputSize: 100, OutputSize: 25}.Ratio(), 1e-9)
	assert.InDelta(t, -0.5, c.Stats{InputSize: 2, OutputSize: 3}.Ratio(), 1e-9)
	assert.Equal(t, 0.0, c.Stats{}.Ratio(), "empty input must not give NaN")
}

func TestStatsWriteReport(t *testing.T) {
	raw := bytes.Repeat([]byte{0}, 1000)
	stats := c.NewStats(raw, c.Encode(raw))

	var output strings.Builder
	require.NoError(t, stats.WriteReport(&output))

	assert.Equal(
		t,
		"Uncompressed file size: 1000\n"+
			"Compressed file size: 12\n"+
			"Compression ratio: 98.80%\n"+
			"Runs: 1\n"+
			"Distinct byte values: 1\n",
		output.String(),
	)
}

func TestStatsWriteReport__Expansion(t *testing.T) {
	stats := c.Stats{InputSize: 3, OutputSize: 4, Runs: 2, DistinctBytes: 2}

	var output strings.Builder
	require.NoError(t, stats.WriteReport(&output))
	assert.Contains(t, output.String(), "Compression ratio: -33.33%\n")
}
