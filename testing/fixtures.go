package testing

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/rle8/compression"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadEncodedFixture takes RLE8-encoded data and returns a stream to access the
// decoded data.
//
//   - Writes to the stream do not affect `encoded`.
//   - While the stream can be written to, its size is fixed to `expectedSize`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadEncodedFixture(
	t *testing.T, encoded []byte, expectedSize uint,
) io.ReadWriteSeeker {
	decoded, err := compression.DecompressRLE8ToBytes(bytes.NewReader(encoded))
	require.NoError(t, err)

	require.Equal(
		t,
		expectedSize,
		uint(len(decoded)),
		"decoded fixture is wrong size",
	)
	return bytesextra.NewReadWriteSeeker(decoded)
}

// WriteFixtureFile writes `data` to a file named `name` in a temporary
// directory that is removed when the test ends, and returns the file's path.
func WriteFixtureFile(t *testing.T, name string, data []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644), "failed to write fixture")
	return path
}
