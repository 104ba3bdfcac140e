package testing

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateRandomData returns `size` random bytes. It is guaranteed to either
// return a valid slice or fail the test and abort.
func CreateRandomData(size uint, t *testing.T) []byte {
	data := make([]byte, size)

	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to initialize %d random bytes", size)
	return data
}

// CreateRunData returns data made of runs of `value` whose lengths are given
// by `runLengths`. Consecutive runs alternate between `value` and its bitwise
// complement so they never merge.
func CreateRunData(value byte, runLengths ...int) []byte {
	var buffer bytes.Buffer
	current := value
	for _, length := range runLengths {
		buffer.Write(bytes.Repeat([]byte{current}, length))
		current = ^current
	}
	return buffer.Bytes()
}
