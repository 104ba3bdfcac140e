package compression

import (
	"io"

	"github.com/dargueta/rle8"
)

// CompressRLE8 reads all of the input, encodes it with [Encode], and writes the
// encoded data to the output.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressRLE8(input io.Reader, output io.Writer) (int64, error) {
	raw, err := io.ReadAll(input)
	if err != nil {
		return 0, rle8.ErrIOFailed.Wrap(err)
	}
	return writeAll(output, Encode(raw))
}

// DecompressRLE8 reads all of the RLE8-encoded input, decodes it with [Decode],
// and writes the original bytes to the output.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size). If an error occurred, the value is undefined and should
// not be used.
func DecompressRLE8(input io.Reader, output io.Writer) (int64, error) {
	decoded, err := DecompressRLE8ToBytes(input)
	if err != nil {
		return 0, err
	}
	return writeAll(output, decoded)
}

// DecompressRLE8ToBytes is a convenience function wrapping [DecompressRLE8]. It
// functions identically, except it returns the decompressed data in a new byte
// slice instead of writing to an [io.Writer].
func DecompressRLE8ToBytes(input io.Reader) ([]byte, error) {
	encoded, err := io.ReadAll(input)
	if err != nil {
		return nil, rle8.ErrIOFailed.Wrap(err)
	}
	return Decode(encoded)
}

func writeAll(output io.Writer, data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	n, err := output.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), rle8.ErrIOFailed.Wrap(err)
	}
	return int64(n), nil
}
