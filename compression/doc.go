// Package compression implements the RLE8 run-length encoding.
//
// There are a variety of run-length encodings; this package refers strictly to
// the algorithm used by the Microsoft BMP file format, also known as RLE8. A
// brief explanation: if a byte B occurs N times where N >= 2, B is written twice,
// followed by a third (unsigned) byte indicating how many additional times B
// occurred. For example:
//
//	WXXXXXXXXXXXXXXXYZZ
//	W XX 13 Y ZZ 0
//
// This scheme lets us represent runs of up to 257 bytes with three bytes. For
// runs longer than 257 bytes, they are treated as separate runs. For example,
// a run of 300 "X" is represented as `XX 255 XX 41`. Unfortunately, using a byte
// as its own escape sequence means that occurrences of the same byte exactly
// twice are stored as three bytes: the two bytes followed by a null byte
// indicating no further repetition.
//
// The encoded stream has no header and no end marker. Data with no adjacent
// repeated bytes encodes to itself.
//
// [Encode] and [Decode] work on whole buffers held in memory. [CompressRLE8]
// and [DecompressRLE8] are thin adapters that read all of an [io.Reader] and
// write the result to an [io.Writer].
package compression
