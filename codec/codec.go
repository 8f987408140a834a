// Package codec provides a tag-keyed, concurrency-safe registry for
// stream-format codecs: each registered format transforms a
// byte-oriented code-unit stream to or from a native-endian element
// stream.
package codec

import "io"

// Codec is the interface a registered stream format satisfies. Encode
// reads native-endian elements from r and writes Exponential-Golomb
// code units to w; Decode is the inverse. Both run in a single pass
// with bounded memory, per golomb.Encoder/golomb.Decoder's own
// contract.
type Codec interface {
	Encode(r io.Reader, w io.Writer, k, adaptive int) error
	Decode(r io.Reader, w io.Writer, k, adaptive int) error

	// Tag is the short format identifier used on the command line,
	// e.g. "i16" or "u8".
	Tag() string
}
