package main

import (
	"encoding/binary"
	"io"

	"github.com/cocosip/expgolomb/golomb"
)

// widthOfType mirrors golomb's internal widthOfT: the CLI sits outside
// the golomb package, so it needs its own copy of the width lookup to
// size the Encoder/Decoder it drives directly.
func widthOfType[T golomb.Integer]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64:
		return 64
	default:
		panic("golomb: unsupported element type")
	}
}

func isSigned[T golomb.Integer]() bool {
	var zero T
	switch any(zero).(type) {
	case int8, int16, int32, int64:
		return true
	default:
		return false
	}
}

// encodeStream reads native-endian T values from r until EOF, pushes
// each through an Encoder (or AdaptiveEncoder, mirroring
// original_source/util/golomb.cpp's encode()/adaptive_encode() split
// on adaptive < 0), and writes the resulting byte-packed code units to
// w. Element width comes from T alone, so the whole run stays in
// O(1) memory: exactly one buffered code unit plus one buffered
// element, no matter how large the input.
func encodeStream[T golomb.Integer](r io.Reader, w io.Writer, k int, adaptive int) error {
	width := widthOfType[T]()
	signed := isSigned[T]()
	sink := golomb.NewWriterSink[uint8](w)

	var enc *golomb.Encoder[uint8]
	var aenc *golomb.AdaptiveEncoder[uint8]
	if adaptive >= 0 {
		aenc = golomb.NewAdaptive[uint8](sink, width, k, adaptive)
	} else {
		enc = golomb.New[uint8](sink, width, k)
	}

	push := func(v T) error {
		if signed {
			s := int64(v)
			if aenc != nil {
				return aenc.PushSigned(s)
			}
			return enc.PushSigned(s)
		}
		u := unsignedOf(v)
		if aenc != nil {
			return aenc.Push(u)
		}
		return enc.Push(u)
	}

	var v T
	for {
		err := binary.Read(r, binary.NativeEndian, &v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := push(v); err != nil {
			return err
		}
	}

	if aenc != nil {
		return aenc.Flush()
	}
	return enc.Flush()
}

// decodeStream is the inverse of encodeStream: it pulls symbols from a
// byte-packed code-unit stream and writes native-endian T values to w
// until the source runs cleanly dry. A zero-overflow result marks a
// malformed stream and stops the run, matching the package-level
// golomb.Decode's ErrZeroOverflow contract.
func decodeStream[T golomb.Integer](r io.Reader, w io.Writer, k int, adaptive int) error {
	width := widthOfType[T]()
	signed := isSigned[T]()
	source := golomb.NewReaderSource[uint8](r)

	var dec *golomb.Decoder[uint8]
	var adec *golomb.AdaptiveDecoder[uint8]
	if adaptive >= 0 {
		adec = golomb.NewAdaptiveDecoder[uint8](source, width, k, adaptive)
	} else {
		dec = golomb.NewDecoder[uint8](source, width, k)
	}

	for {
		var pull golomb.PullResult
		var err error
		if adec != nil {
			pull, err = adec.Pull()
		} else {
			pull, err = dec.Pull()
		}
		if err != nil {
			return err
		}
		switch pull.Kind {
		case golomb.PullDone:
			return nil
		case golomb.PullZeroOverflow:
			return golomb.ErrZeroOverflow
		}

		var out T
		if signed {
			out = T(golomb.ToSigned(width, pull.Value))
		} else {
			out = unsignedFromRegister[T](pull.Value)
		}
		if err := binary.Write(w, binary.NativeEndian, out); err != nil {
			return err
		}
	}
}

func unsignedOf[T golomb.Integer](v T) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	default:
		panic("golomb: unsignedOf called on a signed type")
	}
}

func unsignedFromRegister[T golomb.Integer](u uint64) T {
	return T(u)
}
