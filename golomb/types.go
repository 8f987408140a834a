// Package golomb implements streaming Exponential-Golomb coding of
// fixed-width integers.
//
// The coder runs in a single pass with bounded internal buffering: an
// Encoder holds exactly one partially-filled code unit, a Decoder
// holds exactly one partially-consumed one. Callers supply a Sink or
// Source that moves code units to and from wherever they actually
// live (a file, a socket, an in-memory slice); the coder itself never
// allocates once constructed.
package golomb

// Unit is the fixed-width unsigned representation a bitstream is
// packed into. Bits are filled MSB-first within a unit.
type Unit interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer is the set of application-level element types the generic
// package boundary functions (Encode, Decode) accept.
// It spans every signed/unsigned pairing at widths 8, 16, 32 and 64.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// widthOf reports the bit-width W and the canonical unsigned register
// value of v, applying the zig-zag mapping when T is signed. This is
// the single point where a typed application value crosses into the
// strictly-unsigned core: an explicit pair of pure functions applied
// at the boundary, with the encoder and decoder kept unsigned
// throughout.
func widthOf[T Integer](v T) (width int, u uint64) {
	switch x := any(v).(type) {
	case int8:
		return 8, ToUnsigned(8, int64(x))
	case int16:
		return 16, ToUnsigned(16, int64(x))
	case int32:
		return 32, ToUnsigned(32, int64(x))
	case int64:
		return 64, ToUnsigned(64, x)
	case uint8:
		return 8, uint64(x)
	case uint16:
		return 16, uint64(x)
	case uint32:
		return 32, uint64(x)
	case uint64:
		return 64, x
	default:
		panic("golomb: unsupported element type")
	}
}

// valueFromRegister is the inverse of widthOf: it reconstructs a T
// from the decoder's canonical unsigned register, applying the
// inverse zig-zag mapping when T is signed.
func valueFromRegister[T Integer](width int, u uint64) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(ToSigned(width, u))
	case int16:
		return T(ToSigned(width, u))
	case int32:
		return T(ToSigned(width, u))
	case int64:
		return T(ToSigned(width, u))
	case uint8, uint16, uint32, uint64:
		return T(u)
	default:
		panic("golomb: unsupported element type")
	}
}

// widthOfT reports the bit-width associated with T alone, without a
// value in hand. Used where the caller has not produced any elements
// yet (Decode on an empty run still needs to know W).
func widthOfT[T Integer]() int {
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

// unitBits reports the bit-width of a code unit type U.
func unitBits[U Unit]() int {
	var zero U
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("golomb: unsupported unit type")
	}
}

// lowBits returns the low n bits of d, for 0 <= n <= 64.
func lowBits(d uint64, n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return d
	}
	return d & ((uint64(1) << uint(n)) - 1)
}
