package golomb

import "math/bits"

// Encoder packs a stream of width-W unsigned integers into
// Exponential-Golomb code words and emits them, MSB-first, as
// fixed-width code units of type U. It holds exactly one
// partially-filled code unit; memory use is O(1) regardless of how
// many symbols have been pushed.
//
// An Encoder is single-owner: concurrent use of one instance from
// multiple goroutines is undefined.
type Encoder[U Unit] struct {
	sink     Sink[U]
	width    int
	k        int
	buffer   U
	bitsUsed int
}

// New constructs an Encoder that writes to sink, coding width-W
// unsigned values with initial order k. It panics with ErrInvalidK if
// k does not satisfy 0 <= k < width.
func New[U Unit](sink Sink[U], width int, k int) *Encoder[U] {
	if k < 0 || k >= width {
		panic(ErrInvalidK)
	}
	return &Encoder[U]{sink: sink, width: width, k: k}
}

// SetK changes the order used for symbols pushed from this point on.
// It does not touch the partially-filled buffer.
func (e *Encoder[U]) SetK(k int) {
	if k < 0 || k >= e.width {
		panic(ErrInvalidK)
	}
	e.k = k
}

// K reports the order currently in effect.
func (e *Encoder[U]) K() int { return e.k }

// Push encodes one unsigned width-W symbol using the current order,
// emitting complete code units to the sink as they fill and leaving
// any remainder buffered. When u + 2^k does not fit in width W, Push
// falls back to the overflow form: exactly W-k zero bits, a separator
// bit, then the low W bits of u + 2^k (which the decoder recovers by
// uniformly subtracting 2^k and letting the truncated separator bit's
// weight, 2^W, vanish under that same width-W wraparound).
func (e *Encoder[U]) Push(u uint64) error {
	u &= mask(e.width)
	k := e.k

	base := uint64(1) << uint(k)
	threshold := mask(e.width) - base
	overflow := u > threshold

	v := (u + base) & mask(e.width)

	var width, zeros int
	var payload uint64
	if overflow {
		width = e.width
		zeros = e.width - k
		payload = v
	} else {
		width = bits.Len64(v)
		zeros = width - k - 1
		payload = v
	}

	if err := e.writeBits(zeros, 0); err != nil {
		return err
	}
	if overflow {
		if err := e.writeBits(1, 1); err != nil {
			return err
		}
	}
	return e.writeBits(width, payload)
}

// PushSigned zig-zag maps s and pushes the resulting unsigned value.
func (e *Encoder[U]) PushSigned(s int64) error {
	return e.Push(ToUnsigned(e.width, s))
}

// Flush emits the current buffer, zero-padded on the LSB side, if it
// holds any bits. It is idempotent: calling Flush twice in a row emits
// nothing the second time.
func (e *Encoder[U]) Flush() error {
	if e.bitsUsed == 0 {
		return nil
	}
	unit := e.buffer
	e.buffer = 0
	e.bitsUsed = 0
	return e.sink.EmitCodeUnit(unit)
}

// writeBits packs the low n bits of d into the buffer, MSB-down,
// emitting complete code units to the sink as they fill: with free =
// unit width - bits already used, a write of n >= free bits emits the
// buffer or'd with the top free bits of the n-bit value (d >> (n -
// free)) and carries the remaining n - free bits into a fresh buffer, while a write of n < free bits just
// or's d in at the appropriate shift and accumulates.
func (e *Encoder[U]) writeBits(n int, d uint64) error {
	unitBitsN := unitBits[U]()
	for n > 0 {
		free := unitBitsN - e.bitsUsed
		if n >= free {
			shift := n - free
			frag := U(lowBits(d, n) >> uint(shift))
			if err := e.sink.EmitCodeUnit(e.buffer | frag); err != nil {
				return err
			}
			e.buffer = 0
			e.bitsUsed = 0
			n = shift
		} else {
			shift := free - n
			e.buffer |= U(lowBits(d, n)) << uint(shift)
			e.bitsUsed += n
			n = 0
		}
	}
	return nil
}
