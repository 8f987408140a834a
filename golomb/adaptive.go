package golomb

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// AdaptiveEncoder wraps an Encoder and updates its order k after every
// symbol, tracking the running magnitude of the data so a caller never
// needs a separate recompression pass to pick k.
type AdaptiveEncoder[U Unit] struct {
	enc *Encoder[U]
	a   int
}

// NewAdaptive constructs an AdaptiveEncoder over sink, starting at
// order kInitial with adaptivity factor a. It panics with
// ErrInvalidAdaptivity if a does not satisfy 0 <= a < width.
func NewAdaptive[U Unit](sink Sink[U], width, kInitial, a int) *AdaptiveEncoder[U] {
	if a < 0 || a >= width {
		panic(ErrInvalidAdaptivity)
	}
	return &AdaptiveEncoder[U]{enc: New[U](sink, width, kInitial), a: a}
}

// Push encodes u at the current order, then updates k from bit_width(u)
// following the exponential-moving-average rule.
func (ae *AdaptiveEncoder[U]) Push(u uint64) error {
	if err := ae.enc.Push(u); err != nil {
		return err
	}
	ae.enc.SetK(nextK(ae.enc.K(), ae.a, ae.enc.width, u))
	return nil
}

// PushSigned zig-zag maps s and pushes the resulting unsigned value.
func (ae *AdaptiveEncoder[U]) PushSigned(s int64) error {
	return ae.Push(ToUnsigned(ae.enc.width, s))
}

// Flush delegates to the underlying Encoder.
func (ae *AdaptiveEncoder[U]) Flush() error { return ae.enc.Flush() }

// K reports the order currently in effect.
func (ae *AdaptiveEncoder[U]) K() int { return ae.enc.K() }

// AdaptiveDecoder wraps a Decoder and updates its order k after every
// symbol using the value it just reconstructed, mirroring
// AdaptiveEncoder step for step so the two stay in lockstep.
type AdaptiveDecoder[U Unit] struct {
	dec *Decoder[U]
	a   int
}

// NewAdaptiveDecoder constructs an AdaptiveDecoder over source, mirroring
// the parameters passed to NewAdaptive on the encode side.
func NewAdaptiveDecoder[U Unit](source Source[U], width, kInitial, a int) *AdaptiveDecoder[U] {
	if a < 0 || a >= width {
		panic(ErrInvalidAdaptivity)
	}
	return &AdaptiveDecoder[U]{dec: NewDecoder[U](source, width, kInitial), a: a}
}

// Pull decodes the next symbol at the current order, then updates k
// from the value just reconstructed. Overflow and end-of-stream results
// pass through without adjusting k, since no magnitude was produced.
func (ad *AdaptiveDecoder[U]) Pull() (PullResult, error) {
	r, err := ad.dec.Pull()
	if err != nil || r.Kind != PullValue {
		return r, err
	}
	ad.dec.SetK(nextK(ad.dec.K(), ad.a, ad.dec.width, r.Value))
	return r, nil
}

// PullSigned decodes the next symbol and applies the inverse zig-zag
// mapping.
func (ad *AdaptiveDecoder[U]) PullSigned() (int64, bool, error) {
	r, err := ad.Pull()
	if err != nil {
		return 0, false, err
	}
	if r.Kind != PullValue {
		return 0, false, nil
	}
	return ToSigned(ad.dec.width, r.Value), true, nil
}

// K reports the order currently in effect.
func (ad *AdaptiveDecoder[U]) K() int { return ad.dec.K() }

// nextK applies the update rule k <- k - (k>>a) + (bit_width(m)>>a),
// then clamps to width-1 so the k < width invariant holds even when m's
// bit-width is W itself: an overflow-path magnitude always has
// bit_width == W, which without the clamp could drive k to width.
func nextK(k, a, width int, m uint64) int {
	bw := bits.Len64(m)
	next := k - (k >> uint(a)) + (bw >> uint(a))
	return clamp(next, 0, width-1)
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
