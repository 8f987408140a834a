package golomb

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestAdaptiveSymmetry checks that an AdaptiveEncoder and
// AdaptiveDecoder started from the same k and a, fed the same
// magnitudes in the same order, decode every value back and end on the
// same k.
func TestAdaptiveSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const width = 16

	for trial := 0; trial < 200; trial++ {
		k0 := rng.Intn(width)
		a := rng.Intn(width)
		n := rng.Intn(20)
		vals := make([]uint64, n)
		for i := range vals {
			vals[i] = randWidthValue(rng, width)
		}

		sink := &SliceSink[uint8]{}
		ae := NewAdaptive[uint8](sink, width, k0, a)
		for _, v := range vals {
			if err := ae.Push(v); err != nil {
				t.Fatalf("Push: %v", err)
			}
		}
		if err := ae.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}

		ad := NewAdaptiveDecoder[uint8](NewSliceSource(sink.Units), width, k0, a)
		got := make([]uint64, 0, n)
		for range vals {
			r, err := ad.Pull()
			if err != nil {
				t.Fatalf("k0=%d a=%d vals=%v: Pull: %v", k0, a, vals, err)
			}
			if r.Kind != PullValue {
				t.Fatalf("k0=%d a=%d vals=%v: Kind=%v", k0, a, vals, r.Kind)
			}
			got = append(got, r.Value)
		}
		if diff := cmp.Diff(vals, got); diff != "" {
			t.Fatalf("k0=%d a=%d: round trip mismatch (-want +got):\n%s", k0, a, diff)
		}
		if ae.K() != ad.K() {
			t.Fatalf("k0=%d a=%d: final k diverged: encoder=%d decoder=%d", k0, a, ae.K(), ad.K())
		}
	}
}

func TestNextKSnapsWithZeroAdaptivity(t *testing.T) {
	tests := []struct {
		k, width int
		m        uint64
		want     int
	}{
		{3, 8, 255, 7}, // bit_width(255)=8, clamped to width-1
		{3, 8, 5, 3},   // bit_width(5)=3
		{0, 8, 0, 0},   // bit_width(0)=0
	}
	for _, tc := range tests {
		got := nextK(tc.k, 0, tc.width, tc.m)
		if got != tc.want {
			t.Errorf("nextK(%d, 0, %d, %d) = %d, want %d", tc.k, tc.width, tc.m, got, tc.want)
		}
	}
}

func TestNewAdaptivePanicsOnInvalidA(t *testing.T) {
	sink := &SliceSink[uint8]{}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for a >= width")
		}
	}()
	NewAdaptive[uint8](sink, 8, 0, 8)
}
