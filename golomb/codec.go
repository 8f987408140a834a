package golomb

// Option configures the package-level Encode and Decode convenience
// functions, following the usual functional-options shape.
type Option func(*options)

type options struct {
	adaptive bool
	a        int
}

// WithAdaptive turns on the adaptive-k controller with adaptivity
// factor a, in place of a fixed k for the whole run.
func WithAdaptive(a int) Option {
	return func(o *options) {
		o.adaptive = true
		o.a = a
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Encode packs xs into a fresh SliceSink of code unit type U, coding
// each element at width T using order k (or the adaptive controller,
// if WithAdaptive was given), and returns the resulting code units
// after a final Flush.
func Encode[T Integer, U Unit](xs []T, k int, opts ...Option) ([]U, error) {
	o := buildOptions(opts)
	width := widthOfT[T]()

	sink := &SliceSink[U]{}

	if o.adaptive {
		ae := NewAdaptive[U](sink, width, k, o.a)
		for _, x := range xs {
			_, u := widthOf(x)
			if err := ae.Push(u); err != nil {
				return nil, err
			}
		}
		if err := ae.Flush(); err != nil {
			return nil, err
		}
		return sink.Units, nil
	}

	enc := New[U](sink, width, k)
	for _, x := range xs {
		_, u := widthOf(x)
		if err := enc.Push(u); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return sink.Units, nil
}

// Decode reconstructs up to count elements of type T from units,
// coded with order k (or the adaptive controller, matching whatever
// Encode call produced units). A count of -1 decodes until the source
// is cleanly exhausted at a symbol boundary.
func Decode[T Integer, U Unit](units []U, k int, count int, opts ...Option) ([]T, error) {
	o := buildOptions(opts)
	width := widthOfT[T]()

	source := NewSliceSource(units)

	out := make([]T, 0, maxInt(count, 0))

	if o.adaptive {
		ad := NewAdaptiveDecoder[U](source, width, k, o.a)
		for count < 0 || len(out) < count {
			r, err := ad.Pull()
			if err != nil {
				return nil, err
			}
			switch r.Kind {
			case PullDone:
				return out, nil
			case PullZeroOverflow:
				return out, ErrZeroOverflow
			}
			out = append(out, valueFromRegister[T](width, r.Value))
		}
		return out, nil
	}

	dec := NewDecoder[U](source, width, k)
	for count < 0 || len(out) < count {
		r, err := dec.Pull()
		if err != nil {
			return nil, err
		}
		switch r.Kind {
		case PullDone:
			return out, nil
		case PullZeroOverflow:
			return out, ErrZeroOverflow
		}
		out = append(out, valueFromRegister[T](width, r.Value))
	}
	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
