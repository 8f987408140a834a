package golomb

import "errors"

// Programmer errors: a caller violated a precondition the coder does
// not defend against at runtime beyond this panic.
var (
	// ErrInvalidK is the panic value when k does not satisfy 0 <= k < W.
	ErrInvalidK = errors.New("golomb: k out of range: must satisfy 0 <= k < W")

	// ErrInvalidAdaptivity is the panic value when the adaptive factor a
	// does not satisfy 0 <= a < W.
	ErrInvalidAdaptivity = errors.New("golomb: adaptive factor out of range: must satisfy 0 <= a < W")
)

// Stream errors: reported as structured values, never panicked, since
// the coder has no framing information to recover with.
var (
	// ErrTruncatedStream is returned by Pull when the source is
	// exhausted after at least one bit of a new symbol was already
	// consumed, leaving a symbol that can never be completed.
	ErrTruncatedStream = errors.New("golomb: source exhausted mid-symbol")

	// ErrZeroOverflow is returned by the package-level Decode when a
	// leading-zero run exceeds what any validly-encoded symbol could
	// produce. Callers that need to clip or skip past the malformed
	// symbol instead of aborting should drive a Decoder directly and
	// inspect PullResult.Kind themselves.
	ErrZeroOverflow = errors.New("golomb: zero run exceeds width-k, malformed stream")
)
