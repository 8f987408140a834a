package golomb

// ToUnsigned maps a width-W signed value onto the unsigned integers of
// the same width using the standard zig-zag mapping: s >= 0 maps
// to 2s, s < 0 maps to 2(-s)-1. Small magnitudes stay small either way.
//
// width must be one of 8, 16, 32, 64; s is taken to already be a valid
// width-W two's-complement value (the caller's Go type enforces this
// for width == bit-size-of-type; callers narrowing a wider register
// must mask first).
//
// The classic branch-free formula (n<<1) ^ (n>>(W-1)) — the same
// identity github.com/egonelbre/exp-protobuf-compression's
// zigzagEncode uses for int64 — is generalized here to any of the four
// supported widths by doing the arithmetic in int64 and then masking
// down to W bits, since Go's shift operators on int64 behave exactly
// like a two's-complement machine register.
func ToUnsigned(width int, s int64) uint64 {
	shift := uint(width - 1)
	n := signExtend(width, s)
	u := uint64(n<<1) ^ uint64(n>>shift)
	return u & mask(width)
}

// ToSigned is the inverse of ToUnsigned: given the low W bits of u,
// recover the signed value. If the least significant bit is 0 the
// result is u>>1; if it is 1 the result is ^(u>>1) in width-W
// two's-complement.
func ToSigned(width int, u uint64) int64 {
	u &= mask(width)
	half := int64(u >> 1)
	sign := -int64(u & 1)
	return signExtend(width, half^sign)
}

// mask returns a register with the low width bits set.
func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// signExtend reinterprets the low width bits of n as a two's-complement
// signed quantity and sign-extends it to a full int64, so that Go's
// native >> on the result performs an arithmetic (sign-filling) shift
// exactly as if it were a width-W register.
func signExtend(width int, n int64) int64 {
	if width >= 64 {
		return n
	}
	shift := uint(64 - width)
	return (n << shift) >> shift
}
