// Package wide contains double-width unsigned integer primitives built from
// 64-bit and 32-bit half-word operations.
//
// A 128-bit value is always passed as a (hi, lo) pair of 64-bit words.
package wide

import (
	"math/bits"

	"github.com/mailru/timeext/internal/pkg/arerror"
)

const (
	halfBits = 32
	halfBase = 1 << halfBits
	halfMask = halfBase - 1
)

// Mul64 returns the 128-bit product of a and b.
//
// The operands are split into 32-bit halves, the four partial products are
// computed with ordinary 64-bit multiplication and combined with carries.
func Mul64(a, b uint64) (hi, lo uint64) {
	a0, a1 := a&halfMask, a>>halfBits
	b0, b1 := b&halfMask, b>>halfBits

	w0 := a0 * b0
	t := a1*b0 + w0>>halfBits
	w1 := t&halfMask + a0*b1
	w2 := t >> halfBits

	hi = a1*b1 + w2 + w1>>halfBits
	lo = a * b

	return hi, lo
}

// Add128 returns (hi, lo) + v and reports whether the sum still fits in 128 bits.
func Add128(hi, lo, v uint64) (sumHi, sumLo uint64, ok bool) {
	sumLo = lo + v
	sumHi = hi

	if sumLo < lo {
		sumHi++
		if sumHi == 0 {
			return 0, 0, false
		}
	}

	return sumHi, sumLo, true
}

// Div128 divides the 128-bit value (hi, lo) by d and returns the quotient and
// the remainder.
//
// It returns arerror.ErrDivideByZero for d == 0 and arerror.ErrOverflow when
// the quotient does not fit in 64 bits, that is when hi >= d.
//
// The division is a two digit long division in base 2^32. The divisor is
// normalized so that its top bit is set, every quotient digit is estimated by
// a single 64/32 division and then corrected downward; after normalization
// the estimate is at most two too large.
func Div128(hi, lo, d uint64) (q, r uint64, err error) {
	if d == 0 {
		return 0, 0, arerror.ErrDivideByZero
	}

	if hi >= d {
		return 0, 0, arerror.ErrOverflow
	}

	s := uint(bits.LeadingZeros64(d))

	var un32, un10 uint64

	if s == 0 {
		un32 = hi
		un10 = lo
	} else {
		d <<= s
		un32 = hi<<s | lo>>(64-s)
		un10 = lo << s
	}

	vn1 := d >> halfBits
	vn0 := d & halfMask

	un1 := un10 >> halfBits
	un0 := un10 & halfMask

	q1 := un32 / vn1
	rhat := un32 - q1*vn1

	for q1 >= halfBase || q1*vn0 > halfBase*rhat+un1 {
		q1--
		rhat += vn1

		if rhat >= halfBase {
			break
		}
	}

	// Wraps modulo 2^64, the true value is below d.
	un21 := un32*halfBase + un1 - q1*d

	q0 := un21 / vn1
	rhat = un21 - q0*vn1

	for q0 >= halfBase || q0*vn0 > halfBase*rhat+un0 {
		q0--
		rhat += vn1

		if rhat >= halfBase {
			break
		}
	}

	q = q1*halfBase + q0
	r = (un21*halfBase + un0 - q0*d) >> s

	return q, r, nil
}

// MulDiv returns floor(a*b/c) computed without losing precision.
//
// Only a quotient that does not fit in 64 bits is reported as
// arerror.ErrOverflow; the intermediate product may use all 128 bits.
func MulDiv(a, b, c uint64) (uint64, error) {
	return MulAddDiv(a, b, 0, c)
}

// MulAddDiv returns floor((a*b + e)/c) computed without losing precision.
func MulAddDiv(a, b, e, c uint64) (uint64, error) {
	if c == 0 {
		return 0, arerror.ErrDivideByZero
	}

	hi, lo := Mul64(a, b)

	hi, lo, ok := Add128(hi, lo, e)
	if !ok {
		return 0, arerror.ErrOverflow
	}

	if hi == 0 {
		return lo / c, nil
	}

	q, _, err := Div128(hi, lo, c)
	if err != nil {
		return 0, err
	}

	return q, nil
}

// CheckedMul returns a*b and false if the product overflows uint64.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := Mul64(a, b)
	if hi != 0 {
		return 0, false
	}

	return lo, true
}

// CheckedAdd returns a+b and false if the sum overflows uint64.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}

	return sum, true
}

// CheckedSub returns a-b and false if b > a.
func CheckedSub(a, b uint64) (uint64, bool) {
	if b > a {
		return 0, false
	}

	return a - b, true
}
