package duration

import "github.com/mailru/timeext/internal/pkg/wide"

// AsMillis returns the number of whole milliseconds in d. The sub-millisecond
// remainder is truncated.
func (d Duration) AsMillis() (uint64, error) {
	ms, ok := wide.CheckedMul(d.secs, MillisPerSec)
	if ok {
		ms, ok = wide.CheckedAdd(ms, uint64(d.nanos/NanosPerMilli))
	}

	if !ok {
		return 0, d.opError("as_millis", nil, ErrOverflow)
	}

	return ms, nil
}

// Mul returns d*rhs computed exactly.
//
// The scalar is split as rhs = a*NanosPerSec + b. The nanoseconds times b fit
// in 64 bits and yield the result nanoseconds plus a carry; the nanoseconds
// times a are whole seconds.
func (d Duration) Mul(rhs uint64) (Duration, error) {
	a, b := rhs/NanosPerSec, rhs%NanosPerSec

	nanos := uint64(d.nanos) * b
	carry := nanos / NanosPerSec

	secs, ok := wide.CheckedMul(d.secs, rhs)
	if ok {
		secs, ok = wide.CheckedAdd(secs, carry)
	}

	if ok {
		var whole uint64

		whole, ok = wide.CheckedMul(uint64(d.nanos), a)
		if ok {
			secs, ok = wide.CheckedAdd(secs, whole)
		}
	}

	if !ok {
		return Duration{}, d.opError("mul", rhs, ErrOverflow)
	}

	return Duration{secs: secs, nanos: uint32(nanos % NanosPerSec)}, nil
}

// Div returns d/rhs truncated to nanosecond precision.
//
// Seconds left over from the whole-seconds division are moved into the
// nanosecond domain together with the nanosecond remainder, so the result is
// exactly floor(d/rhs):
//
//	nanos = d.nanos/rhs + floor((rem*NanosPerSec + d.nanos%rhs) / rhs)
//
// rem < rhs keeps the second term below NanosPerSec and the sum stays below
// NanosPerSec because it equals floor((rem*NanosPerSec + d.nanos) / rhs).
func (d Duration) Div(rhs uint64) (Duration, error) {
	if rhs == 0 {
		return Duration{}, d.opError("div", rhs, ErrDivideByZero)
	}

	secs := d.secs / rhs
	rem := d.secs - secs*rhs

	extra, err := wide.MulAddDiv(rem, NanosPerSec, uint64(d.nanos)%rhs, rhs)
	if err != nil {
		return Duration{}, d.opError("div", rhs, err)
	}

	nanos := uint64(d.nanos)/rhs + extra

	return Duration{secs: secs, nanos: uint32(nanos)}, nil
}

// Mul32 is Mul for a 32-bit scalar. It needs no wide arithmetic.
func (d Duration) Mul32(rhs uint32) (Duration, error) {
	nanos := uint64(d.nanos) * uint64(rhs)
	carry := nanos / NanosPerSec

	secs, ok := wide.CheckedMul(d.secs, uint64(rhs))
	if ok {
		secs, ok = wide.CheckedAdd(secs, carry)
	}

	if !ok {
		return Duration{}, d.opError("mul32", rhs, ErrOverflow)
	}

	return Duration{secs: secs, nanos: uint32(nanos % NanosPerSec)}, nil
}

// Div32 is Div for a 32-bit scalar. It needs no wide arithmetic.
func (d Duration) Div32(rhs uint32) (Duration, error) {
	if rhs == 0 {
		return Duration{}, d.opError("div32", rhs, ErrDivideByZero)
	}

	r := uint64(rhs)
	secs := d.secs / r
	rem := d.secs - secs*r
	nanos := uint64(d.nanos)/r + (rem*NanosPerSec+uint64(d.nanos)%r)/r

	return Duration{secs: secs, nanos: uint32(nanos)}, nil
}

// Add returns d+o.
func (d Duration) Add(o Duration) (Duration, error) {
	secs, ok := wide.CheckedAdd(d.secs, o.secs)

	nanos := d.nanos + o.nanos
	if ok && nanos >= NanosPerSec {
		nanos -= NanosPerSec
		secs, ok = wide.CheckedAdd(secs, 1)
	}

	if !ok {
		return Duration{}, d.opError("add", o, ErrOverflow)
	}

	return Duration{secs: secs, nanos: nanos}, nil
}

// Sub returns d-o. A negative result is reported as ErrOverflow.
func (d Duration) Sub(o Duration) (Duration, error) {
	secs, ok := wide.CheckedSub(d.secs, o.secs)

	var nanos uint32

	if d.nanos >= o.nanos {
		nanos = d.nanos - o.nanos
	} else if ok {
		nanos = d.nanos + NanosPerSec - o.nanos
		secs, ok = wide.CheckedSub(secs, 1)
	}

	if !ok {
		return Duration{}, d.opError("sub", o, ErrOverflow)
	}

	return Duration{secs: secs, nanos: nanos}, nil
}
