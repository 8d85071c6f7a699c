package duration

import (
	"math"
	"time"

	"github.com/mailru/timeext/internal/pkg/wide"
)

const (
	NanosPerSec   = 1_000_000_000
	NanosPerMilli = 1_000_000
	NanosPerMicro = 1_000
	MillisPerSec  = 1_000
	MicrosPerSec  = 1_000_000
)

// Max is the largest representable Duration.
var Max = Duration{secs: math.MaxUint64, nanos: NanosPerSec - 1}

// Duration is a non-negative span of time with nanosecond precision.
type Duration struct {
	// secs is the number of whole seconds.
	secs uint64

	// nanos is the sub-second part, always in [0, NanosPerSec).
	nanos uint32
}

// New returns secs seconds plus nanos nanoseconds. Nanoseconds beyond one
// second are carried into the seconds.
func New(secs uint64, nanos uint32) (Duration, error) {
	if nanos < NanosPerSec {
		return Duration{secs: secs, nanos: nanos}, nil
	}

	s, ok := wide.CheckedAdd(secs, uint64(nanos/NanosPerSec))
	if !ok {
		return Duration{}, Duration{secs: secs}.opError("new", nanos, ErrOverflow)
	}

	return Duration{secs: s, nanos: nanos % NanosPerSec}, nil
}

// MustNew is like New but panics if the seconds overflow.
func MustNew(secs uint64, nanos uint32) Duration {
	d, err := New(secs, nanos)
	if err != nil {
		panic(err)
	}

	return d
}

func FromSecs(secs uint64) Duration {
	return Duration{secs: secs}
}

func FromMillis(millis uint64) Duration {
	return Duration{
		secs:  millis / MillisPerSec,
		nanos: uint32(millis%MillisPerSec) * NanosPerMilli,
	}
}

func FromMicros(micros uint64) Duration {
	return Duration{
		secs:  micros / MicrosPerSec,
		nanos: uint32(micros%MicrosPerSec) * NanosPerMicro,
	}
}

func FromNanos(nanos uint64) Duration {
	return Duration{
		secs:  nanos / NanosPerSec,
		nanos: uint32(nanos % NanosPerSec),
	}
}

// FromStd converts a time.Duration. Negative values are rejected with
// ErrNegative.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, Duration{}.opError("from_std", d, ErrNegative)
	}

	return FromNanos(uint64(d)), nil
}

// Std converts d to a time.Duration, failing with ErrOverflow above
// math.MaxInt64 nanoseconds.
func (d Duration) Std() (time.Duration, error) {
	n, ok := wide.CheckedMul(d.secs, NanosPerSec)
	if ok {
		n, ok = wide.CheckedAdd(n, uint64(d.nanos))
	}

	if !ok || n > math.MaxInt64 {
		return 0, d.opError("std", nil, ErrOverflow)
	}

	return time.Duration(n), nil
}

// Secs returns the number of whole seconds.
func (d Duration) Secs() uint64 {
	return d.secs
}

// SubsecNanos returns the fractional part in nanoseconds.
func (d Duration) SubsecNanos() uint32 {
	return d.nanos
}

// SubsecMicros returns the fractional part in whole microseconds.
func (d Duration) SubsecMicros() uint32 {
	return d.nanos / NanosPerMicro
}

// SubsecMillis returns the fractional part in whole milliseconds.
func (d Duration) SubsecMillis() uint32 {
	return d.nanos / NanosPerMilli
}

func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to or longer than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.secs < o.secs, d.secs == o.secs && d.nanos < o.nanos:
		return -1
	case d.secs > o.secs, d.secs == o.secs && d.nanos > o.nanos:
		return 1
	default:
		return 0
	}
}

func (d Duration) Equal(o Duration) bool {
	return d.secs == o.secs && d.nanos == o.nanos
}
