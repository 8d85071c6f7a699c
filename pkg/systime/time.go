// Package systime converts absolute points in time to exact durations and
// millisecond offsets from an epoch.
package systime

import (
	"fmt"
	"math"
	"time"

	"github.com/mailru/timeext/pkg/duration"
)

// UnixEpoch is 1970-01-01T00:00:00Z.
var UnixEpoch = Timestamp{}

// Timestamp is an absolute point in time.
type Timestamp struct {
	// sec gives the number of seconds elapsed since the Unix epoch.
	sec int64

	// nsec specifies a non-negative nanosecond offset within the seconds.
	// It must be in the range [0, 999999999].
	nsec int32
}

// Unix returns the Timestamp for the given Unix seconds and nanoseconds.
// nsec outside [0, 999999999] is normalized into sec.
func Unix(sec int64, nsec int64) Timestamp {
	if nsec < 0 || nsec >= duration.NanosPerSec {
		sec += nsec / duration.NanosPerSec

		nsec %= duration.NanosPerSec
		if nsec < 0 {
			sec--

			nsec += duration.NanosPerSec
		}
	}

	return Timestamp{sec: sec, nsec: int32(nsec)}
}

// UnixChecked is Unix for untrusted input. It fails with duration.ErrOverflow
// when carrying nsec into sec leaves the int64 range.
func UnixChecked(sec int64, nsec int64) (Timestamp, error) {
	carry := nsec / duration.NanosPerSec
	if nsec%duration.NanosPerSec < 0 {
		carry--
	}

	if (carry > 0 && sec > math.MaxInt64-carry) || (carry < 0 && sec < math.MinInt64-carry) {
		return Timestamp{}, fmt.Errorf("%w: %d s %d ns does not fit int64 seconds", duration.ErrOverflow, sec, nsec)
	}

	return Unix(sec, nsec), nil
}

func FromTime(t time.Time) Timestamp {
	return Timestamp{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

func (t Timestamp) Time() time.Time {
	return time.Unix(t.sec, int64(t.nsec))
}

func (t Timestamp) Unix() int64 {
	return t.sec
}

func (t Timestamp) Nanosecond() int32 {
	return t.nsec
}

// Add returns the timestamp t+d.
func (t Timestamp) Add(d time.Duration) Timestamp {
	t.sec += int64(d / 1e9)

	nsec := t.nsec + int32(d%1e9)
	if nsec >= 1e9 {
		t.sec++

		nsec -= 1e9
	} else if nsec < 0 {
		t.sec--

		nsec += 1e9
	}

	t.nsec = nsec

	return t
}

// Sub returns the distance between t and u and whether t is before u.
// The distance is exact for any pair of timestamps.
func (t Timestamp) Sub(u Timestamp) (d duration.Duration, negative bool) {
	if t.Before(u) {
		t, u = u, t
		negative = true
	}

	// t.sec >= u.sec, so the wrapped difference is the true one.
	secs := uint64(t.sec) - uint64(u.sec)

	nsec := t.nsec - u.nsec
	if nsec < 0 {
		secs--

		nsec += 1e9
	}

	return duration.MustNew(secs, uint32(nsec)), negative
}

// Equal reports whether the t is equal to u.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.sec == u.sec && t.nsec == u.nsec
}

// Before reports whether the t is before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.sec < u.sec || t.sec == u.sec && t.nsec < u.nsec
}

// After reports whether the t is after u.
func (t Timestamp) After(u Timestamp) bool {
	return t.sec > u.sec || t.sec == u.sec && t.nsec > u.nsec
}

// MillisSince returns the number of whole milliseconds from epoch to t,
// negative when t precedes epoch. The magnitude is truncated toward zero.
//
// Magnitudes above math.MaxInt64 fail with duration.ErrOverflow in both
// directions.
func MillisSince(t, epoch Timestamp) (int64, error) {
	d, negative := t.Sub(epoch)

	ms, err := d.AsMillis()
	if err != nil {
		return 0, err
	}

	if ms > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d ms does not fit int64", duration.ErrOverflow, ms)
	}

	if negative {
		return -int64(ms), nil
	}

	return int64(ms), nil
}

// UnixMillis returns the number of whole milliseconds between t and the Unix
// epoch.
func UnixMillis(t time.Time) (int64, error) {
	return MillisSince(FromTime(t), UnixEpoch)
}
