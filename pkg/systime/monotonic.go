package systime

import (
	"time"

	"github.com/mailru/timeext/pkg/duration"
)

type MonotonicTimestamp Timestamp

func (m MonotonicTimestamp) Add(d time.Duration) MonotonicTimestamp {
	return MonotonicTimestamp(Timestamp(m).Add(d))
}

func (m MonotonicTimestamp) Sub(u MonotonicTimestamp) (duration.Duration, bool) {
	return Timestamp(m).Sub(Timestamp(u))
}

func (m MonotonicTimestamp) Equal(u MonotonicTimestamp) bool {
	return Timestamp(m).Equal(Timestamp(u))
}

func (m MonotonicTimestamp) Before(u MonotonicTimestamp) bool {
	return Timestamp(m).Before(Timestamp(u))
}

func (m MonotonicTimestamp) After(u MonotonicTimestamp) bool {
	return Timestamp(m).After(Timestamp(u))
}

// Elapsed returns the time passed since the given monotonic reading.
func Elapsed(since MonotonicTimestamp) (duration.Duration, error) {
	now, err := Monotonic()
	if err != nil {
		return duration.Duration{}, err
	}

	d, negative := now.Sub(since)
	if negative {
		return duration.Duration{}, &duration.OpError{Op: "elapsed", Duration: d, Err: duration.ErrNegative}
	}

	return d, nil
}
