package systime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Monotonic returns nanoseconds passed from some point in past.
// Note that returned value is not persistent. That is, returned value is no longer actual after system restart.
func Monotonic() (MonotonicTimestamp, error) {
	var ts unix.Timespec

	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return MonotonicTimestamp{}, fmt.Errorf("clock_gettime error: %w", err)
	}

	return MonotonicTimestamp{
		sec:  int64(ts.Sec),
		nsec: int32(ts.Nsec),
	}, nil
}
