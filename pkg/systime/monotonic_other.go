//go:build !linux

package systime

import "time"

var processStart = time.Now()

// Monotonic returns nanoseconds passed from process start.
// Note that returned value is not persistent. That is, returned value is no longer actual after system restart.
func Monotonic() (MonotonicTimestamp, error) {
	return MonotonicTimestamp(Timestamp{}.Add(time.Since(processStart))), nil
}
