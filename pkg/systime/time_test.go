package systime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mailru/timeext/pkg/duration"
)

func TestUnixMillis(t *testing.T) {
	epoch := time.Unix(0, 0)

	tests := []struct {
		name    string
		t       time.Time
		want    int64
		wantErr error
	}{
		{name: "after epoch", t: epoch.Add(100 * time.Millisecond), want: 100},
		{name: "before epoch", t: epoch.Add(-100 * time.Millisecond), want: -100},
		{name: "epoch", t: epoch, want: 0},
		{name: "truncates after epoch", t: epoch.Add(1999 * time.Microsecond), want: 1},
		{name: "truncates before epoch toward zero", t: epoch.Add(-1999 * time.Microsecond), want: -1},
		{name: "wall clock", t: time.Date(2024, 2, 29, 12, 0, 0, 123_456_789, time.UTC), want: 1709208000123},
		{name: "far before epoch", t: time.Unix(-1<<60, 0), wantErr: duration.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnixMillis(tt.t)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMillisSinceBounds(t *testing.T) {
	// math.MaxInt64 ms is 9223372036854775.807 s.
	const maxSec, maxNsec = 9223372036854775, 807_000_000

	tests := []struct {
		name    string
		t       Timestamp
		epoch   Timestamp
		want    int64
		wantErr error
	}{
		{name: "positive bound", t: Unix(maxSec, maxNsec), epoch: UnixEpoch, want: math.MaxInt64},
		{name: "above positive bound", t: Unix(maxSec, maxNsec+1_000_000), epoch: UnixEpoch, wantErr: duration.ErrOverflow},
		{name: "negative bound", t: Unix(-maxSec, -maxNsec), epoch: UnixEpoch, want: -math.MaxInt64},
		{name: "two to the 63 before epoch", t: Unix(-maxSec, -maxNsec-1_000_000), epoch: UnixEpoch, wantErr: duration.ErrOverflow},
		{name: "custom epoch", t: Unix(1_000, 250_000_000), epoch: Unix(999, 0), want: 1250},
		{name: "custom epoch after t", t: Unix(999, 0), epoch: Unix(1_000, 250_000_000), want: -1250},
		{name: "extreme distance", t: Unix(math.MaxInt64, 999_999_999), epoch: Unix(math.MinInt64, 0), wantErr: duration.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MillisSince(tt.t, tt.epoch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTimestampSub(t *testing.T) {
	tests := []struct {
		name     string
		t, u     Timestamp
		want     duration.Duration
		negative bool
	}{
		{name: "same", t: Unix(5, 5), u: Unix(5, 5), want: duration.Duration{}},
		{name: "borrow nanos", t: Unix(2, 100), u: Unix(1, 200), want: duration.MustNew(0, 999_999_900)},
		{name: "negative", t: Unix(1, 200), u: Unix(2, 100), want: duration.MustNew(0, 999_999_900), negative: true},
		{name: "full range", t: Unix(math.MaxInt64, 999_999_999), u: Unix(math.MinInt64, 0), want: duration.Max},
		{name: "full range reversed", t: Unix(math.MinInt64, 0), u: Unix(math.MaxInt64, 999_999_999), want: duration.Max, negative: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, negative := tt.t.Sub(tt.u)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.negative, negative)
		})
	}
}

func TestTimestamp(t *testing.T) {
	ts := Unix(10, -1)
	require.Equal(t, int64(9), ts.Unix())
	require.Equal(t, int32(999_999_999), ts.Nanosecond())

	ts = Unix(10, 2_500_000_000)
	require.Equal(t, int64(12), ts.Unix())
	require.Equal(t, int32(500_000_000), ts.Nanosecond())

	now := time.Now()
	require.True(t, FromTime(now).Time().Equal(now))

	require.Equal(t, Unix(1, 500_000_000), Unix(0, 700_000_000).Add(800*time.Millisecond))
	require.Equal(t, Unix(-1, 900_000_000), Unix(0, 100_000_000).Add(-200*time.Millisecond))

	require.True(t, Unix(1, 0).Before(Unix(1, 1)))
	require.True(t, Unix(2, 0).After(Unix(1, 999_999_999)))
	require.True(t, Unix(1, 1).Equal(Unix(0, 1_000_000_001)))
}

func TestUnixChecked(t *testing.T) {
	tests := []struct {
		name      string
		sec, nsec int64
		want      Timestamp
		wantErr   error
	}{
		{name: "in range", sec: 10, nsec: 2_500_000_000, want: Unix(12, 500_000_000)},
		{name: "max seconds", sec: math.MaxInt64, nsec: 999_999_999, want: Unix(math.MaxInt64, 999_999_999)},
		{name: "min seconds", sec: math.MinInt64, nsec: 0, want: Unix(math.MinInt64, 0)},
		{name: "borrow near min", sec: math.MinInt64 + 1, nsec: -1, want: Unix(math.MinInt64, 999_999_999)},
		{name: "carry past max", sec: math.MaxInt64, nsec: 1_000_000_000, wantErr: duration.ErrOverflow},
		{name: "large carry past max", sec: math.MaxInt64 - 5, nsec: math.MaxInt64, wantErr: duration.ErrOverflow},
		{name: "borrow past min", sec: math.MinInt64, nsec: -1, wantErr: duration.ErrOverflow},
		{name: "large borrow past min", sec: math.MinInt64 + 5, nsec: math.MinInt64, wantErr: duration.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnixChecked(tt.sec, tt.nsec)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMonotonic(t *testing.T) {
	start, err := Monotonic()
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	end, err := Monotonic()
	require.NoError(t, err)
	require.True(t, end.After(start))

	d, negative := end.Sub(start)
	require.False(t, negative)
	require.GreaterOrEqual(t, d.Compare(duration.FromMillis(1)), 0)

	elapsed, err := Elapsed(start)
	require.NoError(t, err)
	require.GreaterOrEqual(t, elapsed.Compare(d), 0)

	_, err = Elapsed(end.Add(time.Hour))
	require.ErrorIs(t, err, duration.ErrNegative)
}
