package duration

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		secs    uint64
		nanos   uint32
		want    Duration
		wantErr error
	}{
		{name: "normalized", secs: 1, nanos: 100, want: Duration{secs: 1, nanos: 100}},
		{name: "carry", secs: 1, nanos: 2_500_000_000, want: Duration{secs: 3, nanos: 500_000_000}},
		{name: "exact second", secs: 0, nanos: 1_000_000_000, want: Duration{secs: 1}},
		{name: "max", secs: math.MaxUint64, nanos: 999_999_999, want: Max},
		{name: "carry overflow", secs: math.MaxUint64, nanos: 1_000_000_000, wantErr: ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.secs, tt.nanos)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Panics(t, func() { MustNew(tt.secs, tt.nanos) })

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, MustNew(tt.secs, tt.nanos))
		})
	}
}

func TestFromUnits(t *testing.T) {
	require.Equal(t, Duration{secs: 7}, FromSecs(7))
	require.Equal(t, Duration{secs: 1, nanos: 234_000_000}, FromMillis(1234))
	require.Equal(t, Duration{secs: 1, nanos: 234_567_000}, FromMicros(1_234_567))
	require.Equal(t, Duration{secs: 1, nanos: 234_567_891}, FromNanos(1_234_567_891))
	require.Equal(t, Duration{secs: math.MaxUint64 / 1000, nanos: 615_000_000}, FromMillis(math.MaxUint64))

	d := FromNanos(1_234_567_891)
	require.Equal(t, uint64(1), d.Secs())
	require.Equal(t, uint32(234_567_891), d.SubsecNanos())
	require.Equal(t, uint32(234_567), d.SubsecMicros())
	require.Equal(t, uint32(234), d.SubsecMillis())
	require.False(t, d.IsZero())
	require.True(t, Duration{}.IsZero())
}

func TestStd(t *testing.T) {
	d, err := FromStd(1500 * time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, Duration{secs: 1, nanos: 500_000_000}, d)

	std, err := d.Std()
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, std)

	_, err = FromStd(-time.Nanosecond)
	require.ErrorIs(t, err, ErrNegative)

	top, err := FromStd(math.MaxInt64)
	require.NoError(t, err)

	std, err = top.Std()
	require.NoError(t, err)
	require.Equal(t, time.Duration(math.MaxInt64), std)

	over, err := top.Add(Duration{nanos: 1})
	require.NoError(t, err)

	_, err = over.Std()
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Max.Std()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Duration
		want int
	}{
		{name: "equal", a: Duration{secs: 1, nanos: 1}, b: Duration{secs: 1, nanos: 1}, want: 0},
		{name: "less by seconds", a: Duration{secs: 1, nanos: 999}, b: Duration{secs: 2}, want: -1},
		{name: "less by nanos", a: Duration{secs: 1, nanos: 1}, b: Duration{secs: 1, nanos: 2}, want: -1},
		{name: "greater by seconds", a: Duration{secs: 3}, b: Duration{secs: 2, nanos: 999_999_999}, want: 1},
		{name: "greater by nanos", a: Duration{nanos: 2}, b: Duration{nanos: 1}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Compare(tt.b))
			require.Equal(t, tt.want == 0, tt.a.Equal(tt.b))
		})
	}
}

func TestOpErrorMessage(t *testing.T) {
	_, err := Duration{secs: 1 << 32}.Mul(1 << 32)
	require.Error(t, err)

	msg := err.Error()
	require.True(t, strings.HasPrefix(msg, "OpError Op: `mul`"), msg)
	require.Contains(t, msg, "Operand: `4294967296`")
	require.Contains(t, msg, "secs:4294967296")
	require.True(t, strings.HasSuffix(msg, "\n\tarithmetic overflow"), msg)
}
