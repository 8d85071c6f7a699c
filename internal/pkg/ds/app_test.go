package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppInfo(t *testing.T) {
	info := NewAppInfo().
		WithVersion("1.2.0").
		WithBuildCommit("abc123").
		WithBuildTime("2024-01-01").
		WithBuildOS("linux")

	require.Equal(t, "durcalc@1.2.0 (Commit: abc123; BuildTime: 2024-01-01; BuildOS: linux)", info.String())
	require.Equal(t, "1.2.0", info.Version())
	require.NotEmpty(t, info.StartTime())
}
