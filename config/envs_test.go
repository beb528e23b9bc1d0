package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HOST_IP", "REST_PORT", "GIN_MODE", "GRID_ROWS", "GRID_COLS",
		"VISIT_DELAY_MS", "PATH_DELAY_MS", "MAX_GRID_CELLS"} {
		unsetEnv(t, k)
	}

	c, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, config.Config{
		HostIP:       "0.0.0.0",
		RESTPort:     8080,
		GinMode:      "release",
		GridRows:     20,
		GridCols:     50,
		VisitDelay:   10 * time.Millisecond,
		PathDelay:    50 * time.Millisecond,
		MaxGridCells: 10000,
	}, c)
	require.Equal(t, "0.0.0.0:8080", c.Addr())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HOST_IP", "127.0.0.1")
	t.Setenv("REST_PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("GRID_ROWS", "5")
	t.Setenv("GRID_COLS", "7")
	t.Setenv("VISIT_DELAY_MS", "0")
	t.Setenv("PATH_DELAY_MS", "3")
	t.Setenv("MAX_GRID_CELLS", "0")

	c, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", c.Addr())
	require.Equal(t, "debug", c.GinMode)
	require.Equal(t, 5, c.GridRows)
	require.Equal(t, 7, c.GridCols)
	require.Zero(t, c.VisitDelay)
	require.Equal(t, 3*time.Millisecond, c.PathDelay)
	require.Zero(t, c.MaxGridCells)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"REST_PORT", "http"},
		{"REST_PORT", "70000"},
		{"GRID_ROWS", "0"},
		{"GRID_COLS", "-3"},
		{"VISIT_DELAY_MS", "-1"},
		{"PATH_DELAY_MS", "fast"},
		{"MAX_GRID_CELLS", "-10"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.FromEnv()
			require.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}
