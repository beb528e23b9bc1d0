// Package config loads the runtime settings of the gridpath binaries from
// the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
)

// ErrInvalidValue is returned for a malformed or out-of-range variable.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	HostIP       string        // Host IP for the server
	RESTPort     int           // Port for the REST API
	GinMode      string        // Mode for the Gin framework (release, debug, test)
	GridRows     int           // Rows of a default board
	GridCols     int           // Columns of a default board
	VisitDelay   time.Duration // Spacing of visit frames
	PathDelay    time.Duration // Spacing of path frames
	MaxGridCells int           // Largest grid a session may hold, 0 for no limit
}

// Addr returns the REST listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// Load reads .env if present, then the environment, applying defaults for
// unset variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var (
		c   Config
		err error
	)
	c.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	c.GinMode = getEnvWithDefault("GIN_MODE", "release")
	if c.RESTPort, err = getEnvAsInt("REST_PORT", 8080, 1, 65535); err != nil {
		return Config{}, err
	}
	if c.GridRows, err = getEnvAsInt("GRID_ROWS", gridgraph.DefaultRows, 1, 0); err != nil {
		return Config{}, err
	}
	if c.GridCols, err = getEnvAsInt("GRID_COLS", gridgraph.DefaultCols, 1, 0); err != nil {
		return Config{}, err
	}
	if c.VisitDelay, err = getEnvAsMillis("VISIT_DELAY_MS", playback.DefaultVisitDelay); err != nil {
		return Config{}, err
	}
	if c.PathDelay, err = getEnvAsMillis("PATH_DELAY_MS", playback.DefaultPathDelay); err != nil {
		return Config{}, err
	}
	if c.MaxGridCells, err = getEnvAsInt("MAX_GRID_CELLS", 10_000, 0, 0); err != nil {
		return Config{}, err
	}
	return c, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable bounded below by lo and, when
// hi > 0, above by hi.
func getEnvAsInt(key string, defaultValue, lo, hi int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	if value < lo || (hi > 0 && value > hi) {
		return 0, fmt.Errorf("%w: %s=%d out of range", ErrInvalidValue, key, value)
	}
	return value, nil
}

// getEnvAsMillis parses a non-negative millisecond count.
func getEnvAsMillis(key string, defaultValue time.Duration) (time.Duration, error) {
	ms, err := getEnvAsInt(key, int(defaultValue/time.Millisecond), 0, 0)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
