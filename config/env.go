package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MergeFromEnv overrides config values from STITCHER_* environment
// variables. A .env file in the working directory is loaded first when
// present, so pipeline wrappers can drop their settings next to the
// job without exporting anything.
//
// Environment sits between the config file and CLI flags in the
// precedence order.
func (c *Config) MergeFromEnv() {
	// Ignore the error: a missing .env file simply means the plain
	// process environment is used.
	_ = godotenv.Load()

	if v := os.Getenv("STITCHER_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("STITCHER_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("STITCHER_TEMP_DIR"); v != "" {
		c.TempDir = v
	}
	if v := os.Getenv("STITCHER_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("STITCHER_EXTENSION"); v != "" {
		c.Extension = v
	}
	if v := os.Getenv("STITCHER_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}
