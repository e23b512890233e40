package config

import (
	"fmt"
	"os"
	"strings"

	"stitcher/models"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Input == "" {
		errors = append(errors, "input file is required")
	} else {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input file does not exist: %s", c.Input))
		}
	}

	if c.Output == "" {
		errors = append(errors, "output file is required")
	}

	if c.TempDir == "" {
		errors = append(errors, "temp dir is required")
	} else {
		if info, err := os.Stat(c.TempDir); err != nil {
			errors = append(errors, fmt.Sprintf("temp dir does not exist: %s", c.TempDir))
		} else if !info.IsDir() {
			errors = append(errors, fmt.Sprintf("temp dir is not a directory: %s", c.TempDir))
		}
	}

	// Backend is resolved here once; a typo fails configuration
	// instead of silently routing to the fallback backend.
	if _, err := models.ParseBackend(c.Backend); err != nil {
		errors = append(errors, fmt.Sprintf("invalid backend '%s', must be one of: %s",
			c.Backend, backendList()))
	}

	if c.Extension == "" {
		errors = append(errors, "chunk extension is required")
	} else if strings.HasPrefix(c.Extension, ".") {
		errors = append(errors, "chunk extension must not include the leading dot")
	}

	if c.ExpectedSegments < 0 {
		errors = append(errors, "expected segments cannot be negative (use 0 to trust discovery)")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ResolveBackend returns the parsed backend selector. It must only be
// called after Validate has passed; an invalid selector at this point
// is a programming error.
func (c *Config) ResolveBackend() models.Backend {
	backend, err := models.ParseBackend(c.Backend)
	if err != nil {
		panic(fmt.Sprintf("config: backend not validated: %v", err))
	}
	return backend
}
