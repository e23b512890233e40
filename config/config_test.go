package config

import (
	"os"
	"path/filepath"
	"testing"
)

// createTempInput creates a fake source file and returns its path.
func createTempInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.mkv")
	if err := os.WriteFile(path, []byte("media"), 0644); err != nil {
		t.Fatalf("Failed to create temp input: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Check defaults
	if cfg.Backend != "mkvmerge" {
		t.Errorf("Expected backend 'mkvmerge', got '%s'", cfg.Backend)
	}
	if cfg.Extension != "mkv" {
		t.Errorf("Expected extension 'mkv', got '%s'", cfg.Extension)
	}
	if cfg.ExpectedSegments != 0 {
		t.Errorf("Expected segments 0 (trust discovery), got %d", cfg.ExpectedSegments)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to be false")
	}
	if cfg.DryRun {
		t.Error("Expected dry-run to be false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *Config
		expectError bool
	}{
		{
			name: "valid config",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				return cfg
			},
		},
		{
			name: "missing input",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				return cfg
			},
			expectError: true,
		},
		{
			name: "nonexistent input",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = "/nonexistent/source.mkv"
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				return cfg
			},
			expectError: true,
		},
		{
			name: "missing output",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.TempDir = t.TempDir()
				return cfg
			},
			expectError: true,
		},
		{
			name: "missing temp dir",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.Output = "/tmp/final.mkv"
				return cfg
			},
			expectError: true,
		},
		{
			name: "unknown backend",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				cfg.Backend = "handbrake"
				return cfg
			},
			expectError: true,
		},
		{
			name: "ffmpeg backend accepted",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				cfg.Backend = "ffmpeg"
				return cfg
			},
		},
		{
			name: "extension with leading dot",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				cfg.Extension = ".mkv"
				return cfg
			},
			expectError: true,
		},
		{
			name: "negative expected segments",
			config: func(t *testing.T) *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempInput(t)
				cfg.Output = "/tmp/final.mkv"
				cfg.TempDir = t.TempDir()
				cfg.ExpectedSegments = -1
				return cfg
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config(t).Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestResolveBackend(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ResolveBackend().String(); got != "mkvmerge" {
		t.Errorf("Expected mkvmerge, got %s", got)
	}

	cfg.Backend = "ffmpeg"
	if got := cfg.ResolveBackend().String(); got != "ffmpeg" {
		t.Errorf("Expected ffmpeg, got %s", got)
	}
}
