package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	fs := flag.NewFlagSet("stitcher", flag.ContinueOnError)
	fs.Usage = printUsage

	// Required fields
	input := fs.String("input", "", "Original source file (required)")
	output := fs.String("output", "", "Final output file path (required)")
	tempDir := fs.String("temp-dir", "", "Encode temp directory holding encoded/ chunks (required)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Concatenation settings
	backend := fs.String("backend", "", "Concatenation backend: mkvmerge, ffmpeg (default: from config)")
	extension := fs.String("extension", "", "Encoded chunk file extension (default: from config)")
	expectSegments := fs.Int("expect-segments", -1, "Segment count the encoder was asked to produce (0 = trust discovery)")

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	dryRun := fs.Bool("dry-run", false, "Show the concatenation plan without executing")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *input != "" {
		c.Input = *input
	}
	if *output != "" {
		c.Output = *output
	}
	if *tempDir != "" {
		c.TempDir = *tempDir
	}
	if *backend != "" {
		c.Backend = *backend
	}
	if *extension != "" {
		c.Extension = *extension
	}
	if *expectSegments >= 0 {
		c.ExpectedSegments = *expectSegments
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `stitcher - Concatenate encoded video segments and copy back all streams

USAGE:
  stitcher -input FILE -output FILE -temp-dir DIR [OPTIONS]

REQUIRED FLAGS:
  -input string
        Original source file whose audio/subtitle/metadata streams are copied back
  -output string
        Final muxed output file path
  -temp-dir string
        Encode temp directory; chunks are expected in <temp-dir>/encoded/

CONFIGURATION:
  -config string
        Path to config file (default: search ./stitcher.yaml, ~/.stitcher/config.yaml, /etc/stitcher/config.yaml)

CONCATENATION SETTINGS:
  -backend string
        Concatenation backend: mkvmerge, ffmpeg (default: mkvmerge)
  -extension string
        Encoded chunk file extension (default: mkv)
  -expect-segments int
        Segment count the encoder was asked to produce; 0 trusts the discovered count (default: 0)

BEHAVIORAL FLAGS:
  --verbose
        Enable debug logging
  --dry-run
        Show the concatenation plan without executing

CHUNK NAMING CONTRACT:
  The upstream encoder must name its outputs encoded_chunk_{index}.{extension}
  inside <temp-dir>/encoded/, zero-based and contiguous. A pre-extracted audio
  container, if any, is picked up from <temp-dir>/audio.mkv.

EXAMPLES:
  # Merge chunks with mkvmerge (default)
  stitcher -input movie.mkv -output final.mkv -temp-dir /tmp/job-42

  # Stream-copy mux against the original with ffmpeg
  stitcher -input movie.mkv -output final.mkv -temp-dir /tmp/job-42 -backend ffmpeg

  # Enforce the encoder's expected chunk count
  stitcher -input movie.mkv -output final.mkv -temp-dir /tmp/job-42 -expect-segments 24

CONFIGURATION FILES:
  Priority: CLI flags > STITCHER_* environment (.env supported) > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Input:             %s\n", c.Input)
	fmt.Printf("Output:            %s\n", c.Output)
	fmt.Printf("Temp Dir:          %s\n", c.TempDir)
	fmt.Printf("Backend:           %s\n", c.Backend)
	fmt.Printf("Chunk Extension:   %s\n", c.Extension)
	if c.ExpectedSegments > 0 {
		fmt.Printf("Expected Segments: %d\n", c.ExpectedSegments)
	} else {
		fmt.Printf("Expected Segments: (trust discovery)\n")
	}
	fmt.Printf("Verbose:           %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// backendList returns the valid selectors as a display string.
func backendList() string {
	return strings.Join(BackendValues(), ", ")
}
