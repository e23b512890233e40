package config

// Config holds all settings for the concatenation stage
type Config struct {
	// Required fields
	Input  string `yaml:"input"`  // original source file whose non-video streams are copied back
	Output string `yaml:"output"` // final muxed output file

	// TempDir is the per-job scratch directory produced by the encode
	// pipeline. It contains encoded/ with the chunk files and, when
	// audio was extracted ahead of time, audio.mkv.
	TempDir string `yaml:"temp_dir"`

	// Concatenation settings
	Backend          string `yaml:"backend"`           // "mkvmerge" or "ffmpeg"
	Extension        string `yaml:"extension"`         // encoded chunk extension
	ExpectedSegments int    `yaml:"expected_segments"` // 0 = trust discovery

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Show debug logs
	DryRun  bool `yaml:"dry_run"` // Show the plan without executing
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Input:   "",
		Output:  "",
		TempDir: "",

		// Concatenation defaults
		Backend:          "mkvmerge", // options-file remux; "ffmpeg" selects concat-demuxer muxing
		Extension:        "mkv",
		ExpectedSegments: 0, // trust the discovered chunk count

		// Behavioral defaults
		Verbose: false,
		DryRun:  false,
	}
}

// BackendValues returns valid backend selector values
func BackendValues() []string {
	return []string{"mkvmerge", "ffmpeg"}
}
