// Package models provides the core data structures for the
// concatenation stage.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Job describes one concatenation request: the ordered video-only
// segments produced by the parallel encoder, the original source whose
// non-video streams must be copied back, and the destination.
//
// Segment order is semantically significant — it determines final
// playback order and is preserved exactly as supplied. The caller is
// responsible for producing the segments in correct sequence; nothing
// downstream re-sorts them.
//
// TempDir is assumed to be exclusively owned by this job. Two jobs
// must not share a temp directory concurrently; that invariant is
// enforced by the caller, not here.
type Job struct {
	Segments         []string // ordered encoded video-only chunk paths
	OriginalInput    string   // source file providing audio, subtitles, metadata
	OutputFile       string   // final muxed destination
	TempDir          string   // per-job scratch directory
	ExpectedSegments int      // count the encoder was asked to produce
	AudioFile        string   // pre-extracted audio container; empty means none
	Extension        string   // encoded chunk extension, e.g. "mkv"
	Backend          Backend
}

// Validate checks structural consistency of the job description.
//
// Segment count and existence checks are not performed here: they
// depend on filesystem state at invocation time and belong to the
// dispatcher.
func (j *Job) Validate() error {
	if strings.TrimSpace(j.OriginalInput) == "" {
		return fmt.Errorf("original input cannot be empty")
	}
	if strings.TrimSpace(j.OutputFile) == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if strings.TrimSpace(j.TempDir) == "" {
		return fmt.Errorf("temp dir cannot be empty")
	}
	if j.ExpectedSegments <= 0 {
		return fmt.Errorf("expected segment count must be positive")
	}
	if strings.TrimSpace(j.Extension) == "" {
		return fmt.Errorf("chunk extension cannot be empty")
	}
	return nil
}

// EncodeDir returns the directory the upstream encoder writes chunks
// into. It doubles as the working directory of the mkvmerge
// invocation, which is what lets the options file reference chunks by
// bare filename.
func (j *Job) EncodeDir() string {
	return filepath.Join(j.TempDir, "encoded")
}
