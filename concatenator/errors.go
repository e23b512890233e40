package concatenator

import (
	"errors"
	"fmt"
	"io/fs"

	"stitcher/models"
)

// Sentinel failure kinds for input preparation. Backend code wraps
// them with %w so errors.Is still matches through the umbrella Error.
var (
	// ErrPathResolution marks an input or output path that could not
	// be made absolute.
	ErrPathResolution = errors.New("path resolution failed")

	// ErrWriteArtifact marks a temporary artifact (options file, file
	// list) that could not be created or written.
	ErrWriteArtifact = errors.New("temporary artifact write failed")
)

// CountMismatchError reports a segment set whose length differs from
// the count the encoder was expected to produce.
type CountMismatchError struct {
	Expected int
	Found    int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("mismatch in segment count: expected %d, found %d", e.Expected, e.Found)
}

// MissingSegmentError reports the first segment path that could not be
// statted. Paths are checked in segment order. Err carries the
// underlying stat failure, so an inaccessible segment (permission
// denied, broken parent) stays distinguishable from an absent one.
type MissingSegmentError struct {
	Path string
	Err  error
}

func (e *MissingSegmentError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("segment file not accessible: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("segment file not found: %s", e.Path)
}

func (e *MissingSegmentError) Unwrap() error { return e.Err }

// Error is the umbrella failure a backend error becomes before
// crossing the public boundary. Its message stays generic; the
// structured cause stays reachable through Unwrap, so callers that
// need to distinguish failure kinds can use errors.As while casual
// callers see a single plain message.
type Error struct {
	Backend models.Backend
	Err     error
}

func (e *Error) Error() string {
	return "failed to concatenate videos and copy streams"
}

func (e *Error) Unwrap() error { return e.Err }
