package models

import "fmt"

// Backend selects which external tool performs the final merge.
//
// The two variants are resolved once at configuration time through
// ParseBackend; the dispatcher never compares raw selector strings, so
// a typo in the configuration surfaces as a validation error instead
// of silently routing to the wrong tool.
type Backend int

const (
	// BackendMkvmerge merges pre-extracted audio plus the ordered
	// encoded chunks through an mkvmerge options file.
	BackendMkvmerge Backend = iota

	// BackendFFmpeg demuxes the ordered segment list with ffmpeg's
	// concat demuxer and remuxes it against the original input,
	// copying all non-video streams.
	BackendFFmpeg
)

// ParseBackend resolves a selector string to a Backend.
//
// "ffmpeg" selects the stream-copy muxer and "mkvmerge" the container
// remuxer. The empty string defaults to mkvmerge, preserving the
// historical default. Any other value is a configuration error.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "ffmpeg":
		return BackendFFmpeg, nil
	case "mkvmerge", "":
		return BackendMkvmerge, nil
	default:
		return 0, fmt.Errorf("unknown concat backend '%s' (valid values: mkvmerge, ffmpeg)", s)
	}
}

// String returns the selector form of the backend.
func (b Backend) String() string {
	if b == BackendFFmpeg {
		return "ffmpeg"
	}
	return "mkvmerge"
}
