// Package pathutil provides path normalization for external tool invocation.
package pathutil

import "strings"

const (
	extendedPrefix = `\\?\`
	uncMarker      = "UNC"
)

// Normalize rewrites an absolute path into the textual form external
// tools accept as a literal command-line argument.
//
// Windows hands out extended-length paths prefixed with `\\?\` (and
// `\\?\UNC\server\share\...` for network shares); mkvmerge and ffmpeg
// do not understand that syntax, so the prefix is stripped and UNC
// paths are restored to their conventional `\\server\share\...` form.
// Paths without the prefix, including every Unix path, pass through
// unchanged, which also makes Normalize idempotent.
//
// Normalize is pure string manipulation and never touches the
// filesystem, so generated command arguments stay deterministic.
//
// Example:
//
//	Normalize(`\\?\C:\enc\out.mkv`)        // `C:\enc\out.mkv`
//	Normalize(`\\?\UNC\nas\share\out.mkv`) // `\\nas\share\out.mkv`
//	Normalize("/tmp/enc/out.mkv")          // "/tmp/enc/out.mkv"
func Normalize(path string) string {
	rest, ok := strings.CutPrefix(path, extendedPrefix)
	if !ok {
		return path
	}
	if share, ok := strings.CutPrefix(rest, uncMarker); ok {
		return `\` + share
	}
	return rest
}
