// Package ffmpeg constructs the stream-copy mux invocation that joins
// concatenated video segments with the remaining streams of the
// original input.
package ffmpeg

import (
	"fmt"
	"strings"
)

// FileListName is the concat-demuxer list written into the job temp
// directory for the duration of a single invocation.
const FileListName = "file_list.txt"

// FileList renders the concat demuxer input: one "file '<path>'" line
// per segment, in the supplied order. Single quotes inside a path are
// escaped so the demuxer reads the literal path.
func FileList(segments []string) string {
	var b strings.Builder
	for _, path := range segments {
		escaped := strings.ReplaceAll(path, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}
	return b.String()
}

// MuxArgs builds the stream-copy mux argument list: the concat demuxer
// reads listPath as the first input and originalInput is the second.
// Video is mapped exclusively from the concatenated segments, every
// stream from the original input rides along, and all codecs are
// copied without re-encoding.
func MuxArgs(listPath, originalInput, output string) []string {
	return []string{
		"-hide_banner",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-i", originalInput,
		"-map", "0:v", // video from the concatenated segments
		"-map", "1", // all streams from the original input
		"-c", "copy",
		output,
	}
}
