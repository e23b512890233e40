// Package mkvmerge builds the batch-options artifact consumed by
// mkvmerge's @file mechanism when merging encoded chunks into the
// final container.
package mkvmerge

import (
	"encoding/json"
	"fmt"
)

// OptionsFileName is the options artifact written into the job temp
// directory. mkvmerge runs with its working directory set to the chunk
// directory one level below, so the single argument it receives is
// "@../options.json".
const OptionsFileName = "options.json"

// ChunkFileName returns the name the upstream encoder must give chunk
// i. This fixed convention is the contract between the encoder and the
// options builder: zero-based, contiguous, one file per chunk inside
// <temp_dir>/encoded.
func ChunkFileName(i int, ext string) string {
	return fmt.Sprintf("encoded_chunk_%d.%s", i, ext)
}

// Options assembles the flat option array that appends chunkCount
// encoded chunks (and optionally a pre-extracted audio file) into
// output.
//
// The produced sequence is: "-o", the output path, the audio path when
// audio is non-empty, the "[" group marker, the chunk filenames in
// index order, and the closing "]" marker. Chunk names stay relative
// because mkvmerge is invoked from the chunk directory itself; output
// and audio must already be absolute and normalized by the caller.
//
// A zero chunkCount means the caller invoked concatenation with
// nothing to concatenate. That is a programming error, not a runtime
// condition, and panics rather than returning a typed error.
func Options(chunkCount int, ext, output, audio string) []string {
	if chunkCount == 0 {
		panic("mkvmerge: options requested for zero chunks")
	}

	opts := make([]string, 0, chunkCount+5)
	opts = append(opts, "-o", output)
	if audio != "" {
		opts = append(opts, audio)
	}
	opts = append(opts, "[")
	for i := 0; i < chunkCount; i++ {
		opts = append(opts, ChunkFileName(i, ext))
	}
	opts = append(opts, "]")
	return opts
}

// MarshalOptions serializes the option array into the JSON string
// array form mkvmerge parses from a .json @file.
func MarshalOptions(opts []string) ([]byte, error) {
	return json.Marshal(opts)
}
