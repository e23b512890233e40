package concatenator

import (
	"fmt"
	"path/filepath"

	"github.com/facette/natsort"
)

// DiscoverSegments collects the encoded chunk files matching
// "encoded_chunk_*.<ext>" inside dir and returns them in natural
// order, so encoded_chunk_2 sorts before encoded_chunk_10.
//
// Discovery is a convenience for callers that did not keep the
// encoder's ordered output list. The dispatcher itself never re-sorts
// the segment set it is handed.
func DiscoverSegments(dir, ext string) ([]string, error) {
	pattern := filepath.Join(dir, "encoded_chunk_*."+ext)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunks: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no encoded chunks matching %s", pattern)
	}
	natsort.Sort(matches)
	return matches, nil
}
