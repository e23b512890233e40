package concatenator

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverSegments_NaturalOrder(t *testing.T) {
	dir := t.TempDir()

	// 12 chunks: lexicographic order would put chunk_10 before
	// chunk_2, natural order must not.
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, fmt.Sprintf("encoded_chunk_%d.mkv", i))
		if err := os.WriteFile(name, []byte("chunk"), 0o644); err != nil {
			t.Fatalf("Failed to create chunk: %v", err)
		}
	}

	segments, err := DiscoverSegments(dir, "mkv")
	if err != nil {
		t.Fatalf("DiscoverSegments failed: %v", err)
	}

	if len(segments) != 12 {
		t.Fatalf("Expected 12 segments, got %d", len(segments))
	}
	for i, path := range segments {
		expected := filepath.Join(dir, fmt.Sprintf("encoded_chunk_%d.mkv", i))
		if path != expected {
			t.Errorf("Position %d: expected %s, got %s", i, expected, path)
		}
	}
}

func TestDiscoverSegments_FiltersExtension(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"encoded_chunk_0.mkv", "encoded_chunk_1.mkv", "encoded_chunk_0.ivf", "audio.mkv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	segments, err := DiscoverSegments(dir, "mkv")
	if err != nil {
		t.Fatalf("DiscoverSegments failed: %v", err)
	}
	if len(segments) != 2 {
		t.Errorf("Expected 2 mkv chunks, got %d: %v", len(segments), segments)
	}
}

func TestDiscoverSegments_NoChunks(t *testing.T) {
	dir := t.TempDir()

	if _, err := DiscoverSegments(dir, "mkv"); err == nil {
		t.Error("Expected error for directory without chunks")
	}
}
