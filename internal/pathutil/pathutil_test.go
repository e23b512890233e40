package pathutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "unix path unchanged",
			path:     "/tmp/encode/out.mkv",
			expected: "/tmp/encode/out.mkv",
		},
		{
			name:     "plain windows path unchanged",
			path:     `C:\Users\enc\out.mkv`,
			expected: `C:\Users\enc\out.mkv`,
		},
		{
			name:     "extended-length prefix stripped",
			path:     `\\?\C:\Users\enc\out.mkv`,
			expected: `C:\Users\enc\out.mkv`,
		},
		{
			name:     "extended UNC restored to share form",
			path:     `\\?\UNC\nas\media\out.mkv`,
			expected: `\\nas\media\out.mkv`,
		},
		{
			name:     "plain UNC share unchanged",
			path:     `\\nas\media\out.mkv`,
			expected: `\\nas\media\out.mkv`,
		},
		{
			name:     "empty path",
			path:     "",
			expected: "",
		},
		{
			name:     "relative path unchanged",
			path:     "encoded_chunk_0.mkv",
			expected: "encoded_chunk_0.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.path)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.path, got, tt.expected)
			}

			// Normalizing an already-normalized path must be a no-op
			if again := Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}
