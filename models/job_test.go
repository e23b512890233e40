package models

import (
	"path/filepath"
	"testing"
)

func validJob() *Job {
	return &Job{
		Segments:         []string{"/tmp/job/encoded/encoded_chunk_0.mkv"},
		OriginalInput:    "/media/source.mkv",
		OutputFile:       "/media/out.mkv",
		TempDir:          "/tmp/job",
		ExpectedSegments: 1,
		Extension:        "mkv",
		Backend:          BackendMkvmerge,
	}
}

func TestJob_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Job)
		expectError bool
	}{
		{
			name:   "valid job",
			mutate: func(j *Job) {},
		},
		{
			name:        "missing original input",
			mutate:      func(j *Job) { j.OriginalInput = "" },
			expectError: true,
		},
		{
			name:        "whitespace output",
			mutate:      func(j *Job) { j.OutputFile = "   " },
			expectError: true,
		},
		{
			name:        "missing temp dir",
			mutate:      func(j *Job) { j.TempDir = "" },
			expectError: true,
		},
		{
			name:        "zero expected segments",
			mutate:      func(j *Job) { j.ExpectedSegments = 0 },
			expectError: true,
		},
		{
			name:        "negative expected segments",
			mutate:      func(j *Job) { j.ExpectedSegments = -3 },
			expectError: true,
		},
		{
			name:        "missing extension",
			mutate:      func(j *Job) { j.Extension = "" },
			expectError: true,
		},
		{
			name:   "empty audio file is allowed",
			mutate: func(j *Job) { j.AudioFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validJob()
			tt.mutate(job)

			err := job.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestJob_EncodeDir(t *testing.T) {
	job := validJob()
	expected := filepath.Join("/tmp/job", "encoded")
	if got := job.EncodeDir(); got != expected {
		t.Errorf("Expected encode dir '%s', got '%s'", expected, got)
	}
}
