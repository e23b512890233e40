// Package concatenator reassembles independently encoded video
// segments into a single continuous output and reattaches the
// non-video streams of the original source.
//
// Two interchangeable backends are supported. mkvmerge appends the
// ordered encoded chunks (plus a pre-extracted audio container, when
// the upstream extraction step produced one) through a batch-options
// file. ffmpeg demuxes the ordered segment list with the concat
// demuxer and remuxes it against the original input with every codec
// copied. Backend selection is resolved at configuration time; see
// models.ParseBackend.
package concatenator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"stitcher/ffmpeg"
	"stitcher/internal/pathutil"
	"stitcher/internal/runner"
	"stitcher/mkvmerge"
	"stitcher/models"
)

// Concatenator dispatches concatenation jobs to the configured
// backend. It runs synchronously: one invocation per completed encode
// job, blocking for the duration of the external tool.
type Concatenator struct {
	log zerolog.Logger
	run func(ctx context.Context, cmd runner.Command) (*runner.Result, error)
}

// New creates a Concatenator that logs through logger.
func New(logger zerolog.Logger) *Concatenator {
	return &Concatenator{
		log: logger,
		run: runner.Run,
	}
}

// Concatenate merges the job's segments into job.OutputFile and copies
// the original input's non-video streams into it.
//
// The segment set is validated first: its length must equal
// job.ExpectedSegments and every path must exist on disk. Validation
// failures return immediately — before any filesystem write or process
// spawn — as *CountMismatchError or *MissingSegmentError.
//
// Any backend failure is logged with its structured cause and captured
// diagnostics, then wrapped in *Error before being returned; the cause
// stays reachable through errors.As. No retries happen at this layer:
// a failure is terminal for the invocation.
//
// Cancelling ctx kills the running tool process.
func (c *Concatenator) Concatenate(ctx context.Context, job *models.Job) error {
	if len(job.Segments) != job.ExpectedSegments {
		return &CountMismatchError{Expected: job.ExpectedSegments, Found: len(job.Segments)}
	}
	for _, path := range job.Segments {
		if _, err := os.Stat(path); err != nil {
			return &MissingSegmentError{Path: path, Err: err}
		}
	}

	var err error
	switch job.Backend {
	case models.BackendFFmpeg:
		err = c.muxFFmpeg(ctx, job)
	default:
		err = c.mergeMkvmerge(ctx, job)
	}
	if err != nil {
		c.log.Error().
			Err(err).
			Stringer("backend", job.Backend).
			Msg("failed to concatenate videos and copy streams")
		return &Error{Backend: job.Backend, Err: err}
	}

	c.log.Info().
		Int("segments", len(job.Segments)).
		Str("output", job.OutputFile).
		Msg("concatenated video segments and copied all streams")
	return nil
}

// muxFFmpeg joins the segments with the concat demuxer and remuxes the
// result against the original input. The file list artifact lives in
// the job temp directory and is removed on every exit path, success or
// failure.
//
// The concat demuxer resolves relative list entries against the
// directory containing the list file, not the caller's working
// directory, so every segment path is absolutized before rendering.
func (c *Concatenator) muxFFmpeg(ctx context.Context, job *models.Job) error {
	entries := make([]string, len(job.Segments))
	for i, segment := range job.Segments {
		abs, err := filepath.Abs(segment)
		if err != nil {
			return fmt.Errorf("%w: segment %s: %v", ErrPathResolution, segment, err)
		}
		entries[i] = pathutil.Normalize(abs)
	}

	listPath := filepath.Join(job.TempDir, ffmpeg.FileListName)
	if err := os.WriteFile(listPath, []byte(ffmpeg.FileList(entries)), 0o644); err != nil {
		return fmt.Errorf("%w: file list: %v", ErrWriteArtifact, err)
	}
	defer os.Remove(listPath)

	args := ffmpeg.MuxArgs(listPath, job.OriginalInput, job.OutputFile)
	c.log.Debug().Strs("args", args).Msg("ffmpeg command")

	_, err := c.run(ctx, runner.Command{Name: "ffmpeg", Args: args})
	return err
}

// mergeMkvmerge writes the options artifact into the temp directory
// and runs mkvmerge from <temp_dir>/encoded so the relative chunk
// names in the options resolve against the encoder's output.
//
// Whether audio rides along is decided by the caller through
// job.AudioFile; the dispatcher does not probe the filesystem for it.
// The options file is deliberately left behind afterwards for
// post-mortem inspection.
func (c *Concatenator) mergeMkvmerge(ctx context.Context, job *models.Job) error {
	output, err := filepath.Abs(job.OutputFile)
	if err != nil {
		return fmt.Errorf("%w: output %s: %v", ErrPathResolution, job.OutputFile, err)
	}

	audio := ""
	if job.AudioFile != "" {
		abs, err := filepath.Abs(job.AudioFile)
		if err != nil {
			return fmt.Errorf("%w: audio %s: %v", ErrPathResolution, job.AudioFile, err)
		}
		audio = pathutil.Normalize(abs)
	}

	opts := mkvmerge.Options(job.ExpectedSegments, job.Extension, pathutil.Normalize(output), audio)
	data, err := mkvmerge.MarshalOptions(opts)
	if err != nil {
		return fmt.Errorf("%w: options: %v", ErrWriteArtifact, err)
	}

	optionsPath := filepath.Join(job.TempDir, mkvmerge.OptionsFileName)
	if err := os.WriteFile(optionsPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteArtifact, optionsPath, err)
	}
	c.log.Debug().Str("options", optionsPath).Bool("audio", audio != "").
		Msg("wrote mkvmerge options")

	_, err = c.run(ctx, runner.Command{
		Name: "mkvmerge",
		Args: []string{"@../" + mkvmerge.OptionsFileName},
		Dir:  job.EncodeDir(),
	})
	return err
}
