package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"stitcher/concatenator"
	"stitcher/config"
	"stitcher/ffmpeg"
	"stitcher/ffprobe"
	"stitcher/mkvmerge"
	"stitcher/models"
)

func main() {
	// Step 1: Load configuration (CLI flags > environment > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Verbose)

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		printPlan(cfg)
		fmt.Println("\n✓ Configuration is valid. No concatenation will be performed.")
		return
	}

	// Step 3: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 4: Register signal handlers (Ctrl+C, SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠️  Interrupt received, cleaning up...")
		cancel()
	}()

	// Step 5: Run the concatenation pipeline
	if err := run(ctx, logger, cfg); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Println("\n⚠️  Concatenation cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "\n❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Concatenation completed successfully!")
}

// newLogger builds the console logger. Verbose mode lowers the level to
// debug so backend command lines and artifact paths show up.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// run executes the complete concatenation workflow
func run(ctx context.Context, logger zerolog.Logger, cfg *config.Config) error {
	startTime := time.Now()

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  STITCHER - PIPELINE START                     ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Input:   %s\n", cfg.Input)
	fmt.Printf("Output:  %s\n", cfg.Output)
	fmt.Printf("Backend: %s\n", cfg.Backend)
	fmt.Println()

	// PHASE 1: Media Analysis
	fmt.Println("📊 Phase 1: Media Analysis")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	probeResult, err := ffprobe.Probe(ctx, cfg.Input)
	if err != nil {
		return fmt.Errorf("media analysis failed: %w", err)
	}

	duration, err := probeResult.GetDuration()
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine source duration")
		duration = 0
	}

	audioStreams := probeResult.GetAudioStreams()
	subtitleStreams := probeResult.GetSubtitleStreams()
	videoStreams := probeResult.GetVideoStreams()

	if duration > 0 {
		fmt.Printf("  Duration:         %.2f seconds\n", duration)
	}
	fmt.Printf("  Format:           %s\n", probeResult.Format.FormatLongName)
	fmt.Printf("  Video streams:    %d\n", len(videoStreams))
	fmt.Printf("  Audio streams:    %d\n", len(audioStreams))
	fmt.Printf("  Subtitle streams: %d\n", len(subtitleStreams))
	fmt.Println()

	if len(videoStreams)+len(audioStreams)+len(subtitleStreams) == 0 {
		return fmt.Errorf("no streams found in input file")
	}

	// PHASE 2: Segment Discovery
	fmt.Println("🔍 Phase 2: Segment Discovery")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	encodeDir := filepath.Join(cfg.TempDir, "encoded")
	segments, err := concatenator.DiscoverSegments(encodeDir, cfg.Extension)
	if err != nil {
		return fmt.Errorf("segment discovery failed: %w", err)
	}

	// A configured count of 0 trusts whatever discovery found; any other
	// value is the contract the upstream encoder committed to.
	expected := cfg.ExpectedSegments
	if expected == 0 {
		expected = len(segments)
	}

	fmt.Printf("  Directory:  %s\n", encodeDir)
	fmt.Printf("  Discovered: %d segments\n", len(segments))
	fmt.Printf("  Expected:   %d segments\n", expected)

	// A pre-extracted audio container rides along in the mkvmerge merge
	// when the upstream extraction step produced one.
	audioFile := ""
	audioPath := filepath.Join(cfg.TempDir, "audio.mkv")
	if _, err := os.Stat(audioPath); err == nil {
		audioFile = audioPath
		fmt.Printf("  Audio:      %s\n", audioPath)
	} else {
		fmt.Println("  Audio:      (none extracted)")
	}
	fmt.Println()

	// PHASE 3: Segment Verification
	fmt.Println("🧾 Phase 3: Segment Verification")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	bar := progressbar.NewOptions(len(segments),
		progressbar.OptionSetDescription("  Verifying"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var totalSize int64
	for _, segment := range segments {
		info, err := os.Stat(segment)
		if err != nil {
			return fmt.Errorf("segment vanished during verification: %s", segment)
		}
		if info.Size() == 0 {
			logger.Warn().Str("segment", segment).Msg("segment is empty")
		}
		totalSize += info.Size()
		_ = bar.Add(1)
	}
	fmt.Printf("  ✓ Verified %d segments (%.2f MB total)\n",
		len(segments), float64(totalSize)/(1024*1024))
	fmt.Println()

	// PHASE 4: Concatenation
	fmt.Println("🔗 Phase 4: Concatenation")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	job := &models.Job{
		Segments:         segments,
		OriginalInput:    cfg.Input,
		OutputFile:       cfg.Output,
		TempDir:          cfg.TempDir,
		ExpectedSegments: expected,
		AudioFile:        audioFile,
		Extension:        cfg.Extension,
		Backend:          cfg.ResolveBackend(),
	}
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid concatenation job: %w", err)
	}

	fmt.Printf("  Merging %d segments with %s...\n", len(segments), job.Backend)
	if err := concatenator.New(logger).Concatenate(ctx, job); err != nil {
		return err
	}

	// PHASE 5: Final Report
	elapsed := time.Since(startTime)

	outputSize := int64(0)
	if info, err := os.Stat(cfg.Output); err == nil {
		outputSize = info.Size()
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                     ✅ SUCCESS!")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Output:      %s\n", cfg.Output)
	fmt.Printf("  Size:        %.2f MB\n", float64(outputSize)/(1024*1024))
	fmt.Printf("  Segments:    %d\n", len(segments))
	if len(audioStreams) > 0 || len(subtitleStreams) > 0 {
		fmt.Printf("  Copied:      %d audio, %d subtitle streams\n",
			len(audioStreams), len(subtitleStreams))
	}
	fmt.Printf("  Total time:  %.2fs\n", elapsed.Seconds())
	fmt.Println("═══════════════════════════════════════════════════════════")

	return nil
}

// printPlan shows the backend invocation a real run would execute.
func printPlan(cfg *config.Config) {
	fmt.Println()
	fmt.Println("PLANNED INVOCATION:")

	encodeDir := filepath.Join(cfg.TempDir, "encoded")
	switch cfg.ResolveBackend() {
	case models.BackendFFmpeg:
		listPath := filepath.Join(cfg.TempDir, ffmpeg.FileListName)
		args := ffmpeg.MuxArgs(listPath, cfg.Input, cfg.Output)
		fmt.Printf("  ffmpeg %s\n", strings.Join(args, " "))
		fmt.Printf("  (segment list written to %s, removed afterwards)\n", listPath)
	default:
		fmt.Printf("  mkvmerge @../%s\n", mkvmerge.OptionsFileName)
		fmt.Printf("  (run from %s; options written to %s)\n",
			encodeDir, filepath.Join(cfg.TempDir, mkvmerge.OptionsFileName))
	}
}
