package ffmpeg

import (
	"context"
	"fmt"

	"video-splitter/domain/media"
)

// DefaultAudioBitrate is the MP3 bitrate used when none is configured.
const DefaultAudioBitrate = "320k"

// Extractor implements media.Extractor using ffmpeg.
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor.
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path.
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing).
func WithExtractorCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based segment extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExtractVideo implements media.Extractor. The segment is stream-copied
// rather than re-encoded, preserving quality and keeping the invocation
// cheap; -avoid_negative_ts compensates for cuts landing between
// keyframes.
func (e *Extractor) ExtractVideo(ctx context.Context, req media.ExtractRequest, outputPath string) error {
	if req.Segment == nil {
		return fmt.Errorf("video extraction requires a segment")
	}

	args := []string{
		"-i", req.SourcePath,
		"-ss", media.FormatSeconds(req.Segment.Start),
		"-t", media.FormatSeconds(req.Segment.Length),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y", // Overwrite output file if it exists
		outputPath,
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg video segment extraction failed: %w", err)
	}

	return nil
}

// ExtractAudio implements media.Extractor. With a nil segment the whole
// audio track is extracted.
func (e *Extractor) ExtractAudio(ctx context.Context, req media.ExtractRequest, outputPath string) error {
	bitrate := req.Bitrate
	if bitrate == "" {
		bitrate = DefaultAudioBitrate
	}

	args := []string{"-i", req.SourcePath}
	if req.Segment != nil {
		args = append(args,
			"-ss", media.FormatSeconds(req.Segment.Start),
			"-t", media.FormatSeconds(req.Segment.Length),
		)
	}
	args = append(args,
		"-vn",                   // No video
		"-acodec", "libmp3lame", // MP3 codec
		"-ab", bitrate, // Audio bitrate
		"-y", // Overwrite output file if it exists
		outputPath,
	)

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg audio extraction failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available.
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure Extractor implements media.Extractor
var _ media.Extractor = (*Extractor)(nil)
