package ffmpeg

import (
	"context"
	"fmt"

	"video-splitter/domain/media"
)

// Prober implements media.Prober using ffmpeg.
//
// The file is decoded to the null muxer and the duration is parsed from the
// diagnostic text. ffmpeg reports metadata on stderr even when the
// invocation itself fails, so the output is parsed before the exit status
// is considered.
type Prober struct {
	ffmpegPath string
	runner     CommandRunner
}

// ProberOption is a functional option for configuring Prober.
type ProberOption func(*Prober)

// WithProberFFmpegPath sets a custom ffmpeg executable path.
func WithProberFFmpegPath(path string) ProberOption {
	return func(p *Prober) {
		p.ffmpegPath = path
	}
}

// WithProberCommandRunner sets a custom command runner (for testing).
func WithProberCommandRunner(runner CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// NewProber creates a new FFmpeg-based duration prober.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Probe implements media.Prober.
func (p *Prober) Probe(ctx context.Context, path string) (float64, error) {
	out, runErr := p.runner.CombinedOutput(ctx, p.ffmpegPath, "-i", path, "-f", "null", "-")

	duration, err := media.ParseDuration(string(out))
	if err != nil {
		if runErr != nil {
			return 0, fmt.Errorf("ffmpeg probe failed: %w: %w", runErr, err)
		}
		return 0, err
	}

	return duration, nil
}

// VerifyInstalled checks that ffmpeg is available.
func (p *Prober) VerifyInstalled(ctx context.Context) error {
	_, err := p.runner.Output(ctx, p.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure Prober implements media.Prober
var _ media.Prober = (*Prober)(nil)
