package ytdlp

import (
	"context"
	"fmt"
	"strings"

	"video-splitter/domain/acquire"
	"video-splitter/infrastructure/ffmpeg"
)

// formatChain prefers progressively lower resolutions before falling back
// to whatever single format the host offers. Separate video and audio
// streams are merged into one MP4 container.
const formatChain = "bestvideo[height<=1080]+bestaudio/bestvideo[height<=720]+bestaudio/bestvideo+bestaudio/best"

// Downloader implements acquire.Downloader by wrapping the yt-dlp binary.
type Downloader struct {
	ytdlpPath string
	runner    ffmpeg.CommandRunner
}

// DownloaderOption is a functional option for configuring Downloader.
type DownloaderOption func(*Downloader)

// WithYTDLPPath sets a custom yt-dlp executable path.
func WithYTDLPPath(path string) DownloaderOption {
	return func(d *Downloader) {
		d.ytdlpPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func WithCommandRunner(runner ffmpeg.CommandRunner) DownloaderOption {
	return func(d *Downloader) {
		d.runner = runner
	}
}

// NewDownloader creates a new yt-dlp based downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		ytdlpPath: "yt-dlp",
		runner:    &ffmpeg.ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Title implements acquire.Downloader.
func (d *Downloader) Title(ctx context.Context, source acquire.Source) (string, error) {
	out, err := d.runner.Output(ctx, d.ytdlpPath, "--no-playlist", "--print", "title", source.URL)
	if err != nil {
		return "", fmt.Errorf("yt-dlp title lookup failed: %w", err)
	}

	title := strings.TrimSpace(string(out))
	if title == "" {
		return "", fmt.Errorf("yt-dlp reported an empty title for %s", source.URL)
	}
	return title, nil
}

// Download implements acquire.Downloader.
func (d *Downloader) Download(ctx context.Context, source acquire.Source, outputDir, fileStem string) error {
	args := []string{
		"--no-playlist",
		"-f", formatChain,
		"--merge-output-format", "mp4",
		"-P", outputDir,
		"-o", fileStem + ".%(ext)s",
		source.URL,
	}

	if err := d.runner.Run(ctx, d.ytdlpPath, args...); err != nil {
		return fmt.Errorf("yt-dlp download failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that yt-dlp is available.
func (d *Downloader) VerifyInstalled(ctx context.Context) error {
	_, err := d.runner.Output(ctx, d.ytdlpPath, "--version")
	if err != nil {
		return fmt.Errorf("yt-dlp not found or not executable: %w", err)
	}
	return nil
}

// Ensure Downloader implements acquire.Downloader
var _ acquire.Downloader = (*Downloader)(nil)
