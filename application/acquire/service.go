package acquire

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"video-splitter/domain/acquire"
	"video-splitter/domain/media"
)

// outputExtensions are the container extensions the download tool may
// produce, checked in preference order after it exits.
var outputExtensions = []string{".mp4", ".mkv", ".webm"}

// Service coordinates remote video acquisition: validate the source,
// delegate the transfer, and locate the produced file on disk.
type Service struct {
	downloader  acquire.Downloader
	fileChecker media.FileChecker
	outputDir   string
	output      io.Writer
}

// NewService creates a new acquisition service.
func NewService(downloader acquire.Downloader, fileChecker media.FileChecker, outputDir string, output io.Writer) *Service {
	if output == nil {
		output = io.Discard
	}
	return &Service{
		downloader:  downloader,
		fileChecker: fileChecker,
		outputDir:   outputDir,
		output:      output,
	}
}

// Acquire downloads the video behind rawURL and returns the local path of
// the resulting file. The URL is validated against the host allow-list
// before any network activity happens.
func (s *Service) Acquire(ctx context.Context, rawURL string) (string, error) {
	source, err := acquire.ParseSource(rawURL)
	if err != nil {
		return "", err
	}

	title, err := s.downloader.Title(ctx, source)
	if err != nil {
		return "", fmt.Errorf("could not resolve video title: %w", err)
	}

	stem := acquire.SanitizeTitle(title)
	if stem == "" {
		stem = "video"
	}
	fmt.Fprintf(s.output, "Downloading: %s\n", stem)

	if err := s.downloader.Download(ctx, source, s.outputDir, stem); err != nil {
		return "", err
	}

	for _, ext := range outputExtensions {
		path := filepath.Join(s.outputDir, stem+ext)
		if s.fileChecker.Exists(path) {
			fmt.Fprintf(s.output, "Downloaded: %s\n", path)
			return path, nil
		}
	}

	return "", fmt.Errorf("download finished but no output file found for %q in %s", stem, s.outputDir)
}
