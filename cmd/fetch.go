package cmd

import (
	"context"
	"fmt"
	"os"

	appacquire "video-splitter/application/acquire"
	"video-splitter/domain/acquire"
	"video-splitter/domain/media"
	"video-splitter/infrastructure/filesystem"
	"video-splitter/infrastructure/ytdlp"

	"github.com/spf13/cobra"
)

var fetchOutputDir string

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a remote video without splitting it",
	Long: `Download a video from a supported remote host and print the local path.

The URL's host must be on the supported-host list (YouTube). The remote
title, sanitized for the filesystem, becomes the output file name.

Example:
  video-splitter fetch "https://www.youtube.com/watch?v=..."
  video-splitter fetch --output-dir /videos "https://youtu.be/..."`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchOutputDir, "output-dir", "", "Directory to download into (default from config or working directory)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	outputDir := fetchOutputDir
	if outputDir == "" {
		outputDir = downloadDirectory()
	}

	opts := []ytdlp.DownloaderOption{}
	if path := ytdlpPathOverride(); path != "" {
		opts = append(opts, ytdlp.WithYTDLPPath(path))
	}
	downloader := ytdlp.NewDownloader(opts...)

	return RunFetchWithDependencies(
		cmd.Context(),
		downloader,
		filesystem.NewChecker(),
		args[0],
		outputDir,
		os.Stdout,
	)
}

// RunFetchWithDependencies runs the fetch command with injected
// dependencies (for testing).
func RunFetchWithDependencies(
	ctx context.Context,
	downloader acquire.Downloader,
	fileChecker media.FileChecker,
	rawURL string,
	outputDir string,
	output OutputWriter,
) error {
	service := appacquire.NewService(downloader, fileChecker, outputDir, output)

	path, err := service.Acquire(ctx, rawURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Saved to: %s\n", path)
	return nil
}
