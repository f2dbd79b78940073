package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	appacquire "video-splitter/application/acquire"
	appsplit "video-splitter/application/split"
	"video-splitter/domain/acquire"
	"video-splitter/domain/media"
	"video-splitter/infrastructure/ffmpeg"
	"video-splitter/infrastructure/filesystem"
	"video-splitter/infrastructure/ytdlp"

	"github.com/spf13/cobra"
)

var (
	splitURL       string
	splitAudioOnly bool
	splitNoSplit   bool
	splitBitrate   string
)

var splitCmd = &cobra.Command{
	Use:   "split [video file]",
	Short: "Split a video into 30-minute segments with audio extraction",
	Long: `Split a video into fixed 30-minute segments and extract MP3 audio.

Exactly one source is required: a local video file as the positional
argument, or a remote URL via --url. Remote sources are downloaded first
and then processed like a local file.

Outputs land in a directory named after the input file, next to it:
  <stem>/            the relocated original file
  <stem>/MP4/        <stem>_partN.mp4 video segments
  <stem>/MP3/        <stem>.mp3 (whole file) and <stem>_partN.mp3 segments

Example:
  video-splitter split recording.mp4
  video-splitter split recording.mp4 --audio-only
  video-splitter split --url "https://www.youtube.com/watch?v=..." --no-split`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVar(&splitURL, "url", "", "Remote video URL to download and split")
	splitCmd.Flags().BoolVar(&splitAudioOnly, "audio-only", false, "Produce audio-only segment outputs (no video segments)")
	splitCmd.Flags().BoolVar(&splitNoSplit, "no-split", false, "Do not segment; only extract the whole-file audio track")
	splitCmd.Flags().StringVar(&splitBitrate, "bitrate", "", "Audio bitrate (default from config or 320k)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	localPath := ""
	if len(args) == 1 {
		localPath = args[0]
	}

	bitrate := splitBitrate
	if bitrate == "" {
		bitrate = audioBitrate()
	}

	// Locate the media tool before anything else; nothing works without it.
	ctx := cmd.Context()
	ffmpegPath := ffmpegPathOverride()
	if ffmpegPath == "" {
		var err error
		ffmpegPath, err = ffmpeg.Locate(ctx, nil)
		if err != nil {
			return err
		}
	}
	fmt.Printf("Using ffmpeg: %s\n", ffmpegPath)

	prober := ffmpeg.NewProber(ffmpeg.WithProberFFmpegPath(ffmpegPath))
	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(ffmpegPath))
	organizer := filesystem.NewOrganizer()
	fileChecker := filesystem.NewChecker()

	var downloader acquire.Downloader
	if splitURL != "" {
		opts := []ytdlp.DownloaderOption{}
		if path := ytdlpPathOverride(); path != "" {
			opts = append(opts, ytdlp.WithYTDLPPath(path))
		}
		downloader = ytdlp.NewDownloader(opts...)
	}

	return RunSplitWithDependencies(
		ctx,
		prober,
		extractor,
		organizer,
		fileChecker,
		downloader,
		localPath,
		splitURL,
		downloadDirectory(),
		bitrate,
		splitAudioOnly,
		splitNoSplit,
		os.Stdout,
	)
}

// downloadDirectory resolves where acquired videos are written.
func downloadDirectory() string {
	if cfg != nil && cfg.Download.Directory != "" {
		return cfg.Download.Directory
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// RunSplitWithDependencies runs the split command with injected
// dependencies (for testing). downloader may be nil when no URL is given.
func RunSplitWithDependencies(
	ctx context.Context,
	prober media.Prober,
	extractor media.Extractor,
	organizer media.Organizer,
	fileChecker media.FileChecker,
	downloader acquire.Downloader,
	localPath string,
	rawURL string,
	downloadDir string,
	bitrate string,
	audioOnly bool,
	noSplit bool,
	output OutputWriter,
) error {
	// Exactly one source: a local path or a remote URL.
	if localPath == "" && rawURL == "" {
		return fmt.Errorf("no source given: provide a video file or --url")
	}
	if localPath != "" && rawURL != "" {
		return fmt.Errorf("conflicting sources: provide either a video file or --url, not both")
	}

	sourcePath := localPath
	if rawURL != "" {
		if downloader == nil {
			return fmt.Errorf("no downloader available for remote sources")
		}
		acquireService := appacquire.NewService(downloader, fileChecker, downloadDir, output)
		downloaded, err := acquireService.Acquire(ctx, rawURL)
		if err != nil {
			return err
		}
		sourcePath = downloaded
	}

	if abs, err := filepath.Abs(sourcePath); err == nil {
		sourcePath = abs
	}

	service := appsplit.NewService(prober, extractor, organizer, fileChecker, bitrate, output)

	_, err := service.Split(ctx, appsplit.Input{
		SourcePath: sourcePath,
		AudioOnly:  audioOnly,
		NoSplit:    noSplit,
	})
	return err
}
