package cmd

import (
	"fmt"
	"os"

	"video-splitter/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "video-splitter",
	Short: "Split long videos into 30-minute segments with audio extraction",
	Long: `video-splitter splits a long video into fixed 30-minute segments and
extracts MP3 audio tracks, optionally downloading the source from YouTube
first:

  - Probe the video duration with ffmpeg
  - Create a <stem>/MP4 + <stem>/MP3 directory layout next to the input
  - Extract a complete MP3 of the whole file, then per-segment outputs
  - Optionally upload the artifacts to Google Drive with sharing

Example:
  video-splitter split recording.mp4
  video-splitter split --url "https://www.youtube.com/watch?v=..." --audio-only`,
}

// Execute runs the root command, mapping any failure to exit status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional; commands fall back to built-in
		// defaults when it is absent.
		cfg = nil
	}
}

// GetConfig returns the loaded configuration, or nil if none was found.
func GetConfig() *config.Config {
	return cfg
}

// audioBitrate resolves the configured audio bitrate, empty meaning the
// extractor default.
func audioBitrate() string {
	if cfg != nil {
		return cfg.Audio.Bitrate
	}
	return ""
}

// ffmpegPathOverride returns the configured ffmpeg path, empty meaning
// locate it from the candidate list.
func ffmpegPathOverride() string {
	if cfg != nil {
		return cfg.Tools.FFmpegPath
	}
	return ""
}

// ytdlpPathOverride returns the configured yt-dlp path, empty meaning the
// bare name on the search path.
func ytdlpPathOverride() string {
	if cfg != nil {
		return cfg.Tools.YTDLPPath
	}
	return ""
}

// OutputWriter allows capturing output in tests.
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}
