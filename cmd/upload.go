package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	appdist "video-splitter/application/distribution"
	"video-splitter/domain/distribution"
	"video-splitter/domain/media"
	"video-splitter/infrastructure/drive"

	"github.com/spf13/cobra"
)

var (
	uploadFolderID  string
	uploadAudioOnly bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <video file or output directory>",
	Short: "Upload split artifacts to Google Drive with public sharing",
	Long: `Upload the MP4 and MP3 artifacts of a previous split run to Google
Drive and set "anyone with the link" read sharing on each file.

The argument is the original video file or its output directory; the
artifacts are gathered from the MP4/ and MP3/ subdirectories. Files with
the same name already in the Drive folder are replaced.

Requires Google OAuth credentials in the config file.

Example:
  video-splitter upload recording.mp4
  video-splitter upload /videos/recording --audio-only`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVar(&uploadFolderID, "folder", "", "Google Drive folder ID (default from config)")
	uploadCmd.Flags().BoolVar(&uploadAudioOnly, "audio-only", false, "Upload only the MP3 artifacts")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded; run 'video-splitter setup' first")
	}

	folderID := uploadFolderID
	if folderID == "" {
		folderID = cfg.Google.FolderID
	}
	if folderID == "" {
		return fmt.Errorf("no Drive folder configured; set google.folder_id or use --folder")
	}

	paths, err := gatherArtifacts(args[0], uploadAudioOnly)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := drive.NewClientWithOAuth(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		return fmt.Errorf("failed to create Google Drive client: %w", err)
	}

	return RunUploadWithDependencies(ctx, client, folderID, paths, os.Stdout)
}

// gatherArtifacts collects the artifact files of a split run in a stable
// order: whole-file audio first, then segments.
func gatherArtifacts(target string, audioOnly bool) ([]string, error) {
	root := target
	if info, err := os.Stat(target); err != nil {
		return nil, fmt.Errorf("target does not exist: %s", target)
	} else if !info.IsDir() {
		root = media.LayoutFor(target).Root
	}

	dirs := []string{filepath.Join(root, media.AudioDirName)}
	if !audioOnly {
		dirs = append(dirs, filepath.Join(root, media.VideoDirName))
	}

	var paths []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("no artifacts found under %s: %w", root, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".mp3", ".mp4":
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no artifacts found under %s; run 'video-splitter split' first", root)
	}

	sort.Strings(paths)
	return paths, nil
}

// RunUploadWithDependencies runs the upload command with injected
// dependencies (for testing).
func RunUploadWithDependencies(
	ctx context.Context,
	client distribution.DriveClient,
	folderID string,
	paths []string,
	output OutputWriter,
) error {
	service := appdist.NewUploadService(client, folderID, output)

	fmt.Fprintf(output, "Uploading %d files...\n", len(paths))
	results, err := service.UploadAll(ctx, paths)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Uploaded %d files\n", len(results))
	return nil
}
