package distribution

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"video-splitter/domain/distribution"
)

// UploadService handles uploading split artifacts to Google Drive.
type UploadService struct {
	driveClient distribution.DriveClient
	folderID    string
	output      io.Writer
}

// NewUploadService creates a new upload service.
func NewUploadService(client distribution.DriveClient, folderID string, output io.Writer) *UploadService {
	if output == nil {
		output = io.Discard
	}
	return &UploadService{
		driveClient: client,
		folderID:    folderID,
		output:      output,
	}
}

// UploadAll uploads the given artifact files in order, replacing any
// same-named remote files, and returns the per-file results. The first
// failure aborts the remaining uploads.
func (s *UploadService) UploadAll(ctx context.Context, paths []string) ([]*distribution.UploadResult, error) {
	var results []*distribution.UploadResult

	for _, path := range paths {
		result, err := s.uploadAndShare(ctx, path)
		if err != nil {
			return results, fmt.Errorf("upload of %s failed: %w", filepath.Base(path), err)
		}
		fmt.Fprintf(s.output, "  Uploaded: %s\n    Link: %s\n", result.FileName, result.ShareableURL)
		results = append(results, result)
	}

	return results, nil
}

// uploadAndShare uploads one file and sets public sharing permissions.
func (s *UploadService) uploadAndShare(ctx context.Context, path string) (*distribution.UploadResult, error) {
	fileName := filepath.Base(path)

	// Replace an existing file of the same name rather than duplicating it.
	existing, err := s.driveClient.FindFileByName(ctx, s.folderID, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing file: %w", err)
	}
	if existing != nil {
		fmt.Fprintf(s.output, "  Replacing existing %s (%.1f MB)\n", existing.Name, float64(existing.Size)/1024/1024)
		if err := s.driveClient.DeletePermanently(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete existing file %s: %w", existing.Name, err)
		}
	}

	req := distribution.UploadRequest{
		LocalPath: path,
		FileName:  fileName,
		FolderID:  s.folderID,
		MimeType:  mimeTypeFor(path),
	}

	return s.driveClient.UploadAndShare(ctx, req)
}

// mimeTypeFor maps an artifact extension to its MIME type.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return distribution.MimeTypeMP4
	case ".mp3":
		return distribution.MimeTypeMP3
	default:
		return "application/octet-stream"
	}
}
