package distribution

import "context"

// DriveClient defines the interface for Google Drive operations.
// This is a port that can be implemented by different infrastructure adapters.
type DriveClient interface {
	// FindFileByName finds a file by exact name in a folder, or nil if absent.
	FindFileByName(ctx context.Context, folderID, fileName string) (*FileInfo, error)

	// UploadAndShare uploads a local file into a folder and sets
	// anyone-with-the-link read sharing on it.
	UploadAndShare(ctx context.Context, req UploadRequest) (*UploadResult, error)

	// DeletePermanently deletes a file permanently (bypasses trash).
	DeletePermanently(ctx context.Context, fileID string) error
}

// FileInfo represents metadata about a file in Google Drive.
type FileInfo struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}

// UploadRequest contains the parameters needed to upload a file.
type UploadRequest struct {
	LocalPath string // full path to the local file
	FileName  string // target filename in Google Drive
	FolderID  string // target folder ID in Google Drive
	MimeType  string // MIME type of the file
}

// UploadResult contains the result of a successful upload.
type UploadResult struct {
	FileID       string
	FileName     string
	ShareableURL string
	Size         int64
}

// MIME type constants for the split artifacts.
const (
	MimeTypeMP4 = "video/mp4"
	MimeTypeMP3 = "audio/mpeg"
)
