package drive

import (
	"context"
	"fmt"
	"io"
	"os"

	"video-splitter/domain/distribution"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveService defines the interface for Google Drive API operations.
// This allows mocking the Google Drive API in tests.
type DriveService interface {
	ListFiles(ctx context.Context, query string, fields string) ([]*drive.File, error)
	CreateFile(ctx context.Context, file *drive.File, content io.Reader) (*drive.File, error)
	CreatePermission(ctx context.Context, fileID string, permission *drive.Permission) error
	DeleteFile(ctx context.Context, fileID string) error
}

// GoogleDriveService is the production implementation using the Google Drive API.
type GoogleDriveService struct {
	service *drive.Service
}

// ListFiles lists files matching the query.
func (s *GoogleDriveService) ListFiles(ctx context.Context, query string, fields string) ([]*drive.File, error) {
	r, err := s.service.Files.List().
		Q(query).
		Fields(googleapi.Field("files(" + fields + ")")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return r.Files, nil
}

// CreateFile uploads a new file with the given content.
func (s *GoogleDriveService) CreateFile(ctx context.Context, file *drive.File, content io.Reader) (*drive.File, error) {
	return s.service.Files.Create(file).
		Media(content).
		Fields("id, name, size").
		Context(ctx).
		Do()
}

// CreatePermission adds a permission to a file.
func (s *GoogleDriveService) CreatePermission(ctx context.Context, fileID string, permission *drive.Permission) error {
	_, err := s.service.Permissions.Create(fileID, permission).Context(ctx).Do()
	return err
}

// DeleteFile deletes a file permanently.
func (s *GoogleDriveService) DeleteFile(ctx context.Context, fileID string) error {
	return s.service.Files.Delete(fileID).Context(ctx).Do()
}

// Client implements distribution.DriveClient using the Google Drive API.
type Client struct {
	driveService DriveService
}

// ClientOption is a functional option for configuring Client.
type ClientOption func(*Client)

// WithDriveService sets a custom drive service (for testing).
func WithDriveService(svc DriveService) ClientOption {
	return func(c *Client) {
		c.driveService = svc
	}
}

// NewClient creates a new Google Drive client authenticated with a service
// account. If no options are provided, it initializes a real Google Drive
// service.
func NewClient(ctx context.Context, credentialsPath string, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	for _, opt := range opts {
		opt(c)
	}

	if c.driveService == nil {
		svc, err := newGoogleDriveService(ctx, credentialsPath)
		if err != nil {
			return nil, err
		}
		c.driveService = svc
	}

	return c, nil
}

// newGoogleDriveService creates a production Google Drive service from
// service-account credentials.
func newGoogleDriveService(ctx context.Context, credentialsPath string) (*GoogleDriveService, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(b, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	client := config.Client(ctx)
	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create drive service: %w", err)
	}

	return &GoogleDriveService{service: srv}, nil
}

// FindFileByName implements distribution.DriveClient.
func (c *Client) FindFileByName(ctx context.Context, folderID, fileName string) (*distribution.FileInfo, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQueryValue(fileName), folderID)
	files, err := c.driveService.ListFiles(ctx, query, "id, name, mimeType, size")
	if err != nil {
		return nil, fmt.Errorf("failed to search for file %s: %w", fileName, err)
	}

	if len(files) == 0 {
		return nil, nil
	}

	f := files[0]
	return &distribution.FileInfo{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
	}, nil
}

// UploadAndShare implements distribution.DriveClient.
func (c *Client) UploadAndShare(ctx context.Context, req distribution.UploadRequest) (*distribution.UploadResult, error) {
	f, err := os.Open(req.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", req.LocalPath, err)
	}
	defer f.Close()

	meta := &drive.File{
		Name:     req.FileName,
		MimeType: req.MimeType,
		Parents:  []string{req.FolderID},
	}

	created, err := c.driveService.CreateFile(ctx, meta, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", req.FileName, err)
	}

	permission := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}
	if err := c.driveService.CreatePermission(ctx, created.Id, permission); err != nil {
		return nil, fmt.Errorf("failed to share %s: %w", req.FileName, err)
	}

	return &distribution.UploadResult{
		FileID:       created.Id,
		FileName:     created.Name,
		ShareableURL: fmt.Sprintf("https://drive.google.com/file/d/%s/view?usp=sharing", created.Id),
		Size:         created.Size,
	}, nil
}

// DeletePermanently implements distribution.DriveClient.
func (c *Client) DeletePermanently(ctx context.Context, fileID string) error {
	if err := c.driveService.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}

// escapeQueryValue escapes single quotes for Drive query strings.
func escapeQueryValue(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\'' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

// Ensure Client implements distribution.DriveClient
var _ distribution.DriveClient = (*Client)(nil)
