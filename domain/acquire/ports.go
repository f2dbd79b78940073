package acquire

import "context"

// Downloader resolves a remote video reference to files on disk.
// Implementations wrap an external download tool; tests substitute fakes.
type Downloader interface {
	// Title reports the remote-side title of the video, unsanitized.
	Title(ctx context.Context, source Source) (string, error)

	// Download fetches the video into outputDir using fileStem as the
	// output file name (extension chosen by the tool). Separate video and
	// audio streams are merged into a single container.
	Download(ctx context.Context, source Source, outputDir, fileStem string) error
}
