package media

import "context"

// Prober reports the total duration of a media file without producing
// output media. Implementations shell out to an external tool; tests
// substitute fakes.
type Prober interface {
	// Probe returns the file's duration in seconds, or
	// ErrDurationNotFound when the tool's output carries no parseable
	// duration.
	Probe(ctx context.Context, path string) (float64, error)
}

// ExtractRequest describes one time-bounded extraction from a source file.
// A nil Segment means the whole file (no -ss/-t bounds).
type ExtractRequest struct {
	SourcePath string
	Segment    *Segment
	Bitrate    string // audio bitrate, e.g. "320k"
}

// Extractor produces the split artifacts. Implementations delegate the
// actual decoding and muxing to an external tool.
type Extractor interface {
	// ExtractVideo stream-copies a time-bounded slice of the source into
	// outputPath. The request's Segment must be non-nil.
	ExtractVideo(ctx context.Context, req ExtractRequest, outputPath string) error

	// ExtractAudio decodes the (optionally time-bounded) audio track and
	// encodes it as MP3 at the requested bitrate into outputPath.
	ExtractAudio(ctx context.Context, req ExtractRequest, outputPath string) error
}

// FileChecker reports file existence, abstracted for tests.
type FileChecker interface {
	Exists(path string) bool
}

// Organizer owns the output directory tree and the relocation of the
// original input underneath it.
type Organizer interface {
	// EnsureLayout creates the layout directories if absent. Idempotent;
	// never removes or overwrites existing content.
	EnsureLayout(layout OutputLayout) error

	// RelocateInput moves the input file into the layout root and returns
	// its new path. If a file with that name already exists under the
	// root, the move is skipped and the existing path is returned.
	RelocateInput(inputPath string, layout OutputLayout) (string, error)
}
