package filesystem

import (
	"fmt"
	"os"

	"video-splitter/domain/media"
)

// Organizer implements media.Organizer with real filesystem operations.
type Organizer struct{}

// NewOrganizer creates a new filesystem organizer.
func NewOrganizer() *Organizer {
	return &Organizer{}
}

// EnsureLayout implements media.Organizer. MkdirAll makes the operation
// idempotent; existing directories and their contents are left untouched.
func (o *Organizer) EnsureLayout(layout media.OutputLayout) error {
	for _, dir := range []string{layout.Root, layout.VideoDir, layout.AudioDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// RelocateInput implements media.Organizer. The input is moved under the
// layout root so all artifacts for one input live in a single tree. A file
// already present at the destination wins; the move is skipped.
func (o *Organizer) RelocateInput(inputPath string, layout media.OutputLayout) (string, error) {
	dest := layout.RelocatedInputPath(inputPath)
	if dest == inputPath {
		return inputPath, nil
	}

	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	if err := os.Rename(inputPath, dest); err != nil {
		return "", fmt.Errorf("failed to relocate input into %s: %w", layout.Root, err)
	}

	return dest, nil
}

// Ensure Organizer implements media.Organizer
var _ media.Organizer = (*Organizer)(nil)
