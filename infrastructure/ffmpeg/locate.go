package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound indicates that no runnable ffmpeg binary was found at any of
// the candidate locations.
var ErrNotFound = errors.New("ffmpeg not found; install ffmpeg or put it on PATH")

// candidatePaths returns the fixed list of locations tried when locating
// the ffmpeg binary: the bare name on the search path, the common manual
// install location, and the user's own bin directory.
func candidatePaths() []string {
	candidates := []string{"ffmpeg", "/usr/local/bin/ffmpeg"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "bin", "ffmpeg"))
	}
	return candidates
}

// Locate finds a runnable ffmpeg binary by invoking each candidate with
// -version until one succeeds.
func Locate(ctx context.Context, runner CommandRunner) (string, error) {
	if runner == nil {
		runner = &ExecCommandRunner{}
	}

	for _, path := range candidatePaths() {
		if _, err := runner.Output(ctx, path, "-version"); err == nil {
			return path, nil
		}
	}

	return "", ErrNotFound
}
