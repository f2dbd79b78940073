package media

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Directory names for the split artifacts inside the output root.
const (
	VideoDirName = "MP4"
	AudioDirName = "MP3"
)

// OutputLayout is the three-directory tree a split run writes into,
// derived deterministically from the input file path.
type OutputLayout struct {
	Root     string // <parent>/<stem>
	VideoDir string // <root>/MP4
	AudioDir string // <root>/MP3
	Stem     string // input file name without extension
}

// LayoutFor derives the output layout for an input video path. It performs
// no filesystem access; directory creation is the organizer's job.
func LayoutFor(inputPath string) OutputLayout {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	root := filepath.Join(filepath.Dir(inputPath), stem)

	return OutputLayout{
		Root:     root,
		VideoDir: filepath.Join(root, VideoDirName),
		AudioDir: filepath.Join(root, AudioDirName),
		Stem:     stem,
	}
}

// RelocatedInputPath returns where the original input file lives once it
// has been moved under the output root.
func (l OutputLayout) RelocatedInputPath(inputPath string) string {
	return filepath.Join(l.Root, filepath.Base(inputPath))
}

// WholeAudioPath returns the path of the whole-file audio artifact.
func (l OutputLayout) WholeAudioPath() string {
	return filepath.Join(l.AudioDir, l.Stem+".mp3")
}

// SegmentVideoPath returns the video output path for a segment.
func (l OutputLayout) SegmentVideoPath(index int) string {
	return filepath.Join(l.VideoDir, fmt.Sprintf("%s_part%d.mp4", l.Stem, index))
}

// SegmentAudioPath returns the audio output path for a segment.
func (l OutputLayout) SegmentAudioPath(index int) string {
	return filepath.Join(l.AudioDir, fmt.Sprintf("%s_part%d.mp3", l.Stem, index))
}
