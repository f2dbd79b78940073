package split

import (
	"context"
	"fmt"
	"io"

	"video-splitter/domain/media"
)

// Service coordinates a full split run: organize the output tree, probe
// the duration, plan the segments, and drive the extractor through the
// plan. One external invocation runs to completion before the next is
// issued; the first failure aborts the remaining plan.
type Service struct {
	prober      media.Prober
	extractor   media.Extractor
	organizer   media.Organizer
	fileChecker media.FileChecker
	bitrate     string
	output      io.Writer
}

// NewService creates a new split service.
func NewService(
	prober media.Prober,
	extractor media.Extractor,
	organizer media.Organizer,
	fileChecker media.FileChecker,
	bitrate string,
	output io.Writer,
) *Service {
	if output == nil {
		output = io.Discard
	}
	return &Service{
		prober:      prober,
		extractor:   extractor,
		organizer:   organizer,
		fileChecker: fileChecker,
		bitrate:     bitrate,
		output:      output,
	}
}

// Input represents the input for a split run.
type Input struct {
	SourcePath string
	AudioOnly  bool // segment outputs are audio only, no video slices
	NoSplit    bool // skip segmentation entirely, whole-file audio only
}

// Result contains the results of a successful split run.
type Result struct {
	Layout       media.OutputLayout
	SourcePath   string // input location after relocation
	Duration     float64
	SegmentCount int
}

// Split runs the pipeline for one input file.
func (s *Service) Split(ctx context.Context, input Input) (*Result, error) {
	if !s.fileChecker.Exists(input.SourcePath) {
		return nil, fmt.Errorf("input file does not exist: %s", input.SourcePath)
	}

	// Organize: derive and create the output tree, then move the input
	// underneath it so every artifact for this file lives in one place.
	layout := media.LayoutFor(input.SourcePath)
	if err := s.organizer.EnsureLayout(layout); err != nil {
		return nil, err
	}
	sourcePath, err := s.organizer.RelocateInput(input.SourcePath, layout)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.output, "Output directory: %s\n", layout.Root)

	// Probe: without a duration no plan can be computed.
	duration, err := s.prober.Probe(ctx, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("could not determine video duration: %w", err)
	}
	fmt.Fprintf(s.output, "Video duration: %.1f minutes\n", duration/60)

	// Whole-file audio is extracted before any segmentation so a complete
	// audio artifact exists even if a later segment invocation fails.
	fmt.Fprintf(s.output, "Extracting full audio track...\n")
	wholeReq := media.ExtractRequest{SourcePath: sourcePath, Bitrate: s.bitrate}
	if err := s.extractor.ExtractAudio(ctx, wholeReq, layout.WholeAudioPath()); err != nil {
		return nil, fmt.Errorf("full audio extraction failed: %w", err)
	}
	fmt.Fprintf(s.output, "  Created: %s\n", layout.WholeAudioPath())

	result := &Result{
		Layout:     layout,
		SourcePath: sourcePath,
		Duration:   duration,
	}

	if input.NoSplit {
		fmt.Fprintf(s.output, "Skipping segmentation (--no-split)\n")
		return result, nil
	}

	plan := media.PlanSegments(duration)
	if len(plan) == 0 {
		fmt.Fprintf(s.output, "Nothing to segment: zero duration\n")
		return result, nil
	}

	for _, seg := range plan {
		fmt.Fprintf(s.output, "Creating part %d of %d...\n", seg.Index, len(plan))

		segment := seg
		req := media.ExtractRequest{
			SourcePath: sourcePath,
			Segment:    &segment,
			Bitrate:    s.bitrate,
		}

		if !input.AudioOnly {
			videoPath := layout.SegmentVideoPath(seg.Index)
			if err := s.extractor.ExtractVideo(ctx, req, videoPath); err != nil {
				return nil, fmt.Errorf("video extraction for part %d failed: %w", seg.Index, err)
			}
			fmt.Fprintf(s.output, "  Created: %s\n", videoPath)
		}

		audioPath := layout.SegmentAudioPath(seg.Index)
		if err := s.extractor.ExtractAudio(ctx, req, audioPath); err != nil {
			return nil, fmt.Errorf("audio extraction for part %d failed: %w", seg.Index, err)
		}
		fmt.Fprintf(s.output, "  Created: %s\n", audioPath)

		result.SegmentCount++
	}

	fmt.Fprintf(s.output, "Completed! Generated %d segments in %s\n", result.SegmentCount, layout.Root)
	return result, nil
}
