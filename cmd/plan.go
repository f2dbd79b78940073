package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"video-splitter/domain/media"
	"video-splitter/infrastructure/ffmpeg"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <video file>",
	Short: "Show the segment plan for a video without extracting anything",
	Long: `Probe a video's duration and print the 30-minute segment plan that a
split run would execute, without invoking any extraction.

Example:
  video-splitter plan recording.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ffmpegPath := ffmpegPathOverride()
	if ffmpegPath == "" {
		var err error
		ffmpegPath, err = ffmpeg.Locate(ctx, nil)
		if err != nil {
			return err
		}
	}

	prober := ffmpeg.NewProber(ffmpeg.WithProberFFmpegPath(ffmpegPath))
	return RunPlanWithDependencies(ctx, prober, args[0], os.Stdout)
}

// RunPlanWithDependencies runs the plan command with injected dependencies
// (for testing).
func RunPlanWithDependencies(ctx context.Context, prober media.Prober, videoPath string, output OutputWriter) error {
	duration, err := prober.Probe(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("could not determine video duration: %w", err)
	}

	layout := media.LayoutFor(videoPath)
	plan := media.PlanSegments(duration)

	fmt.Fprintf(output, "Duration: %s (%.2f seconds)\n", formatClock(duration), duration)
	if len(plan) == 0 {
		fmt.Fprintf(output, "Nothing to segment: zero duration\n")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(output)
	t.AppendHeader(table.Row{"#", "Start", "Length", "Video", "Audio"})
	for _, seg := range plan {
		t.AppendRow(table.Row{
			seg.Index,
			formatClock(seg.Start),
			formatClock(seg.Length),
			layout.SegmentVideoPath(seg.Index),
			layout.SegmentAudioPath(seg.Index),
		})
	}
	t.Render()

	return nil
}

// formatClock renders seconds as H:MM:SS for human consumption.
func formatClock(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
