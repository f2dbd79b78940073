package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"video-splitter/domain/media"
)

// mockRunner records invocations and returns canned results.
type mockRunner struct {
	calls          []mockCall
	runErr         error
	output         []byte
	outputErr      error
	combinedOutput []byte
	combinedErr    error
	// outputErrFor fails Output for specific command names (used by
	// locate tests to simulate missing binaries).
	outputErrFor map[string]error
}

type mockCall struct {
	name string
	args []string
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	m.calls = append(m.calls, mockCall{name: name, args: args})
	return m.runErr
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, mockCall{name: name, args: args})
	if err, ok := m.outputErrFor[name]; ok {
		return nil, err
	}
	return m.output, m.outputErr
}

func (m *mockRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, mockCall{name: name, args: args})
	return m.combinedOutput, m.combinedErr
}

func TestProber_Probe(t *testing.T) {
	probeText := "Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'lecture.mp4':\n" +
		"  Duration: 01:02:03.45, start: 0.000000, bitrate: 1205 kb/s\n"

	t.Run("parses duration from diagnostic output", func(t *testing.T) {
		runner := &mockRunner{combinedOutput: []byte(probeText)}
		prober := NewProber(WithProberCommandRunner(runner))

		got, err := prober.Probe(context.Background(), "/videos/lecture.mp4")
		if err != nil {
			t.Fatalf("Probe() unexpected error: %v", err)
		}
		if got != 3723.45 {
			t.Errorf("Probe() = %v, want 3723.45", got)
		}

		wantArgs := []string{"-i", "/videos/lecture.mp4", "-f", "null", "-"}
		if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0].args, wantArgs) {
			t.Errorf("Probe() invoked with %v, want %v", runner.calls, wantArgs)
		}
	})

	t.Run("nonzero exit with parseable output still yields duration", func(t *testing.T) {
		runner := &mockRunner{
			combinedOutput: []byte(probeText),
			combinedErr:    fmt.Errorf("exit status 1"),
		}
		prober := NewProber(WithProberCommandRunner(runner))

		got, err := prober.Probe(context.Background(), "/videos/lecture.mp4")
		if err != nil {
			t.Fatalf("Probe() unexpected error: %v", err)
		}
		if got != 3723.45 {
			t.Errorf("Probe() = %v, want 3723.45", got)
		}
	})

	t.Run("output without duration is fatal", func(t *testing.T) {
		runner := &mockRunner{combinedOutput: []byte("garbled output\n")}
		prober := NewProber(WithProberCommandRunner(runner))

		_, err := prober.Probe(context.Background(), "/videos/lecture.mp4")
		if !errors.Is(err, media.ErrDurationNotFound) {
			t.Errorf("Probe() error = %v, want ErrDurationNotFound", err)
		}
	})

	t.Run("custom ffmpeg path is used", func(t *testing.T) {
		runner := &mockRunner{combinedOutput: []byte(probeText)}
		prober := NewProber(
			WithProberCommandRunner(runner),
			WithProberFFmpegPath("/usr/local/bin/ffmpeg"),
		)

		if _, err := prober.Probe(context.Background(), "in.mp4"); err != nil {
			t.Fatalf("Probe() unexpected error: %v", err)
		}
		if runner.calls[0].name != "/usr/local/bin/ffmpeg" {
			t.Errorf("Probe() invoked %q, want /usr/local/bin/ffmpeg", runner.calls[0].name)
		}
	})
}

func TestExtractor_ExtractVideo(t *testing.T) {
	runner := &mockRunner{}
	extractor := NewExtractor(WithExtractorCommandRunner(runner))

	seg := &media.Segment{Start: 1800, Length: 1800, Index: 2}
	req := media.ExtractRequest{SourcePath: "/videos/lecture/lecture.mp4", Segment: seg}

	err := extractor.ExtractVideo(context.Background(), req, "/videos/lecture/MP4/lecture_part2.mp4")
	if err != nil {
		t.Fatalf("ExtractVideo() unexpected error: %v", err)
	}

	want := []string{
		"-i", "/videos/lecture/lecture.mp4",
		"-ss", "1800",
		"-t", "1800",
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y",
		"/videos/lecture/MP4/lecture_part2.mp4",
	}
	if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0].args, want) {
		t.Errorf("ExtractVideo() args = %v, want %v", runner.calls[0].args, want)
	}
}

func TestExtractor_ExtractVideo_RequiresSegment(t *testing.T) {
	extractor := NewExtractor(WithExtractorCommandRunner(&mockRunner{}))

	err := extractor.ExtractVideo(context.Background(), media.ExtractRequest{SourcePath: "in.mp4"}, "out.mp4")
	if err == nil {
		t.Fatal("ExtractVideo() expected error for nil segment, got nil")
	}
}

func TestExtractor_ExtractAudio(t *testing.T) {
	t.Run("segment slice with explicit bitrate", func(t *testing.T) {
		runner := &mockRunner{}
		extractor := NewExtractor(WithExtractorCommandRunner(runner))

		seg := &media.Segment{Start: 0, Length: 100.5, Index: 1}
		req := media.ExtractRequest{SourcePath: "in.mp4", Segment: seg, Bitrate: "192k"}

		if err := extractor.ExtractAudio(context.Background(), req, "out.mp3"); err != nil {
			t.Fatalf("ExtractAudio() unexpected error: %v", err)
		}

		want := []string{
			"-i", "in.mp4",
			"-ss", "0",
			"-t", "100.5",
			"-vn",
			"-acodec", "libmp3lame",
			"-ab", "192k",
			"-y",
			"out.mp3",
		}
		if !reflect.DeepEqual(runner.calls[0].args, want) {
			t.Errorf("ExtractAudio() args = %v, want %v", runner.calls[0].args, want)
		}
	})

	t.Run("whole file with default bitrate", func(t *testing.T) {
		runner := &mockRunner{}
		extractor := NewExtractor(WithExtractorCommandRunner(runner))

		req := media.ExtractRequest{SourcePath: "in.mp4"}

		if err := extractor.ExtractAudio(context.Background(), req, "out.mp3"); err != nil {
			t.Fatalf("ExtractAudio() unexpected error: %v", err)
		}

		want := []string{
			"-i", "in.mp4",
			"-vn",
			"-acodec", "libmp3lame",
			"-ab", DefaultAudioBitrate,
			"-y",
			"out.mp3",
		}
		if !reflect.DeepEqual(runner.calls[0].args, want) {
			t.Errorf("ExtractAudio() args = %v, want %v", runner.calls[0].args, want)
		}
	})

	t.Run("runner failure is reported", func(t *testing.T) {
		runner := &mockRunner{runErr: errors.New("exit status 1")}
		extractor := NewExtractor(WithExtractorCommandRunner(runner))

		err := extractor.ExtractAudio(context.Background(), media.ExtractRequest{SourcePath: "in.mp4"}, "out.mp3")
		if err == nil {
			t.Fatal("ExtractAudio() expected error, got nil")
		}
	})
}

func TestLocate(t *testing.T) {
	t.Run("first candidate wins", func(t *testing.T) {
		runner := &mockRunner{output: []byte("ffmpeg version 6.0")}

		path, err := Locate(context.Background(), runner)
		if err != nil {
			t.Fatalf("Locate() unexpected error: %v", err)
		}
		if path != "ffmpeg" {
			t.Errorf("Locate() = %q, want %q", path, "ffmpeg")
		}
	})

	t.Run("falls back to fixed install path", func(t *testing.T) {
		runner := &mockRunner{
			output:       []byte("ffmpeg version 6.0"),
			outputErrFor: map[string]error{"ffmpeg": errors.New("not found")},
		}

		path, err := Locate(context.Background(), runner)
		if err != nil {
			t.Fatalf("Locate() unexpected error: %v", err)
		}
		if path != "/usr/local/bin/ffmpeg" {
			t.Errorf("Locate() = %q, want /usr/local/bin/ffmpeg", path)
		}
	})

	t.Run("no candidate runnable", func(t *testing.T) {
		runner := &mockRunner{outputErr: errors.New("not found")}

		_, err := Locate(context.Background(), runner)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Locate() error = %v, want ErrNotFound", err)
		}
	})
}
