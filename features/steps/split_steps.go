//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"video-splitter/cmd"
	"video-splitter/domain/acquire"
	"video-splitter/domain/media"

	"github.com/cucumber/godog"
)

// mockSplitProber returns a fixed duration for any probed file.
type mockSplitProber struct {
	duration float64
	err      error
}

func (m *mockSplitProber) Probe(ctx context.Context, path string) (float64, error) {
	return m.duration, m.err
}

// mockSplitExtractor records every extraction in call order for
// verification, and fails when asked to produce a configured path.
type mockSplitExtractor struct {
	outputs     []string
	failOn      string
	fileChecker *mockSplitFileChecker
}

func (m *mockSplitExtractor) extract(outputPath string) error {
	if m.failOn != "" && outputPath == m.failOn {
		return fmt.Errorf("simulated ffmpeg failure")
	}
	m.outputs = append(m.outputs, outputPath)
	if m.fileChecker != nil {
		m.fileChecker.existingFiles[outputPath] = true
	}
	return nil
}

func (m *mockSplitExtractor) ExtractVideo(ctx context.Context, req media.ExtractRequest, outputPath string) error {
	return m.extract(outputPath)
}

func (m *mockSplitExtractor) ExtractAudio(ctx context.Context, req media.ExtractRequest, outputPath string) error {
	return m.extract(outputPath)
}

// mockSplitOrganizer performs the relocation bookkeeping without touching
// the filesystem.
type mockSplitOrganizer struct {
	fileChecker *mockSplitFileChecker
}

func (m *mockSplitOrganizer) EnsureLayout(layout media.OutputLayout) error {
	return nil
}

func (m *mockSplitOrganizer) RelocateInput(inputPath string, layout media.OutputLayout) (string, error) {
	dest := layout.RelocatedInputPath(inputPath)
	if m.fileChecker != nil {
		m.fileChecker.existingFiles[dest] = true
	}
	return dest, nil
}

// mockSplitFileChecker simulates file existence.
type mockSplitFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockSplitFileChecker) Exists(path string) bool {
	return m.existingFiles[path]
}

// mockSplitDownloader simulates yt-dlp producing an MP4 in the output
// directory.
type mockSplitDownloader struct {
	title       string
	downloaded  bool
	fileChecker *mockSplitFileChecker
}

func (m *mockSplitDownloader) Title(ctx context.Context, source acquire.Source) (string, error) {
	return m.title, nil
}

func (m *mockSplitDownloader) Download(ctx context.Context, source acquire.Source, outputDir, fileStem string) error {
	m.downloaded = true
	if m.fileChecker != nil {
		m.fileChecker.existingFiles[filepath.Join(outputDir, fileStem+".mp4")] = true
	}
	return nil
}

// splitContext holds test state for split scenarios.
type splitContext struct {
	sourcePath  string
	rawURL      string
	downloadDir string
	prober      *mockSplitProber
	extractor   *mockSplitExtractor
	organizer   *mockSplitOrganizer
	fileChecker *mockSplitFileChecker
	downloader  *mockSplitDownloader
	output      *bytes.Buffer
	err         error
}

// SharedSplitContext is reset before each scenario via Before hook.
var SharedSplitContext *splitContext

func getSplitContext() *splitContext {
	return SharedSplitContext
}

func InitializeSplitScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		fileChecker := &mockSplitFileChecker{
			existingFiles: make(map[string]bool),
		}
		SharedSplitContext = &splitContext{
			prober:      &mockSplitProber{},
			extractor:   &mockSplitExtractor{fileChecker: fileChecker},
			organizer:   &mockSplitOrganizer{fileChecker: fileChecker},
			fileChecker: fileChecker,
			downloader:  &mockSplitDownloader{fileChecker: fileChecker},
			downloadDir: ".",
			output:      &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedSplitContext = nil
		return c, nil
	})

	ctx.Step(`^a video file at "([^"]*)"$`, aVideoFileAt)
	ctx.Step(`^no video file exists at "([^"]*)"$`, noVideoFileExistsAt)
	ctx.Step(`^the video duration is (\d+) seconds$`, theVideoDurationIsSeconds)
	ctx.Step(`^the download directory is "([^"]*)"$`, theDownloadDirectoryIs)
	ctx.Step(`^a remote video titled "([^"]*)" at "([^"]*)"$`, aRemoteVideoTitledAt)
	ctx.Step(`^extraction fails for "([^"]*)"$`, extractionFailsFor)
	ctx.Step(`^I split the video$`, iSplitTheVideo)
	ctx.Step(`^I split the video with audio only$`, iSplitTheVideoWithAudioOnly)
	ctx.Step(`^I split the video without segmenting$`, iSplitTheVideoWithoutSegmenting)
	ctx.Step(`^I attempt to split the video$`, iAttemptToSplitTheVideo)
	ctx.Step(`^I attempt to split from the URL "([^"]*)"$`, iAttemptToSplitFromTheURL)
	ctx.Step(`^the extracted outputs should be:$`, theExtractedOutputsShouldBe)
	ctx.Step(`^I should receive an error containing "([^"]*)"$`, iShouldReceiveAnErrorContaining)
	ctx.Step(`^no extraction should have happened$`, noExtractionShouldHaveHappened)
	ctx.Step(`^no download should have happened$`, noDownloadShouldHaveHappened)
}

func aVideoFileAt(path string) error {
	s := getSplitContext()
	s.sourcePath = path
	s.fileChecker.existingFiles[path] = true
	return nil
}

func noVideoFileExistsAt(path string) error {
	s := getSplitContext()
	s.sourcePath = path
	s.fileChecker.existingFiles[path] = false
	return nil
}

func theVideoDurationIsSeconds(seconds int) error {
	s := getSplitContext()
	s.prober.duration = float64(seconds)
	return nil
}

func theDownloadDirectoryIs(dir string) error {
	s := getSplitContext()
	s.downloadDir = dir
	return nil
}

func aRemoteVideoTitledAt(title, url string) error {
	s := getSplitContext()
	s.rawURL = url
	s.downloader.title = title
	return nil
}

func extractionFailsFor(path string) error {
	s := getSplitContext()
	s.extractor.failOn = path
	return nil
}

func runSplit(audioOnly, noSplit bool) error {
	s := getSplitContext()
	s.err = cmd.RunSplitWithDependencies(
		context.Background(),
		s.prober,
		s.extractor,
		s.organizer,
		s.fileChecker,
		s.downloader,
		s.sourcePath,
		s.rawURL,
		s.downloadDir,
		"320k",
		audioOnly,
		noSplit,
		s.output,
	)
	return nil
}

func iSplitTheVideo() error {
	if err := runSplit(false, false); err != nil {
		return err
	}
	s := getSplitContext()
	if s.err != nil {
		return fmt.Errorf("unexpected error: %v", s.err)
	}
	return nil
}

func iSplitTheVideoWithAudioOnly() error {
	if err := runSplit(true, false); err != nil {
		return err
	}
	s := getSplitContext()
	if s.err != nil {
		return fmt.Errorf("unexpected error: %v", s.err)
	}
	return nil
}

func iSplitTheVideoWithoutSegmenting() error {
	if err := runSplit(false, true); err != nil {
		return err
	}
	s := getSplitContext()
	if s.err != nil {
		return fmt.Errorf("unexpected error: %v", s.err)
	}
	return nil
}

func iAttemptToSplitTheVideo() error {
	return runSplit(false, false)
}

func iAttemptToSplitFromTheURL(url string) error {
	s := getSplitContext()
	s.rawURL = url
	s.sourcePath = ""
	return runSplit(false, false)
}

func theExtractedOutputsShouldBe(table *godog.Table) error {
	s := getSplitContext()

	var expected []string
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		expected = append(expected, row.Cells[0].Value)
	}

	if len(s.extractor.outputs) != len(expected) {
		return fmt.Errorf("expected %d outputs, got %d: %v (want %v)",
			len(expected), len(s.extractor.outputs), s.extractor.outputs, expected)
	}
	for i := range expected {
		if s.extractor.outputs[i] != expected[i] {
			return fmt.Errorf("output %d: expected %q, got %q",
				i+1, expected[i], s.extractor.outputs[i])
		}
	}
	return nil
}

func iShouldReceiveAnErrorContaining(fragment string) error {
	s := getSplitContext()
	if s.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	if !strings.Contains(s.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got: %v", fragment, s.err)
	}
	return nil
}

func noExtractionShouldHaveHappened() error {
	s := getSplitContext()
	if len(s.extractor.outputs) != 0 {
		return fmt.Errorf("expected no extraction, got %d calls: %v",
			len(s.extractor.outputs), s.extractor.outputs)
	}
	return nil
}

func noDownloadShouldHaveHappened() error {
	s := getSplitContext()
	if s.downloader.downloaded {
		return fmt.Errorf("expected no download to happen")
	}
	return nil
}
