package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"video-splitter/domain/media"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestOrganizer_EnsureLayout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lecture.mp4")
	layout := media.LayoutFor(input)

	organizer := NewOrganizer()

	if err := organizer.EnsureLayout(layout); err != nil {
		t.Fatalf("EnsureLayout() unexpected error: %v", err)
	}

	for _, d := range []string{layout.Root, layout.VideoDir, layout.AudioDir} {
		info, err := os.Stat(d)
		if err != nil {
			t.Fatalf("expected directory %s to exist: %v", d, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", d)
		}
	}
}

func TestOrganizer_EnsureLayout_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lecture.mp4")
	layout := media.LayoutFor(input)

	organizer := NewOrganizer()

	if err := organizer.EnsureLayout(layout); err != nil {
		t.Fatalf("first EnsureLayout() failed: %v", err)
	}

	// Put content in place, then ensure again; nothing may be lost.
	existing := filepath.Join(layout.VideoDir, "lecture_part1.mp4")
	writeFile(t, existing, "segment data")

	if err := organizer.EnsureLayout(layout); err != nil {
		t.Fatalf("second EnsureLayout() failed: %v", err)
	}

	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("existing file lost after re-ensure: %v", err)
	}
	if string(data) != "segment data" {
		t.Errorf("existing file content changed: %q", data)
	}
}

func TestOrganizer_RelocateInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lecture.mp4")
	writeFile(t, input, "video data")

	layout := media.LayoutFor(input)
	organizer := NewOrganizer()

	if err := organizer.EnsureLayout(layout); err != nil {
		t.Fatalf("EnsureLayout() failed: %v", err)
	}

	moved, err := organizer.RelocateInput(input, layout)
	if err != nil {
		t.Fatalf("RelocateInput() unexpected error: %v", err)
	}

	want := filepath.Join(layout.Root, "lecture.mp4")
	if moved != want {
		t.Errorf("RelocateInput() = %q, want %q", moved, want)
	}
	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Errorf("original input still present at %s", input)
	}
	data, err := os.ReadFile(moved)
	if err != nil {
		t.Fatalf("relocated file missing: %v", err)
	}
	if string(data) != "video data" {
		t.Errorf("relocated file content changed: %q", data)
	}
}

func TestOrganizer_RelocateInput_ExistingDestinationWins(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lecture.mp4")
	writeFile(t, input, "new data")

	layout := media.LayoutFor(input)
	organizer := NewOrganizer()

	if err := organizer.EnsureLayout(layout); err != nil {
		t.Fatalf("EnsureLayout() failed: %v", err)
	}

	dest := filepath.Join(layout.Root, "lecture.mp4")
	writeFile(t, dest, "already relocated")

	moved, err := organizer.RelocateInput(input, layout)
	if err != nil {
		t.Fatalf("RelocateInput() unexpected error: %v", err)
	}
	if moved != dest {
		t.Errorf("RelocateInput() = %q, want %q", moved, dest)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "already relocated" {
		t.Errorf("destination was overwritten: %q", data)
	}
	if _, err := os.Stat(input); err != nil {
		t.Errorf("source should be untouched when destination exists: %v", err)
	}
}

func TestChecker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.mp4")
	writeFile(t, path, "12345")

	checker := NewChecker()

	if !checker.Exists(path) {
		t.Error("Exists() = false for existing file")
	}
	if checker.Exists(filepath.Join(dir, "missing.mp4")) {
		t.Error("Exists() = true for missing file")
	}
	if got := checker.Size(path); got != 5 {
		t.Errorf("Size() = %d, want 5", got)
	}
	if got := checker.Size(filepath.Join(dir, "missing.mp4")); got != 0 {
		t.Errorf("Size() = %d for missing file, want 0", got)
	}
}
