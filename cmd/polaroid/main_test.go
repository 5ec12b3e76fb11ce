package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/polaroid/internal/export"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestThemesCommand(t *testing.T) {
	out, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	for _, want := range []string{"* meadow", "blossom"} {
		if !strings.Contains(out, want) {
			t.Errorf("themes output missing %q:\n%s", want, out)
		}
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gallery.html")

	_, err := execute(t, "export",
		"--out", out,
		"--count", "12",
		"--theme", "blossom",
		"--seed", "3",
		"--log", filepath.Join(dir, "polaroid.log"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	page := string(data)
	if got := strings.Count(page, `<figure class="polaroid"`); got != 12 {
		t.Errorf("polaroids = %d, want 12", got)
	}
	if !strings.Contains(page, "🌸") {
		t.Error("export should use the blossom theme")
	}
}

func TestExportCommand_Reproducible(t *testing.T) {
	dir := t.TempDir()
	run := func() string {
		out, err := execute(t, "export", "--out", "-", "--seed", "9",
			"--log", filepath.Join(dir, "polaroid.log"))
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		return out
	}
	if run() != run() {
		t.Error("same seed should produce the same page")
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "polaroid.yaml")
	if err := os.WriteFile(cfg, []byte("group_size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "export", "--config", cfg, "--out", "-"); err == nil {
		t.Error("export with group_size 0 should fail")
	}
	if _, err := execute(t, "themes", "--theme", "nope"); err != nil {
		t.Errorf("themes ignores --theme, got %v", err)
	}
	if _, err := execute(t, "export", "--theme", "nope", "--out", "-",
		"--log", filepath.Join(dir, "polaroid.log")); err == nil {
		t.Error("export with an unknown theme should fail")
	}
}

// failingCloser accepts every write and then fails to close.
type failingCloser struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("no space left on device")

func (f *failingCloser) Close() error {
	f.closed = true
	return errDiskFull
}

func TestWritePage_CloseError(t *testing.T) {
	page := export.Page{
		Theme:  theme.Default(),
		Photos: photo.Generate(6, photo.NewRand(1), photo.Options{Dir: "images", Ext: "png"}),
	}

	w := &failingCloser{}
	err := writePage(w, "gallery.html", page)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("writePage() error = %v, want %v", err, errDiskFull)
	}
	if !strings.Contains(err.Error(), "closing gallery.html") {
		t.Errorf("error %q should name the file being closed", err)
	}
	if !w.closed {
		t.Error("writePage should close the writer")
	}
	if w.Len() == 0 {
		t.Error("page should be rendered before closing")
	}
}

func TestWritePage_ClosesOnRenderError(t *testing.T) {
	page := export.Page{Theme: theme.Default(), GroupSize: -1}

	w := &failingCloser{}
	if err := writePage(w, "gallery.html", page); err == nil {
		t.Fatal("writePage() with a bad group size should fail")
	}
	if !w.closed {
		t.Error("writePage should close the writer after a failed render")
	}
}
