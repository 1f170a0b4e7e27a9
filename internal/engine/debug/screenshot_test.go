package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// Two rows, bottom-up: row 0 red, row 1 blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows failed: %v", err)
	}

	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top row should be blue, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom row should be red, got r=%d b=%d", r, b)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		pixels        int
		width, height int
	}{
		{"short", 7, 1, 2},
		{"long", 12, 1, 2},
		{"zero width", 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlipRows(make([]byte, tt.pixels), tt.width, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveFramebuffer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "globe")
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	name, err := s.SaveFramebuffer(make([]byte, 4*3*2), 3, 2)
	if err != nil {
		t.Fatalf("SaveFramebuffer failed: %v", err)
	}

	want := filepath.Join(dir, "globe_2024-03-01_12-30-45.000.png")
	if name != want {
		t.Errorf("file = %q, want %q", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	s := NewScreenshots("", "globe")
	name := s.Filename()
	if filepath.Dir(name) != "." || !strings.HasPrefix(name, "globe_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected filename %q", name)
	}
}
