package assets

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePriority(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writePNG(t, filepath.Join(second, "texture", "earthmap.png"), 2, 1)

	m := NewManager(first, second)
	got, err := m.Resolve("texture/earthmap.png")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := filepath.Join(second, "texture", "earthmap.png"); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}

	// A copy in a higher-priority root wins.
	writePNG(t, filepath.Join(first, "texture", "earthmap.png"), 2, 1)
	got, err = m.Resolve("texture/earthmap.png")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := filepath.Join(first, "texture", "earthmap.png"); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveMissing(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Resolve("texture/galaxy.png")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	_, err = m.Resolve(filepath.Join(t.TempDir(), "absent.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist for absolute path, got %v", err)
	}
}

func TestAddRoot(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 1, 1)

	m := NewManager()
	if _, err := m.Resolve("a.png"); err == nil {
		t.Fatal("expected miss with no roots")
	}
	m.AddRoot(dir)
	if _, err := m.Resolve("a.png"); err != nil {
		t.Errorf("Resolve after AddRoot failed: %v", err)
	}
}

func TestLoadImageCaches(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "bump.png"), 8, 4)

	m := NewManager(dir)
	img, err := m.LoadImage("bump.png", 0)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Rect.Dx() != 8 || img.Rect.Dy() != 4 {
		t.Errorf("size = %v, want 8x4", img.Rect)
	}

	again, err := m.LoadImage("bump.png", 0)
	if err != nil {
		t.Fatalf("second LoadImage failed: %v", err)
	}
	if again != img {
		t.Error("second load should come from cache")
	}

	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits / %d misses, want 1/1", hits, misses)
	}

	// A different size limit is a separate entry.
	small, err := m.LoadImage("bump.png", 4)
	if err != nil {
		t.Fatalf("LoadImage(4) failed: %v", err)
	}
	if small.Rect.Dx() != 4 || small.Rect.Dy() != 2 {
		t.Errorf("scaled size = %v, want 4x2", small.Rect)
	}

	m.Close()
	if hits, misses := m.cache.Stats(); hits != 0 || misses != 0 {
		t.Errorf("stats after Close = %d/%d, want 0/0", hits, misses)
	}
}

func TestDefaultRoots(t *testing.T) {
	roots := DefaultRoots("/opt/earth")
	if len(roots) < 2 || roots[0] != "/opt/earth" || roots[1] != "." {
		t.Errorf("DefaultRoots = %v", roots)
	}
}
