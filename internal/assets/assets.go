// Package assets resolves and caches the viewer's image files.
package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/engine/texture"
	"github.com/Faultbox/earthglobe/internal/logger"
)

// Manager looks asset paths up across a list of root directories.
// Roots are searched in order; the first hit wins.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager(roots ...string) *Manager {
	return &Manager{
		roots: roots,
		cache: NewCache(),
	}
}

// DefaultRoots returns extra followed by the working directory and the
// directory holding the executable.
func DefaultRoots(extra ...string) []string {
	roots := append([]string{}, extra...)
	roots = append(roots, ".")
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(exe))
	}
	return roots
}

// AddRoot appends a search directory with the lowest priority.
func (m *Manager) AddRoot(dir string) {
	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()
}

// Resolve finds path under the roots. Absolute paths are checked as-is.
func (m *Manager) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, root := range m.roots {
		candidate := filepath.Join(root, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("asset %s: %w", path, os.ErrNotExist)
}

// LoadImage resolves and decodes an image, fitting it within maxSize.
// Decoded images are cached per path and size limit.
func (m *Manager) LoadImage(path string, maxSize int) (*image.RGBA, error) {
	key := fmt.Sprintf("%s@%d", path, maxSize)
	if img, ok := m.cache.Get(key); ok {
		return img, nil
	}

	full, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}

	img, err := texture.LoadFile(full, maxSize)
	if err != nil {
		return nil, err
	}

	logger.Debug("image loaded",
		zap.String("path", full),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
	)
	m.cache.Set(key, img)
	return img, nil
}

// Close drops cached images.
func (m *Manager) Close() {
	hits, misses := m.cache.Stats()
	logger.Debug("asset cache closed", zap.Int("hits", hits), zap.Int("misses", misses))
	m.cache.Clear()
}

// Cache is a simple in-memory cache for decoded images.
type Cache struct {
	data map[string]*image.RGBA
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*image.RGBA),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = img
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*image.RGBA)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
