// Package assets provides resource loading with caching and optional
// hot reload for slate applications.
//
// A Store reads from any fs.FS (an embed.FS, os.DirFS, or fstest.MapFS in
// tests) and caches decoded images and parsed fonts. A Watcher feeds file
// change events so callers can invalidate and reload.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/slate2d/slate/surface"
	"github.com/slate2d/slate/text"
)

// Store loads and caches assets from a file system.
//
// Store is safe for concurrent use.
type Store struct {
	fsys fs.FS

	mu     sync.RWMutex
	images map[string]*surface.Surface
	fonts  map[string]*text.Font
}

// NewStore creates a store over fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:   fsys,
		images: make(map[string]*surface.Surface),
		fonts:  make(map[string]*text.Font),
	}
}

// Bytes reads a raw file. Bytes are not cached.
func (s *Store) Bytes(path string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return data, nil
}

// Image loads a PNG or JPEG file as a surface, caching the decoded result.
func (s *Store) Image(path string) (*surface.Surface, error) {
	s.mu.RLock()
	cached, ok := s.images[path]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	sf := surface.FromImage(img)

	s.mu.Lock()
	s.images[path] = sf
	s.mu.Unlock()
	return sf, nil
}

// Font loads and parses a TTF or OTF file, caching the parsed font.
func (s *Store) Font(path string) (*text.Font, error) {
	s.mu.RLock()
	cached, ok := s.fonts[path]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := s.Bytes(path)
	if err != nil {
		return nil, err
	}
	font, err := text.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}

	s.mu.Lock()
	s.fonts[path] = font
	s.mu.Unlock()
	return font, nil
}

// Invalidate drops the cached entries for path, forcing a reload on the
// next access. Watcher event handlers call this.
func (s *Store) Invalidate(path string) {
	s.mu.Lock()
	delete(s.images, path)
	delete(s.fonts, path)
	s.mu.Unlock()
}

// InvalidateAll drops every cached entry.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.images = make(map[string]*surface.Surface)
	s.fonts = make(map[string]*text.Font)
	s.mu.Unlock()
}
