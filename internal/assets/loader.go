package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // textures are PNG files
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMissing is returned (wrapped) when a texture file cannot be found.
var ErrMissing = errors.New("asset missing")

// Loader loads one texture file into a frontend-specific handle.
type Loader[T any] func(path string) (T, Size, error)

// Set holds every loaded texture for one frontend.
type Set[T any] struct {
	handles map[TextureID]T
	sizes   Sizes
	order   []TextureID
}

// Load loads every texture under root with the given loader.
// It stops at the first failure; the error names the offending path.
func Load[T any](root string, load Loader[T]) (*Set[T], error) {
	set := &Set[T]{
		handles: make(map[TextureID]T),
		sizes:   make(Sizes),
	}
	for _, id := range All() {
		path := filepath.Join(root, id.Path())
		h, size, err := load(path)
		if err != nil {
			return nil, wrapLoadError(path, err)
		}
		if size.W <= 0 || size.H <= 0 {
			return nil, fmt.Errorf("load texture %s: empty image", path)
		}
		set.handles[id] = h
		set.sizes[id] = size
		set.order = append(set.order, id)
	}
	return set, nil
}

func wrapLoadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissing, path)
	}
	return fmt.Errorf("load texture %s: %w", path, err)
}

// Get returns the handle for a texture.
func (s *Set[T]) Get(id TextureID) T {
	return s.handles[id]
}

// Sizes returns the pixel size of every loaded texture.
func (s *Set[T]) Sizes() Sizes {
	return s.sizes
}

// Release hands every handle to release in reverse load order.
func (s *Set[T]) Release(release func(TextureID, T)) {
	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		release(id, s.handles[id])
	}
	s.handles = map[TextureID]T{}
	s.order = nil
}

// DecodeImage reads a PNG into memory. Used by frontends that sample pixels themselves.
func DecodeImage(path string) (image.Image, Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Size{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, Size{}, err
	}
	b := img.Bounds()
	return img, Size{W: b.Dx(), H: b.Dy()}, nil
}

// ProbeSizes reads only the PNG headers under root to learn texture sizes.
func ProbeSizes(root string) (Sizes, error) {
	set, err := Load(root, func(path string) (struct{}, Size, error) {
		f, err := os.Open(path)
		if err != nil {
			return struct{}{}, Size{}, err
		}
		defer f.Close()

		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			return struct{}{}, Size{}, err
		}
		return struct{}{}, Size{W: cfg.Width, H: cfg.Height}, nil
	})
	if err != nil {
		return nil, err
	}
	return set.Sizes(), nil
}
