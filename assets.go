package faros

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Asset is an opaque image handle. A handle whose image failed to load, or
// that was never requested, is not ready and draws as a placeholder.
type Asset struct {
	name string
	img  *ebiten.Image
	err  error
}

// Ready reports whether the image can be drawn.
func (a *Asset) Ready() bool {
	return a != nil && a.img != nil
}

// Name returns the name the asset was requested under.
func (a *Asset) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// Err returns the load error, if any.
func (a *Asset) Err() error {
	if a == nil {
		return nil
	}
	return a.err
}

// NewAssetFromImage wraps an already decoded image.
func NewAssetFromImage(name string, img *ebiten.Image) *Asset {
	return &Asset{name: name, img: img}
}

// AssetStore loads images from a directory and caches the handles by name.
type AssetStore struct {
	dir    string
	assets map[string]*Asset
	load   func(path string) (*ebiten.Image, error)
}

// NewAssetStore creates a store rooted at dir. An empty dir disables loading;
// every handle is then a placeholder.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{
		dir:    dir,
		assets: make(map[string]*Asset),
		load: func(path string) (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			return img, err
		},
	}
}

// Get returns the handle for name, loading it on first use. Failures are
// logged once and cached as not-ready handles.
func (s *AssetStore) Get(name string) *Asset {
	if name == "" {
		return nil
	}
	if a, ok := s.assets[name]; ok {
		return a
	}
	a := &Asset{name: name}
	if s.dir == "" {
		a.err = fmt.Errorf("faros: no asset directory for %q", name)
	} else {
		path := filepath.Join(s.dir, name)
		img, err := s.load(path)
		if err != nil {
			a.err = fmt.Errorf("faros: load %s: %w", path, err)
			logger().Warn("asset unavailable, using placeholder", "name", name, "err", err)
		} else {
			a.img = img
		}
	}
	s.assets[name] = a
	return a
}

// Put registers an in-memory asset under its name.
func (s *AssetStore) Put(a *Asset) {
	s.assets[a.name] = a
}
