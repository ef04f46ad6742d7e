package faros

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAssetStoreWithoutDir(t *testing.T) {
	s := NewAssetStore("")
	a := s.Get("tower.png")
	if a.Ready() {
		t.Error("asset should not be ready without a directory")
	}
	if a.Err() == nil {
		t.Error("expected an error for a store without a directory")
	}
	if s.Get("") != nil {
		t.Error("empty name should return nil")
	}
}

func TestAssetStoreCachesFailures(t *testing.T) {
	s := NewAssetStore(t.TempDir())
	calls := 0
	s.load = func(string) (*ebiten.Image, error) {
		calls++
		return nil, errors.New("missing")
	}
	a := s.Get("abuelo.png")
	b := s.Get("abuelo.png")
	if a != b {
		t.Error("second Get should return the cached handle")
	}
	if calls != 1 {
		t.Errorf("load calls = %d, want 1", calls)
	}
	if a.Ready() || a.Err() == nil {
		t.Error("failed asset should be not ready with an error")
	}
}

func TestAssetStoreLoadsAndPuts(t *testing.T) {
	s := NewAssetStore(t.TempDir())
	img := ebiten.NewImage(4, 4)
	s.load = func(string) (*ebiten.Image, error) { return img, nil }
	if a := s.Get("sofia.png"); !a.Ready() || a.Name() != "sofia.png" {
		t.Errorf("Get = ready %v name %q, want ready sofia.png", a.Ready(), a.Name())
	}
	s.Put(NewAssetFromImage("boat", img))
	if !s.Get("boat").Ready() {
		t.Error("Put asset should be ready")
	}
}

func TestNilAsset(t *testing.T) {
	var a *Asset
	if a.Ready() || a.Name() != "" || a.Err() != nil {
		t.Error("nil asset should be not ready with empty name and no error")
	}
}
