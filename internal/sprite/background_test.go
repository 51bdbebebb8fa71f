package sprite

import (
	"testing"

	"github.com/vovakirdan/tile-snake/internal/core"
)

func TestCompositorFirstLayerIsCloned(t *testing.T) {
	base := Solid("background0", 10, 10, 2, 2, core.Cell{Rune: '.'})
	var c Compositor
	if c.Surface() != nil {
		t.Fatal("Surface() before any layer should be nil")
	}

	c.AddLayer(base)
	c.AddLayer(Solid("overlay", 1, 1, 1, 1, core.Cell{Rune: 'x'}))

	if base.At(0, 0).Rune != '.' {
		t.Error("compositing modified the provider's base image")
	}
	if got := c.Surface().At(1, 1).Rune; got != 'x' {
		t.Errorf("overlay not stretched over the base, At(1, 1) = %q", got)
	}
	if c.Layers() != 2 {
		t.Errorf("Layers() = %d, expected 2", c.Layers())
	}
}

func TestCompositorKeepsBaseSize(t *testing.T) {
	var c Compositor
	c.AddLayer(Solid("background0", 10, 10, 2, 2, core.Cell{Rune: '.'}))

	overlay := NewImage("background1", 40, 40, 2, 2)
	overlay.Set(1, 1, core.Cell{Rune: '#'})
	c.AddLayer(overlay)
	c.AddLayer(nil)

	s := c.Surface()
	if s.Width != 10 || s.Height != 10 || s.Cols != 2 || s.Rows != 2 {
		t.Errorf("surface resized to %dx%d (%dx%d cells)", s.Width, s.Height, s.Cols, s.Rows)
	}
	if s.At(0, 0).Rune != '.' || s.At(1, 1).Rune != '#' {
		t.Errorf("unexpected composition: %q %q", s.At(0, 0).Rune, s.At(1, 1).Rune)
	}

	c.Reset()
	if c.Surface() != nil || c.Layers() != 0 {
		t.Error("Reset should discard the surface")
	}
}
