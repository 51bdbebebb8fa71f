package sprite

import (
	"testing"

	"github.com/vovakirdan/tile-snake/internal/core"
)

func TestImageDrawStretches(t *testing.T) {
	dst := Solid("dst", 4, 4, 4, 4, core.Cell{Rune: '.'})
	src := Solid("src", 1, 1, 1, 1, core.Cell{Rune: 'x', Color: core.ColorRed})

	dst.Draw(src, core.NewRect(0, 0, 2, 2))

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := '.'
			if col < 2 && row < 2 {
				want = 'x'
			}
			if got := dst.At(col, row).Rune; got != want {
				t.Errorf("At(%d, %d) = %q, expected %q", col, row, got, want)
			}
		}
	}
	if c := dst.At(1, 1); c.Color != core.ColorRed {
		t.Errorf("color not copied: %+v", c)
	}
}

func TestImageDrawSkipsTransparent(t *testing.T) {
	dst := Solid("dst", 4, 2, 4, 2, core.Cell{Rune: '.'})
	src := NewImage("src", 4, 2, 4, 2)
	src.Set(3, 1, core.Cell{Rune: '#'})

	dst.Draw(src, dst.Bounds())

	if got := dst.At(3, 1).Rune; got != '#' {
		t.Errorf("At(3, 1) = %q, expected '#'", got)
	}
	if got := dst.At(0, 0).Rune; got != '.' {
		t.Errorf("transparent source overwrote At(0, 0) = %q", got)
	}
}

func TestImageDrawClipsOutside(t *testing.T) {
	dst := Solid("dst", 4, 4, 4, 4, core.Cell{Rune: '.'})
	src := Solid("src", 1, 1, 1, 1, core.Cell{Rune: 'x'})

	dst.Draw(src, core.NewRect(3, 3, 8, 8))
	dst.Draw(src, core.NewRect(-10, -10, 2, 2))

	if got := dst.At(3, 3).Rune; got != 'x' {
		t.Errorf("At(3, 3) = %q, expected 'x'", got)
	}
	if got := dst.At(0, 0).Rune; got != '.' {
		t.Errorf("off-surface draw touched At(0, 0) = %q", got)
	}
}

func TestImageClone(t *testing.T) {
	a := Solid("a", 2, 2, 2, 2, core.Cell{Rune: 'a'})
	b := a.Clone()
	b.Set(0, 0, core.Cell{Rune: 'b'})

	if a.At(0, 0).Rune != 'a' {
		t.Error("Clone shares cells with the original")
	}
	if (*Image)(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
