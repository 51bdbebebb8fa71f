package sprite

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tile-snake/internal/core"
)

// recorder is a Surface that remembers draw calls.
type recorder struct {
	names []string
	rects []core.Rect
}

func (r *recorder) Draw(img *Image, dst core.Rect) {
	r.names = append(r.names, img.Name)
	r.rects = append(r.rects, dst)
}

func tile(name string) *Image {
	return Solid(name, 32, 32, 2, 1, core.Cell{Rune: '█'})
}

func TestLayerOrdering(t *testing.T) {
	l := NewLayer()
	l.AddOrReplace(3, tile("c"), 0, 0)
	l.AddOrReplace(0, tile("food"), 0, 0)
	l.AddOrReplace(2, tile("b"), 0, 0)
	l.AddOrReplace(1, tile("head"), 0, 0)

	if got := l.Indices(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Indices() = %v, expected ascending", got)
	}

	var r recorder
	l.Render(&r)
	if !slices.Equal(r.names, []string{"food", "head", "b", "c"}) {
		t.Errorf("render order = %v", r.names)
	}
}

func TestLayerReplaceKeepsOrder(t *testing.T) {
	l := NewLayer()
	l.AddOrReplace(1, tile("head"), 32, 32)
	l.AddOrReplace(2, tile("tail"), 0, 0)
	l.AddOrReplace(1, tile("head2"), 64, 0)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", l.Len())
	}
	e, ok := l.Lookup(1)
	if !ok || e.Image.Name != "head2" || e.Position != (core.Point{X: 64, Y: 0}) {
		t.Errorf("Lookup(1) = %+v, %v", e, ok)
	}
	if e.Width != 32 || e.Height != 32 {
		t.Errorf("size = %dx%d, expected 32x32", e.Width, e.Height)
	}
}

func TestLayerAbsentIndex(t *testing.T) {
	l := NewLayer()
	l.AddOrReplace(0, tile("food"), 96, 64)

	l.SetPosition(7, core.Point{X: 5, Y: 5})
	if l.Len() != 1 {
		t.Errorf("SetPosition on absent index created an entity")
	}
	if p := l.Position(7); !p.IsZero() {
		t.Errorf("Position(absent) = %v, expected zero", p)
	}
	if p := l.Position(0); p != (core.Point{X: 96, Y: 64}) {
		t.Errorf("Position(0) = %v", p)
	}
	if l.CheckCollision(0, 7) || l.CheckCollision(7, 0) {
		t.Error("CheckCollision with absent index should be false")
	}
	if _, ok := l.Lookup(7); ok {
		t.Error("Lookup(absent) reported presence")
	}
}

func TestLayerNilImage(t *testing.T) {
	l := NewLayer()
	l.AddOrReplace(0, nil, 0, 0)
	l.AddOrReplace(1, tile("head"), 0, 0)

	e, _ := l.Lookup(0)
	if e.Width != 0 || e.Height != 0 {
		t.Errorf("nil image size = %dx%d, expected 0x0", e.Width, e.Height)
	}
	if l.CheckCollision(0, 1) {
		t.Error("a 0x0 entity should never collide")
	}

	var r recorder
	l.Render(&r)
	if len(r.names) != 1 {
		t.Errorf("Render drew %d entities, expected 1", len(r.names))
	}
}

func TestLayerCheckCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Point
		want bool
	}{
		{"same tile", core.Point{X: 64, Y: 32}, core.Point{X: 64, Y: 32}, true},
		{"horizontal neighbour", core.Point{X: 64, Y: 32}, core.Point{X: 96, Y: 32}, false},
		{"vertical neighbour", core.Point{X: 64, Y: 32}, core.Point{X: 64, Y: 64}, false},
		{"partial overlap", core.Point{X: 0, Y: 0}, core.Point{X: 16, Y: 16}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayer()
			l.AddOrReplace(1, tile("head"), tt.a.X, tt.a.Y)
			l.AddOrReplace(5, tile("tail"), tt.b.X, tt.b.Y)
			if got := l.CheckCollision(1, 5); got != tt.want {
				t.Errorf("CheckCollision() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestLayerRemoveAndClear(t *testing.T) {
	l := NewLayer()
	for i := 0; i < 5; i++ {
		l.AddOrReplace(i, tile("t"), i*32, 0)
	}
	l.Remove(2)
	l.Remove(42)
	if got := l.Indices(); !slices.Equal(got, []int{0, 1, 3, 4}) {
		t.Errorf("Indices() after Remove = %v", got)
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d", l.Len())
	}
	l.AddOrReplace(9, tile("t"), 0, 0)
	if got := l.Indices(); !slices.Equal(got, []int{9}) {
		t.Errorf("Indices() after reuse = %v", got)
	}
}
