package sprite

import (
	"slices"

	"github.com/vovakirdan/tile-snake/internal/core"
)

// Entity is one positioned image in a Layer.
type Entity struct {
	Index    int
	Image    *Image
	Position core.Point
	Width    int
	Height   int
}

// Bounds returns the entity's bounding box in surface units.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.Position.X, e.Position.Y, e.Width, e.Height)
}

// Layer is an ordered collection of entities keyed by integer index.
// Iteration, and therefore drawing, follows ascending index order.
type Layer struct {
	entities map[int]*Entity
	keys     []int // sorted ascending
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{entities: make(map[int]*Entity)}
}

// AddOrReplace inserts an entity at index, or replaces the one already there
// without changing its draw position in the order. The entity's size comes
// from the image (0x0 for a nil image).
func (l *Layer) AddOrReplace(index int, img *Image, x, y int) {
	e := &Entity{Index: index, Image: img, Position: core.Point{X: x, Y: y}}
	if img != nil {
		e.Width, e.Height = img.Width, img.Height
	}
	if _, ok := l.entities[index]; !ok {
		pos, _ := slices.BinarySearch(l.keys, index)
		l.keys = slices.Insert(l.keys, pos, index)
	}
	l.entities[index] = e
}

// SetPosition moves the entity at index. Absent indices are ignored.
func (l *Layer) SetPosition(index int, p core.Point) {
	if e, ok := l.entities[index]; ok {
		e.Position = p
	}
}

// Position returns the entity position, or the zero point if index is absent.
func (l *Layer) Position(index int) core.Point {
	if e, ok := l.entities[index]; ok {
		return e.Position
	}
	return core.Point{}
}

// Lookup returns a copy of the entity at index.
func (l *Layer) Lookup(index int) (Entity, bool) {
	e, ok := l.entities[index]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Bounds returns the bounding box of the entity at index.
func (l *Layer) Bounds(index int) (core.Rect, bool) {
	e, ok := l.entities[index]
	if !ok {
		return core.Rect{}, false
	}
	return e.Bounds(), true
}

// CheckCollision reports whether the bounding boxes of a and b intersect.
// It is false when either index is absent.
func (l *Layer) CheckCollision(a, b int) bool {
	ea, ok := l.entities[a]
	if !ok {
		return false
	}
	eb, ok := l.entities[b]
	if !ok {
		return false
	}
	return ea.Bounds().Intersects(eb.Bounds())
}

// Remove deletes the entity at index, if present.
func (l *Layer) Remove(index int) {
	if _, ok := l.entities[index]; !ok {
		return
	}
	delete(l.entities, index)
	if pos, found := slices.BinarySearch(l.keys, index); found {
		l.keys = slices.Delete(l.keys, pos, pos+1)
	}
}

// Clear drops every entity.
func (l *Layer) Clear() {
	clear(l.entities)
	l.keys = l.keys[:0]
}

// Len returns the number of entities.
func (l *Layer) Len() int {
	return len(l.keys)
}

// Indices returns the occupied indices in ascending order.
func (l *Layer) Indices() []int {
	return slices.Clone(l.keys)
}

// Render draws every entity with an image onto dst in ascending index order.
func (l *Layer) Render(dst Surface) {
	for _, k := range l.keys {
		e := l.entities[k]
		if e.Image == nil {
			continue
		}
		dst.Draw(e.Image, e.Bounds())
	}
}
