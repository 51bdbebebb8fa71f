// Package sprite holds the raster and layering model the simulation draws
// with: cell images, an ordered layer of positioned entities and a
// compositor that flattens background layers into one surface.
package sprite

import "github.com/vovakirdan/tile-snake/internal/core"

// Surface is anything an image can be drawn onto. dst is given in surface
// units; implementations scale the source raster to fill it.
type Surface interface {
	Draw(img *Image, dst core.Rect)
}

// Image is a cell raster with a logical size in surface units.
// Cells with a zero rune are transparent.
type Image struct {
	Name   string
	Width  int // logical width in units
	Height int // logical height in units
	Cols   int // raster width in cells
	Rows   int // raster height in cells
	Cells  []core.Cell
}

// NewImage allocates a fully transparent image.
func NewImage(name string, width, height, cols, rows int) *Image {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Image{
		Name:   name,
		Width:  width,
		Height: height,
		Cols:   cols,
		Rows:   rows,
		Cells:  make([]core.Cell, cols*rows),
	}
}

// Solid returns an image filled with a single cell.
func Solid(name string, width, height, cols, rows int, c core.Cell) *Image {
	img := NewImage(name, width, height, cols, rows)
	for i := range img.Cells {
		img.Cells[i] = c
	}
	return img
}

// Bounds returns the image rectangle at the origin, in units.
func (img *Image) Bounds() core.Rect {
	return core.NewRect(0, 0, img.Width, img.Height)
}

// At returns the cell at (col, row), transparent when out of range.
func (img *Image) At(col, row int) core.Cell {
	if col < 0 || col >= img.Cols || row < 0 || row >= img.Rows {
		return core.Cell{}
	}
	return img.Cells[row*img.Cols+col]
}

// Set stores a cell at (col, row). Out of range writes are ignored.
func (img *Image) Set(col, row int, c core.Cell) {
	if col < 0 || col >= img.Cols || row < 0 || row >= img.Rows {
		return
	}
	img.Cells[row*img.Cols+col] = c
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	out := *img
	out.Cells = make([]core.Cell, len(img.Cells))
	copy(out.Cells, img.Cells)
	return &out
}

// Draw blits src onto img, stretching it to cover dst (in img's units).
// Sampling is nearest-neighbour on cell centres; transparent source cells
// leave the destination untouched.
func (img *Image) Draw(src *Image, dst core.Rect) {
	if src == nil || dst.Empty() || src.Cols == 0 || src.Rows == 0 || img.Width <= 0 || img.Height <= 0 {
		return
	}
	for row := 0; row < img.Rows; row++ {
		uy := (2*row + 1) * img.Height / (2 * img.Rows)
		for col := 0; col < img.Cols; col++ {
			ux := (2*col + 1) * img.Width / (2 * img.Cols)
			if !dst.Contains(ux, uy) {
				continue
			}
			c := src.At((ux-dst.X)*src.Cols/dst.W, (uy-dst.Y)*src.Rows/dst.H)
			if c.Transparent() {
				continue
			}
			img.Cells[row*img.Cols+col] = c
		}
	}
}
