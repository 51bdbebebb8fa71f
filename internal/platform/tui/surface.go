package tui

import (
	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/sprite"
)

// A 32-unit tile is drawn as two cells side by side in one row.
const (
	unitsPerCol = 16
	unitsPerRow = 32
)

// newFrame allocates a cell raster covering board.
func newFrame(board core.Rect) *sprite.Image {
	cols := (board.W + unitsPerCol - 1) / unitsPerCol
	rows := (board.H + unitsPerRow - 1) / unitsPerRow
	return sprite.NewImage("frame", board.W, board.H, cols, rows)
}

// clearFrame makes every cell of f transparent.
func clearFrame(f *sprite.Image) {
	clear(f.Cells)
}

// blit copies f onto s with its top-left cell at (x, y). Transparent cells
// become blanks.
func blit(s *core.Screen, f *sprite.Image, x, y int) {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			c := f.At(col, row)
			if c.Transparent() {
				c = core.Cell{Rune: ' '}
			}
			s.SetCell(x+col, y+row, c)
		}
	}
}
