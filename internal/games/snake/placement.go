package snake

import "github.com/vovakirdan/tile-snake/internal/core"

// placeFood moves the food to a tile not covered by the snake.
// Test mode pins the food to a fixed tile. Otherwise a bounded number of
// uniform random candidates is tried, then the food grid is scanned in
// row-major order; ErrBoardFull means every candidate tile is taken.
func (g *Game) placeFood() error {
	if g.cfg.TestMode.Enabled {
		g.layer.SetPosition(FoodIndex, core.Point{X: g.cfg.TestMode.FoodX, Y: g.cfg.TestMode.FoodY})
		return nil
	}

	b := g.cfg.Board
	cols, rows := b.FoodColumns(), b.FoodRows()

	for attempt := 0; attempt < g.cfg.Placement.MaxAttempts; attempt++ {
		p := core.Point{X: g.rng.Intn(cols), Y: g.rng.Intn(rows)}.Scale(b.Tile)
		if g.tryFood(p) {
			return nil
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.tryFood(core.Point{X: x, Y: y}.Scale(b.Tile)) {
				return nil
			}
		}
	}
	return ErrBoardFull
}

// tryFood moves the food to p and reports whether it is clear of the head
// and every segment.
func (g *Game) tryFood(p core.Point) bool {
	g.layer.SetPosition(FoodIndex, p)
	for i := HeadIndex; i < firstSegment+g.segments; i++ {
		if g.layer.CheckCollision(FoodIndex, i) {
			return false
		}
	}
	return true
}
