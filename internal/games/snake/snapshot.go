package snake

import "github.com/vovakirdan/tile-snake/internal/core"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Steps    uint64
	Mode     Mode
	Phase    core.Phase
	Score    int
	Head     core.Point
	Food     core.Point
	Velocity core.Point
	Body     []core.Point // segment positions, nearest the head first
	Reason   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Steps:    g.steps,
		Mode:     g.mode,
		Phase:    g.phase,
		Velocity: g.velocity,
		Reason:   g.reason,
	}
	if g.guard != nil {
		s.Score = g.guard.Peek()
	}
	if g.layer != nil {
		s.Head = g.layer.Position(HeadIndex)
		s.Food = g.layer.Position(FoodIndex)
		s.Body = make([]core.Point, 0, g.segments)
		for i := firstSegment; i < firstSegment+g.segments; i++ {
			s.Body = append(s.Body, g.layer.Position(i))
		}
	}
	return s
}
