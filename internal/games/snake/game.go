// Package snake implements the tile-grid snake simulation: a head that moves
// one tile per step, a tail that follows the head's path, food that grows the
// tail and a score guarded against out-of-band edits.
package snake

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tile-snake/internal/assets"
	"github.com/vovakirdan/tile-snake/internal/clock"
	"github.com/vovakirdan/tile-snake/internal/config"
	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/registry"
	"github.com/vovakirdan/tile-snake/internal/scoreguard"
	"github.com/vovakirdan/tile-snake/internal/sprite"
)

// Layer indices. Tail segments occupy firstSegment, firstSegment+1, ...
const (
	FoodIndex    = 0
	HeadIndex    = 1
	firstSegment = 2
)

// ErrBoardFull is reported when no free tile is left for the food.
var ErrBoardFull = errors.New("snake: no free tile for food")

// Mode selects between the classic rules and the deterministic test rules.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeTest    Mode = "test" // food pinned, ramp on every point
)

// ranker is implemented by score recorders that can place a score in their
// ranked list.
type ranker interface {
	Rank(gameID string, score int) (int, error)
}

// Game implements the snake simulation.
type Game struct {
	mu sync.Mutex

	mode       Mode
	cfg        config.SnakeConfig
	provider   assets.Provider
	loaded     bool   // cfg and provider are set
	difficulty string // overrides the package preset when set

	rng    *rand.Rand
	scores core.ScoreRecorder

	layer      *sprite.Layer
	background sprite.Compositor
	tailImg    *sprite.Image
	guard      *scoreguard.Guard
	ramp       clock.Ramp
	interval   time.Duration

	velocity core.Point // unit heading, in tiles
	moved    core.Point // heading used by the last step
	segments int
	steps    uint64

	phase     core.Phase
	final     *core.Notice
	reason    string
	recordErr error
}

// Package-level settings applied to games created from the registry.
var (
	configPath       string
	difficultyPreset string
	themePath        string
)

// SetConfigPath sets the config file path used by registry-created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the current difficulty preset.
func GetDifficultyPreset() string {
	return difficultyPreset
}

// SetThemePath sets the theme file used by registry-created games.
func SetThemePath(path string) {
	themePath = path
}

// New creates a classic game. Config and theme are loaded on Reset.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTestMode creates a game with pinned food and a ramp on every point.
func NewTestMode() *Game {
	return &Game{mode: ModeTest}
}

// NewWithConfig creates a game with an explicit configuration and image
// provider. Test mode follows cfg.TestMode.Enabled.
func NewWithConfig(cfg config.SnakeConfig, provider assets.Provider) *Game {
	mode := ModeClassic
	if cfg.TestMode.Enabled {
		mode = ModeTest
	}
	return &Game{mode: mode, cfg: cfg, provider: provider, loaded: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_test", func() registry.Game {
		return NewTestMode()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTest {
		return "snake_test"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTest {
		return "Snake (Test Mode)"
	}
	return "Snake"
}

// SetDifficulty sets the preset for this game only. It takes effect when the
// config is next loaded, so it must be called before the first Reset.
func (g *Game) SetDifficulty(preset string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.difficulty = preset
}

// Mode returns the rule set in use.
func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) load() error {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	preset := difficultyPreset
	if g.difficulty != "" {
		preset = g.difficulty
	}
	if p, ok := config.ParsePreset(preset); ok {
		config.ApplySnakePreset(&cfg, p)
	}
	if g.mode == ModeTest {
		cfg.TestMode.Enabled = true
	}

	theme := themePath
	if theme == "" {
		theme = cfg.Theme
	}
	provider, err := assets.LoadTheme(theme)
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}

	g.cfg = cfg
	g.provider = provider
	g.loaded = true
	return nil
}

// Reset starts a new round: it composes the background, places the food and
// head, and seeds a fresh score guard. The host starts its triggers after
// Reset returns.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.loaded {
		if err := g.load(); err != nil {
			return err
		}
	}
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("snake: %w", err)
	}

	img := func(name string) (*sprite.Image, error) {
		i, err := g.provider.Image(name)
		if err != nil {
			return nil, fmt.Errorf("snake: loading %s: %w", name, err)
		}
		return i, nil
	}

	g.background.Reset()
	for _, name := range []string{assets.Background0, assets.Background1} {
		bg, err := img(name)
		if err != nil {
			return err
		}
		g.background.AddLayer(bg)
	}
	food, err := img(assets.Food)
	if err != nil {
		return err
	}
	head, err := img(assets.Head)
	if err != nil {
		return err
	}
	if g.tailImg, err = img(assets.Tail); err != nil {
		return err
	}
	tile := g.cfg.Board.Tile
	for _, e := range []struct {
		name string
		img  *sprite.Image
	}{{assets.Food, food}, {assets.Head, head}, {assets.Tail, g.tailImg}} {
		if e.img == nil || e.img.Width != tile || e.img.Height != tile {
			return fmt.Errorf("snake: %w: %s sprite must be %dx%d to match board.tile", config.ErrInvalid, e.name, tile, tile)
		}
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(uint64(seed)))
	g.scores = rc.Scores

	g.guard = scoreguard.New(scoreguard.RandomBaseline())
	g.ramp = clock.Ramp{
		Initial:   g.cfg.Timing.StepInterval,
		Decrement: g.cfg.Timing.StepDecrement,
		Floor:     g.cfg.Timing.StepFloor,
		Every:     g.cfg.EffectiveRampEvery(),
	}
	g.interval = g.ramp.Initial

	g.velocity = core.Point{X: 1, Y: 0}
	g.moved = g.velocity
	g.segments = 0
	g.steps = 0
	g.phase = core.PhaseRunning
	g.final = nil
	g.reason = ""
	g.recordErr = nil

	if g.layer == nil {
		g.layer = sprite.NewLayer()
	}
	g.layer.Clear()
	start := g.cfg.Start
	g.layer.AddOrReplace(FoodIndex, food, start.FoodX, start.FoodY)
	g.layer.AddOrReplace(HeadIndex, head, start.HeadX, start.HeadY)

	if err := g.placeFood(); err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	return nil
}

// Input applies a player action immediately.
func (g *Game) Input(a core.Action) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.guard == nil {
		return g.result(nil)
	}

	switch g.phase {
	case core.PhaseRunning:
		if dir, ok := a.Direction(); ok {
			g.steer(dir)
			break
		}
		if a == core.ActionPause {
			g.phase = core.PhasePaused
			return g.result(&core.Notice{Kind: core.NoticePaused})
		}
	case core.PhasePaused:
		if a == core.ActionConfirm {
			g.phase = core.PhaseRunning
		}
	}
	return g.result(nil)
}

func (g *Game) steer(dir core.Point) {
	if !g.cfg.Rules.AllowReversal && g.segments > 0 && dir == g.moved.Scale(-1) {
		return
	}
	g.velocity = dir
}

// Step advances the simulation by one tick. It does nothing unless running.
func (g *Game) Step() core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Nothing to advance before the first Reset.
	if g.guard == nil || g.phase != core.PhaseRunning {
		return g.result(nil)
	}

	if err := g.guard.Verify(); err != nil {
		g.phase = core.PhaseTampered
		g.final = &core.Notice{Kind: core.NoticeTampered, Score: g.guard.Peek()}
		return g.result(g.final)
	}

	g.steps++
	g.moved = g.velocity

	prev := g.layer.Position(HeadIndex)
	next := g.advance(prev)

	// Each segment takes its predecessor's pre-step position.
	vacated := prev
	for i := firstSegment; i < firstSegment+g.segments; i++ {
		old := g.layer.Position(i)
		g.layer.SetPosition(i, vacated)
		vacated = old
	}
	g.layer.SetPosition(HeadIndex, next)

	for i := firstSegment; i < firstSegment+g.segments; i++ {
		if g.layer.CheckCollision(HeadIndex, i) {
			return g.result(g.finish(""))
		}
	}

	if g.layer.CheckCollision(FoodIndex, HeadIndex) {
		g.guard.Increment()
		score := g.guard.Peek()
		g.layer.AddOrReplace(firstSegment+g.segments, g.tailImg, vacated.X, vacated.Y)
		g.segments++
		g.interval = g.ramp.Next(g.interval, score)
		if err := g.placeFood(); err != nil {
			return g.result(g.finish("board full"))
		}
	}
	return g.result(nil)
}

// advance returns the head position one tile along the current heading.
func (g *Game) advance(p core.Point) core.Point {
	tile := g.cfg.Board.Tile
	next := p.Add(g.velocity.Scale(tile))
	if g.cfg.Board.Edges == config.EdgesWrap {
		next.X = core.Wrap(next.X/tile, g.cfg.Board.Columns()) * tile
		next.Y = core.Wrap(next.Y/tile, g.cfg.Board.Rows()) * tile
	}
	return next
}

// finish ends the round, recording the score once if it still verifies.
func (g *Game) finish(reason string) *core.Notice {
	g.phase = core.PhaseGameOver
	g.reason = reason

	n := &core.Notice{
		Kind:     core.NoticeGameOver,
		Score:    g.guard.Peek(),
		Verified: g.guard.Verify() == nil,
		Reason:   reason,
	}
	if n.Verified && g.scores != nil {
		if err := g.scores.RecordScore(g.ID(), n.Score); err != nil {
			g.recordErr = err
		} else {
			n.Recorded = true
			if r, ok := g.scores.(ranker); ok {
				if rank, err := r.Rank(g.ID(), n.Score); err == nil {
					n.Rank = rank
				}
			}
		}
	}
	g.final = n
	return n
}

func (g *Game) result(n *core.Notice) core.StepResult {
	return core.StepResult{State: g.state(), Notice: n}
}

// Render draws the composed background stretched over the board, then the
// entities in index order.
func (g *Game) Render(dst sprite.Surface) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if bg := g.background.Surface(); bg != nil {
		dst.Draw(bg, g.board())
	}
	if g.layer != nil {
		g.layer.Render(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() core.GameState {
	st := core.GameState{
		Phase:    g.phase,
		Length:   1 + g.segments,
		Interval: g.interval,
	}
	if g.guard != nil {
		st.Score = g.guard.Peek()
	}
	return st
}

// FinalNotice returns the notice that ended the round, or nil while playing.
func (g *Game) FinalNotice() *core.Notice {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.final
}

// RecordError returns the error from the score recorder, if recording failed.
func (g *Game) RecordError() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.recordErr
}

// StepInterval returns the current step period.
func (g *Game) StepInterval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.interval
}

// RenderInterval returns the render period.
func (g *Game) RenderInterval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg.Timing.RenderInterval
}

// Board returns the drawable surface in units.
func (g *Game) Board() core.Rect {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board()
}

func (g *Game) board() core.Rect {
	return core.NewRect(0, 0, g.cfg.Board.Width, g.cfg.Board.Height)
}
