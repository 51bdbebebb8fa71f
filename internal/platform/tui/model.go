package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-snake/internal/clock"
	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/registry"
	"github.com/vovakirdan/tile-snake/internal/sprite"
	"github.com/vovakirdan/tile-snake/internal/storage"
)

// recordErrorer is implemented by games that can report a failed score write.
type recordErrorer interface {
	RecordError() error
}

// Model is the Bubble Tea model hosting one simulation.
type Model struct {
	game     registry.Game
	clock    *clock.Clock
	screen   *core.Screen
	frame    *sprite.Image
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	state    core.GameState
	notice   *core.Notice
	high     int
	width    int
	height   int
	quitting bool
	// inSession marks a model hosted by a SessionModel: leaving returns to
	// the menu instead of quitting the program.
	inSession bool
	leave     bool
}

// NewModel resets game and prepares a model for it. Scores go to store when
// it is non-nil, tagged with cfg.Scores if that is already set.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Scores == nil && store != nil {
		cfg.Scores = storage.NewRecorder(store)
	}

	m := Model{
		game:   game,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		help:   help.New(),
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reset starts a fresh round and rebuilds the clock and buffers.
func (m *Model) reset() error {
	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := m.game.Reset(cfg); err != nil {
		return fmt.Errorf("reset %s: %w", m.game.ID(), err)
	}

	// The clock is reused across rounds so generations stay monotonic and
	// ticks from the previous round are ignored.
	if m.clock == nil {
		m.clock = clock.New(m.game.RenderInterval(), m.game.StepInterval())
	} else {
		m.clock.Stop()
		m.clock.Render.SetPeriod(m.game.RenderInterval())
		m.clock.Step.SetPeriod(m.game.StepInterval())
	}
	m.frame = newFrame(m.game.Board())
	m.screen = core.NewScreen(m.frame.Cols+2, m.frame.Rows+2)
	m.state = m.game.State()
	m.notice = nil
	m.high = m.loadHighScore()

	m.logger.Info("round started", "game", m.game.ID(), "seed", cfg.Seed, "interval", m.state.Interval)
	return nil
}

func (m *Model) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("high score lookup failed", "game", m.game.ID(), "err", err)
		return 0
	}
	return high
}

// Init starts both triggers.
func (m Model) Init() tea.Cmd {
	return startClock(m.clock)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case renderTickMsg:
		if !m.clock.Render.Fire(msg.gen) {
			return m, nil
		}
		return m, renderTick(m.clock.Render, msg.gen)

	case stepTickMsg:
		return m.handleStep(msg)
	}

	return m, nil
}

// handleStep runs one simulation step for a live tick.
func (m Model) handleStep(msg stepTickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Step.Fire(msg.gen) {
		return m, nil
	}

	m.apply(m.game.Step())
	if !m.clock.Step.Running() {
		return m, nil
	}

	if d := m.game.StepInterval(); d != m.clock.Step.Period() {
		m.logger.Debug("step interval changed", "from", m.clock.Step.Period(), "to", d, "score", m.state.Score)
		m.clock.Step.SetPeriod(d)
	}
	return m, stepTick(m.clock.Step, msg.gen)
}

// apply stores a step result. A notice halts both triggers until the
// player answers it.
func (m *Model) apply(res core.StepResult) {
	m.state = res.State
	if res.Notice == nil {
		return
	}

	m.clock.Stop()
	m.notice = res.Notice

	n := res.Notice
	switch n.Kind {
	case core.NoticeTampered:
		m.logger.Warn("score integrity check failed", "game", m.game.ID(), "score", n.Score)
	case core.NoticeGameOver:
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", n.Score,
			"length", m.state.Length,
			"verified", n.Verified,
			"recorded", n.Recorded,
			"rank", n.Rank,
			"reason", n.Reason,
		)
		if re, ok := m.game.(recordErrorer); ok {
			if err := re.RecordError(); err != nil {
				m.logger.Error("failed to record score", "game", m.game.ID(), "err", err)
			}
		}
		if n.Recorded && n.Score > m.high {
			m.high = n.Score
		}
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.clock.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if m.notice != nil {
		return m.answerNotice(action)
	}

	switch action {
	case core.ActionBack:
		if m.inSession {
			return m.exit()
		}
	case core.ActionNone:
	default:
		m.apply(m.game.Input(action))
	}
	return m, nil
}

// answerNotice handles input while a modal notice is shown.
func (m Model) answerNotice(action core.Action) (tea.Model, tea.Cmd) {
	switch m.notice.Kind {
	case core.NoticePaused:
		if action == core.ActionPause || action == core.ActionConfirm {
			m.state = m.game.Input(core.ActionConfirm).State
			m.notice = nil
			return m, startClock(m.clock)
		}

	case core.NoticeTampered:
		if action == core.ActionPause || action == core.ActionConfirm {
			return m.exit()
		}

	case core.NoticeGameOver:
		switch action {
		case core.ActionYes:
			if err := m.reset(); err != nil {
				m.logger.Error("restart failed", "err", err)
				return m.exit()
			}
			return m, startClock(m.clock)
		case core.ActionNo, core.ActionBack:
			return m.exit()
		}
	}
	return m, nil
}

// exit leaves the game: back to the menu inside a session, otherwise quit.
func (m Model) exit() (tea.Model, tea.Cmd) {
	m.clock.Stop()
	if m.inSession {
		m.leave = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// Done reports whether the player left the game.
func (m Model) Done() bool {
	return m.leave || m.quitting
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Notice returns the notice currently shown, if any.
func (m Model) Notice() *core.Notice {
	return m.notice
}

// draw renders the game and any notice into the screen buffer.
func (m Model) draw() {
	clearFrame(m.frame)
	m.game.Render(m.frame)

	m.screen.Clear()
	m.screen.DrawBox(core.NewRect(0, 0, m.screen.Width(), m.screen.Height()))
	blit(m.screen, m.frame, 1, 1)
	if m.notice != nil {
		drawNotice(m.screen, m.notice)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	hud := strings.Join([]string{
		titleStyle.Render(m.game.Title()),
		hudLine("Score:", m.state.Score),
		hudLine("Length:", m.state.Length),
		hudLine("Step:", m.state.Interval),
		hudLine("Best:", m.high),
	}, dimStyle.Render("  │  "))

	board := RenderScreen(m.screen)
	view := lipgloss.JoinVertical(lipgloss.Left, hud, board, m.help.View(m.keys.Keys()))

	if m.width > 0 && m.height > 0 {
		if lipgloss.Width(view) > m.width || lipgloss.Height(view) > m.height {
			return errStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
				lipgloss.Width(view), lipgloss.Height(view), m.width, m.height))
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
