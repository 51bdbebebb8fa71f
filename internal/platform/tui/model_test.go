package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-snake/internal/assets"
	"github.com/vovakirdan/tile-snake/internal/config"
	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/games/snake"
	"github.com/vovakirdan/tile-snake/internal/sprite"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	game := snake.NewWithConfig(cfg, assets.DefaultTheme())
	m, err := NewModel(game, nil, core.RuntimeConfig{Seed: 7}, nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runes("w"), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runes("s"), core.ActionDown, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runes("d"), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPause, false},
		{"y", runes("y"), core.ActionYes, false},
		{"n", runes("n"), core.ActionNo, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = (%v, %v), expected (%v, %v)", tt.name, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{runes("h"), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runes("q"), MenuActionQuit},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%s) = %v, expected %v", tt.msg, got, tt.action)
		}
	}
}

func TestNewFrame(t *testing.T) {
	f := newFrame(core.NewRect(0, 0, 599, 404))
	if f.Cols != 38 || f.Rows != 13 {
		t.Errorf("newFrame() = %dx%d cells, expected 38x13", f.Cols, f.Rows)
	}
}

func TestBlit(t *testing.T) {
	f := sprite.NewImage("f", 32, 32, 2, 1)
	f.Set(1, 0, core.Cell{Rune: '#', Color: core.ColorGreen})

	s := core.NewScreen(4, 3)
	s.Set(1, 1, 'x')
	blit(s, f, 1, 1)

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("transparent cell = %q, expected blank", got)
	}
	if got := s.GetCell(2, 1); got.Rune != '#' || got.Color != core.ColorGreen {
		t.Errorf("opaque cell = %+v, expected green #", got)
	}
}

func TestNoticeLines(t *testing.T) {
	tests := []struct {
		name    string
		notice  core.Notice
		contain string
		buttons string
	}{
		{"paused", core.Notice{Kind: core.NoticePaused}, "Paused!", "OK"},
		{"tampered", core.Notice{Kind: core.NoticeTampered}, "Hacker!!!!", "OK"},
		{"game over", core.Notice{Kind: core.NoticeGameOver, Score: 5, Verified: true}, "Final Score: 5", "Yes"},
		{"ranked", core.Notice{Kind: core.NoticeGameOver, Score: 9, Verified: true, Rank: 2}, "#2", "Yes"},
		{"board full", core.Notice{Kind: core.NoticeGameOver, Reason: "board full"}, "(board full)", "No"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, buttons := noticeLines(&tt.notice)
			if !strings.Contains(strings.Join(body, "\n"), tt.contain) {
				t.Errorf("noticeLines() body = %q, expected to contain %q", body, tt.contain)
			}
			if !strings.Contains(buttons, tt.buttons) {
				t.Errorf("noticeLines() buttons = %q, expected to contain %q", buttons, tt.buttons)
			}
		})
	}
}

func TestModelStepTick(t *testing.T) {
	m, game := newTestModel(t)
	m.Init()

	gen := m.clock.Step.Generation()
	m = update(t, m, stepTickMsg{gen: gen})

	if got := game.Snapshot().Steps; got != 1 {
		t.Fatalf("Steps = %d, expected 1 after a live tick", got)
	}
	if head := game.Snapshot().Head; head != (core.Point{X: 32, Y: 0}) {
		t.Errorf("Head = %v, expected (32,0)", head)
	}

	m = update(t, m, stepTickMsg{gen: gen - 1})
	if got := game.Snapshot().Steps; got != 1 {
		t.Errorf("Steps = %d after stale tick, expected 1", got)
	}
}

func TestModelPauseResume(t *testing.T) {
	m, game := newTestModel(t)
	m.Init()
	stale := m.clock.Step.Generation()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Notice() == nil || m.Notice().Kind != core.NoticePaused {
		t.Fatalf("Notice() = %v, expected paused notice", m.Notice())
	}
	if m.clock.Running() {
		t.Error("clock running while paused")
	}

	m = update(t, m, stepTickMsg{gen: stale})
	if got := game.Snapshot().Steps; got != 0 {
		t.Errorf("Steps = %d while paused, expected 0", got)
	}

	m.View()
	if !strings.Contains(m.screen.String(), "Paused!") {
		t.Error("paused dialog not drawn")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Notice() != nil {
		t.Errorf("Notice() = %v after confirm, expected nil", m.Notice())
	}
	if !m.clock.Running() {
		t.Error("clock not restarted after confirm")
	}
	if m.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", m.State().Phase)
	}
}

func TestModelSteering(t *testing.T) {
	m, game := newTestModel(t)
	m.Init()

	m = update(t, m, runes("s"))
	update(t, m, stepTickMsg{gen: m.clock.Step.Generation()})

	if head := game.Snapshot().Head; head != (core.Point{X: 0, Y: 32}) {
		t.Errorf("Head = %v, expected (0,32) after steering down", head)
	}
}

func TestModelGameOver(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	first := m.clock.Step.Generation()

	m.apply(core.StepResult{Notice: &core.Notice{Kind: core.NoticeGameOver, Score: 3, Verified: true}})
	if m.clock.Running() {
		t.Fatal("clock running after game over")
	}

	// Keys other than y/n are ignored.
	m = update(t, m, runes("w"))
	if m.Notice() == nil {
		t.Fatal("notice dismissed by unrelated key")
	}

	m = update(t, m, runes("y"))
	if m.Notice() != nil {
		t.Errorf("Notice() = %v after play again, expected nil", m.Notice())
	}
	if !m.clock.Running() || m.clock.Step.Generation() <= first {
		t.Errorf("clock not restarted with a new generation (gen %d, first %d)", m.clock.Step.Generation(), first)
	}
	if m.State().Score != 0 {
		t.Errorf("Score = %d after restart, expected 0", m.State().Score)
	}

	m.apply(core.StepResult{Notice: &core.Notice{Kind: core.NoticeGameOver}})
	next, cmd := m.Update(runes("n"))
	if !next.(Model).Done() || cmd == nil {
		t.Error("declining another round did not quit")
	}
}

func TestModelTamperedLeaves(t *testing.T) {
	m, _ := newTestModel(t)
	m.inSession = true
	m.Init()

	m.apply(core.StepResult{Notice: &core.Notice{Kind: core.NoticeTampered}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Done() {
		t.Error("Done() = false after acknowledging tamper notice")
	}
	if m.quitting {
		t.Error("session model quit instead of returning to menu")
	}
}

func TestMenuModel(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "hard")
	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q, expected hard", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != "fixed" {
		t.Errorf("Difficulty() = %q after right, expected fixed", m.Difficulty())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != "easy" {
		t.Errorf("Difficulty() = %q after wrap, expected easy", m.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := next.(MenuModel).result()
	if res.GameID != "snake" || res.Difficulty != "easy" || res.Quit {
		t.Errorf("result() = %+v, expected snake on easy", res)
	}
}
