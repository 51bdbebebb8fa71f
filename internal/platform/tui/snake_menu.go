package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-snake/internal/config"
)

var (
	pickerLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pickerValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	pickerActiveStyle = pickerValueStyle.Background(lipgloss.Color("57"))
)

// difficultyPicker cycles through the snake difficulty presets.
type difficultyPicker struct {
	presets []config.DifficultyPreset
	index   int
}

// newDifficultyPicker starts at current, or at normal if current is unknown.
func newDifficultyPicker(current string) difficultyPicker {
	p := difficultyPicker{presets: config.Presets}
	want, ok := config.ParsePreset(current)
	if !ok {
		want = config.DifficultyNormal
	}
	for i, preset := range p.presets {
		if preset == want {
			p.index = i
		}
	}
	return p
}

func (p *difficultyPicker) next() {
	p.index = (p.index + 1) % len(p.presets)
}

func (p *difficultyPicker) prev() {
	p.index = (p.index + len(p.presets) - 1) % len(p.presets)
}

// Selected returns the preset under the cursor.
func (p difficultyPicker) Selected() config.DifficultyPreset {
	return p.presets[p.index]
}

// describe returns a short note about the preset's pacing.
func (p difficultyPicker) describe() string {
	preset := p.Selected()
	step := config.StepIntervalForPreset(preset)
	if config.IsFixedPreset(preset) {
		return fmt.Sprintf("%v per step, constant", step)
	}
	return fmt.Sprintf("%v per step, speeds up as you eat", step)
}

// View renders the picker. active highlights the value.
func (p difficultyPicker) View(active bool) string {
	value := pickerValueStyle.Render(string(p.Selected()))
	if active {
		value = pickerActiveStyle.Render("< " + string(p.Selected()) + " >")
	}
	return pickerLabelStyle.Render("Difficulty: ") + value
}
