// Package assets resolves the logical image names used by the simulation
// into cell rasters loaded from a YAML theme.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile-snake/internal/config"
	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/sprite"
)

// Logical image names requested by the simulation.
const (
	Background0 = "background0"
	Background1 = "background1"
	Food        = "food"
	Head        = "head"
	Tail        = "tail"
)

// RequiredImages lists the names every theme must define.
var RequiredImages = []string{Background0, Background1, Food, Head, Tail}

// ErrUnknownImage is returned for names the provider does not know.
var ErrUnknownImage = errors.New("assets: unknown image")

// Provider resolves a logical image name into an image.
type Provider interface {
	Image(name string) (*sprite.Image, error)
}

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// ImageSpec describes one image in a theme file.
type ImageSpec struct {
	Width   int      `yaml:"width"`   // units, defaults to the tile size
	Height  int      `yaml:"height"`  // units, defaults to the tile size
	Cols    int      `yaml:"cols"`    // cells, derived from pattern when omitted
	Rows    int      `yaml:"rows"`    // cells, derived from pattern when omitted
	Fill    string   `yaml:"fill"`    // rune filling every cell
	Border  string   `yaml:"border"`  // rune drawn around the edge
	Pattern []string `yaml:"pattern"` // explicit rows; spaces are transparent
	Color   string   `yaml:"color"`
}

// ThemeFile is the on-disk theme format.
type ThemeFile struct {
	Tile   int                  `yaml:"tile"`
	Images map[string]ImageSpec `yaml:"images"`
}

// DefaultYAML returns the embedded default theme file.
func DefaultYAML() []byte {
	return defaultThemeYAML
}

// Theme is a Provider backed by a parsed theme file.
type Theme struct {
	images map[string]*sprite.Image
}

// LoadTheme loads a theme.
// Search order: customPath -> ~/.arcade/configs/theme.yaml -> ./configs/theme.yaml -> embedded default.
func LoadTheme(customPath string) (*Theme, error) {
	data, source, err := config.Lookup(customPath, "theme.yaml")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return ParseTheme(defaultThemeYAML)
	}
	th, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", source, err)
	}
	return th, nil
}

// DefaultTheme returns the embedded theme.
func DefaultTheme() *Theme {
	th, err := ParseTheme(defaultThemeYAML)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded theme is broken: %v", err))
	}
	return th
}

// ParseTheme builds a theme from YAML.
func ParseTheme(data []byte) (*Theme, error) {
	var f ThemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: failed to parse theme: %w", err)
	}
	if f.Tile <= 0 {
		f.Tile = 32
	}

	th := &Theme{images: make(map[string]*sprite.Image, len(f.Images))}
	for name, spec := range f.Images {
		img, err := spec.build(name, f.Tile)
		if err != nil {
			return nil, err
		}
		th.images[name] = img
	}
	for _, name := range RequiredImages {
		if _, ok := th.images[name]; !ok {
			return nil, fmt.Errorf("assets: theme is missing %q: %w", name, ErrUnknownImage)
		}
	}
	return th, nil
}

// Image implements Provider.
func (t *Theme) Image(name string) (*sprite.Image, error) {
	img, ok := t.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImage, name)
	}
	return img, nil
}

// Names returns the defined image names, sorted.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.images))
	for n := range t.images {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (s ImageSpec) build(name string, tile int) (*sprite.Image, error) {
	color, ok := core.ParseColor(s.Color)
	if !ok {
		return nil, fmt.Errorf("assets: %s: unknown color %q", name, s.Color)
	}

	cols, rows := s.Cols, s.Rows
	if len(s.Pattern) > 0 {
		if rows == 0 {
			rows = len(s.Pattern)
		}
		if cols == 0 {
			for _, line := range s.Pattern {
				cols = max(cols, utf8.RuneCountInString(line))
			}
		}
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("assets: %s: image has no cells", name)
	}

	w, h := s.Width, s.Height
	if w == 0 {
		w = tile
	}
	if h == 0 {
		h = tile
	}

	img := sprite.NewImage(name, w, h, cols, rows)
	if r := firstRune(s.Fill); r != 0 {
		for i := range img.Cells {
			img.Cells[i] = core.Cell{Rune: r, Color: color}
		}
	}
	if r := firstRune(s.Border); r != 0 {
		for x := 0; x < cols; x++ {
			img.Set(x, 0, core.Cell{Rune: r, Color: color})
			img.Set(x, rows-1, core.Cell{Rune: r, Color: color})
		}
		for y := 0; y < rows; y++ {
			img.Set(0, y, core.Cell{Rune: r, Color: color})
			img.Set(cols-1, y, core.Cell{Rune: r, Color: color})
		}
	}
	for y, line := range s.Pattern {
		x := 0
		for _, r := range line {
			if r != ' ' {
				img.Set(x, y, core.Cell{Rune: r, Color: color})
			}
			x++
		}
	}
	return img, nil
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
