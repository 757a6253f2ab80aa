// Package config loads dtee's TOML settings file: viewport margins, the
// small-terminal guard's minimum dimensions, and the color theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/dtee/controller"
	"github.com/lixenwraith/dtee/sizestate"
	"github.com/lixenwraith/dtee/toml"
)

// Viewport holds the margin policy handed to the controller.
type Viewport struct {
	MarginLeft   int `toml:"margin_left"`
	MarginTop    int `toml:"margin_top"`
	MarginRight  int `toml:"margin_right"`
	MarginBottom int `toml:"margin_bottom"`
}

// Terminal holds the small-terminal guard's thresholds.
type Terminal struct {
	MinWidth  int `toml:"min_width"`
	MinHeight int `toml:"min_height"`
}

// Theme holds the hex colors the host's repaint uses to render frame,
// content, cursor, and background.
type Theme struct {
	FrameFg      string `toml:"frame_fg"`
	ContentFg    string `toml:"content_fg"`
	Background   string `toml:"background"`
	CaretFg      string `toml:"caret_fg"`
	BlockBg      string `toml:"block_bg"`
	UnderScoreFg string `toml:"under_score_fg"`
}

// Config is the parsed settings file. Any section or field absent from the
// file keeps its built-in default; the core's own defaults are never
// silently overridden by a partially-specified file.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Terminal Terminal `toml:"terminal"`
	Theme    Theme    `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: Viewport{MarginLeft: 1, MarginTop: 1, MarginRight: 2, MarginBottom: 2},
		Terminal: Terminal{MinWidth: sizestate.DefaultMinWidth, MinHeight: sizestate.DefaultMinHeight},
		Theme: Theme{
			FrameFg:      "#808080",
			ContentFg:    "#d0d0d0",
			Background:   "#000000",
			CaretFg:      "#ffffff",
			BlockBg:      "#5f5faf",
			UnderScoreFg: "#ffd700",
		},
	}
}

// Load reads and parses path, merging onto Default() so a file that only
// sets part of a section does not zero out the rest. A missing path
// returns Default() with no error; a malformed file returns Default()
// along with the parse error, for the host to log as a warning.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	parsed := Default()
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return parsed, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/dtee/config.toml, falling back to
// $HOME/.config/dtee/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dtee", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dtee", "config.toml")
}

// presets holds the built-in named themes selectable via -theme, independent
// of whatever [theme] section a config file sets.
var presets = map[string]Theme{
	"dark": Default().Theme,
	"light": {
		FrameFg:      "#707070",
		ContentFg:    "#202020",
		Background:   "#f0f0f0",
		CaretFg:      "#000000",
		BlockBg:      "#add8e6",
		UnderScoreFg: "#8b4513",
	},
	"solarized": {
		FrameFg:      "#586e75",
		ContentFg:    "#839496",
		Background:   "#002b36",
		CaretFg:      "#fdf6e3",
		BlockBg:      "#073642",
		UnderScoreFg: "#b58900",
	},
}

// Preset looks up a built-in theme by name.
func Preset(name string) (Theme, bool) {
	t, ok := presets[name]
	return t, ok
}

// Margins converts the viewport section into a controller.Margins value.
func (c Config) Margins() controller.Margins {
	return controller.Margins{
		Left:   c.Viewport.MarginLeft,
		Top:    c.Viewport.MarginTop,
		Right:  c.Viewport.MarginRight,
		Bottom: c.Viewport.MarginBottom,
	}
}
