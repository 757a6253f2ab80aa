// Command dtee is a terminal editor for DMN-style decision tables rendered
// as a box-drawing grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/dtee/config"
	"github.com/lixenwraith/dtee/controller"
	"github.com/lixenwraith/dtee/plane"
	"github.com/lixenwraith/dtee/sizestate"
	"github.com/lixenwraith/dtee/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", config.DefaultPath(), "path to config.toml")
	themeName := flag.String("theme", "", "overrides the config file's theme with a built-in preset (dark, light, solarized)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dtee <file>")
		return 1
	}
	filePath := flag.Arg(0)

	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dtee: %v\n", err)
		return 1
	}

	logFile := openLogFile(*configPath)
	if logFile != nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Raw mode isn't active yet, but a config parse warning should
		// reach the same place operational logs do, not scroll off in
		// a terminal the editor is about to take over.
		log.Printf("config: %v (using defaults)", err)
	}
	themeCfg := cfg.Theme
	if *themeName != "" {
		preset, ok := config.Preset(*themeName)
		if !ok {
			fmt.Fprintf(os.Stderr, "dtee: unknown theme %q\n", *themeName)
			return 1
		}
		themeCfg = preset
	}
	theme, err := loadTheme(themeCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dtee: %v\n", err)
		return 1
	}

	log.Printf("starting dtee on %s", filePath)

	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "dtee: terminal init failed: %v\n", err)
		return 1
	}
	defer term.Fini()

	w, h := term.Size()
	ctrl := controller.NewWithMargins(string(data), w, h, cfg.Margins())
	sizes := sizestate.New(w, h, cfg.Terminal.MinWidth, cfg.Terminal.MinHeight)

	ed := &editor{
		term:  term,
		ctrl:  ctrl,
		sizes: sizes,
		theme: theme,
		w:     w,
		h:     h,
		cells: make([]terminal.Cell, w*h),
	}
	ed.render()

	for {
		ev := term.PollEvent()
		switch ev.Type {
		case terminal.EventKey:
			if !ed.handleKey(ev) {
				return 0
			}
		case terminal.EventResize:
			ed.handleResize(ev.Width, ev.Height)
		case terminal.EventError, terminal.EventClosed:
			return 0
		}
		ed.render()
	}
}

// theme resolves the config's hex palette into renderer-ready RGB values.
type theme struct {
	frameFg, contentFg, background terminal.RGB
	caretFg, blockBg, underScoreFg terminal.RGB
}

func loadTheme(t config.Theme) (theme, error) {
	var th theme
	var err error
	for _, pair := range []struct {
		hex string
		dst *terminal.RGB
	}{
		{t.FrameFg, &th.frameFg},
		{t.ContentFg, &th.contentFg},
		{t.Background, &th.background},
		{t.CaretFg, &th.caretFg},
		{t.BlockBg, &th.blockBg},
		{t.UnderScoreFg, &th.underScoreFg},
	} {
		*pair.dst, err = terminal.ParseRGB(pair.hex)
		if err != nil {
			return theme{}, err
		}
	}
	return th, nil
}

// openLogFile opens dtee.log next to the config file, falling back to the
// system temp directory if that location isn't writable. Raw mode must
// never share stdout/stderr with logging, so a missing log file is not
// fatal: on a nil return the caller discards log output instead.
func openLogFile(configPath string) *os.File {
	dir := filepath.Dir(configPath)
	if dir == "" || dir == "." {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "dtee.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		return f
	}
	path = filepath.Join(os.TempDir(), "dtee.log")
	f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}

// editor holds the host-side state connecting the controller to the
// terminal: current size, cell buffer, and resolved color theme.
type editor struct {
	term  terminal.Terminal
	ctrl  *controller.Controller
	sizes *sizestate.State
	theme theme

	w, h  int
	cells []terminal.Cell
}

// handleKey dispatches one key event to the controller. Returns false when
// the editor should exit.
func (e *editor) handleKey(ev terminal.Event) bool {
	if e.sizes.TooSmall() {
		// Only resize-relevant input matters while the terminal is too
		// small to show a usable table.
		if ev.Key == terminal.KeyCtrlQ {
			return false
		}
		return true
	}

	switch ev.Key {
	case terminal.KeyCtrlQ:
		return false
	case terminal.KeyLeft:
		e.ctrl.CursorMoveLeft()
	case terminal.KeyRight:
		e.ctrl.CursorMoveRight()
	case terminal.KeyUp:
		e.ctrl.CursorMoveUp()
	case terminal.KeyDown:
		e.ctrl.CursorMoveDown()
	case terminal.KeyHome:
		if ev.Modifiers&terminal.ModShift != 0 {
			e.ctrl.CursorMoveRowStart()
		} else {
			e.ctrl.CursorMoveCellStart()
		}
	case terminal.KeyEnd:
		if ev.Modifiers&terminal.ModShift != 0 {
			e.ctrl.CursorMoveRowEnd()
		} else {
			e.ctrl.CursorMoveCellEnd()
		}
	case terminal.KeyTab:
		e.ctrl.CursorMoveCellNext()
	case terminal.KeyBacktab, terminal.KeyShiftTab:
		e.ctrl.CursorMoveCellPrev()
	case terminal.KeyPageUp:
		e.ctrl.ScrollRows(-e.h)
	case terminal.KeyPageDown:
		e.ctrl.ScrollRows(e.h)
	case terminal.KeyInsert:
		e.ctrl.CursorToggleCaretBlock()
	case terminal.KeyF1:
		// Reserved for a future help overlay.
	case terminal.KeyDelete:
		e.ctrl.DeleteCharUnderCursor()
	case terminal.KeyBackspace:
		e.ctrl.DeleteCharBeforeCursor()
	case terminal.KeyEnter:
		e.ctrl.SplitLine()
	case terminal.KeyRune:
		e.ctrl.PutChar(ev.Rune)
	}
	return true
}

func (e *editor) handleResize(w, h int) {
	e.w, e.h = w, h
	e.cells = make([]terminal.Cell, w*h)
	e.sizes.Resize(w, h)
	e.ctrl.Resize(w, h)
}

// render repaints the full cell buffer and flushes it to the terminal.
// dtee always does a full repaint rather than tracking the Updates flags
// granularly: the decision-table view is small enough that diffing at the
// Controller level would save little over the terminal package's own
// Cell-diffing Flush.
func (e *editor) render() {
	if e.sizes.TooSmall() {
		e.renderTooSmall()
		return
	}

	cursor := e.ctrl.Cursor()
	col, rowPos := cursor.Pos()
	vp := e.ctrl.Viewport()
	cx, cy := col-vp.Left(), rowPos-vp.Top()

	fill := plane.NewGlyph(' ')
	e.ctrl.VisitVisibleContent(func(vcol, vrow int, g plane.Glyph) {
		idx := vrow*e.w + vcol
		if idx < 0 || idx >= len(e.cells) {
			return
		}
		e.cells[idx] = e.cellFor(g, vcol == cx && vrow == cy)
	}, &fill, 0, 0)

	e.term.Flush(e.cells, e.w, e.h)
	if cx >= 0 && cx < e.w && cy >= 0 && cy < e.h {
		e.term.SetCursorVisible(true)
		e.term.MoveCursor(cx, cy)
	} else {
		e.term.SetCursorVisible(false)
	}
}

func (e *editor) cellFor(g plane.Glyph, atCursor bool) terminal.Cell {
	fg := e.theme.contentFg
	if g.IsFrame() || g.IsCrossing() {
		fg = e.theme.frameFg
	}
	bg := e.theme.background

	if atCursor {
		switch e.ctrl.Cursor().Shape() {
		case plane.Caret:
			fg = e.theme.caretFg
		case plane.Block:
			bg = e.theme.blockBg
		case plane.UnderScore:
			fg = e.theme.underScoreFg
		}
	}

	ch := g.Ch
	if ch == 0 {
		ch = ' '
	}
	return terminal.Cell{Rune: ch, Fg: fg, Bg: bg}
}

func (e *editor) renderTooSmall() {
	const msg = "terminal too small"
	for i := range e.cells {
		e.cells[i] = terminal.Cell{Rune: ' ', Fg: e.theme.frameFg, Bg: e.theme.background}
	}
	startCol := (e.w - len(msg)) / 2
	row := e.h / 2
	if startCol >= 0 && row >= 0 && row < e.h {
		for i, r := range msg {
			col := startCol + i
			if col < 0 || col >= e.w {
				continue
			}
			e.cells[row*e.w+col] = terminal.Cell{Rune: r, Fg: e.theme.contentFg, Bg: e.theme.background}
		}
	}
	e.term.Flush(e.cells, e.w, e.h)
	e.term.SetCursorVisible(false)
}
