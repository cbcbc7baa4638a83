// Package tui draws a Lights Out session on an ANSI terminal and reads key
// presses from it.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/arturogbruno/lights-out-game/pkg/engine/input"
	"github.com/arturogbruno/lights-out-game/pkg/engine/terminal"
	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/gameplay"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/renderer"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// Icon constants for the board
const (
	IconLit   = "●"
	IconUnlit = "○"
)

// cellWidth is the number of columns one board cell occupies: a marker on
// each side of the icon.
const cellWidth = 3

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	readKey func() (string, error)
	tty     bool

	colorNeonOrange  color.RGBColor
	colorNeonBlue    color.RGBColor
	colorLit         color.Style
	colorUnlit       color.Style
	colorCursor      color.Style
	colorHint        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorDenied      color.Style
}

// New creates a TUI renderer on the process terminal
func New() *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		readKey: input.ReadTerminalKey,
		tty:     true,
	}
}

// NewWithIO creates a TUI renderer that writes frames to out and reads key
// presses from in. in does not need to be a terminal.
func NewWithIO(out io.Writer, in io.Reader) *TUIRenderer {
	return &TUIRenderer{
		out: out,
		readKey: func() (string, error) {
			return input.ReadKey(in)
		},
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	if t.tty && !terminal.IsTerminal() {
		return errors.New("the tui renderer needs an interactive terminal")
	}

	t.colorNeonOrange = color.RGB(255, 95, 31)
	t.colorNeonBlue = color.RGB(31, 81, 255)
	t.colorLit = color.Style{color.FgYellow, color.OpBold}
	t.colorUnlit = color.Style{color.FgGray}
	t.colorCursor = color.Style{color.FgGreen, color.OpBold}
	t.colorHint = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	return nil
}

// Run redraws the session after every key press until the player quits or
// input runs out.
func (t *TUIRenderer) Run(g *state.Game) error {
	for {
		t.Clear()
		t.RenderFrame(g)
		if g.QuitRequested {
			return nil
		}

		code, err := t.readKey()
		if errors.Is(err, io.EOF) {
			g.Logger.Info("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		intent := input.IntentFor(input.DeviceTerminal, code)
		if err := gameplay.ProcessIntent(g, intent); err != nil {
			return err
		}
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleAction:
		if text == "" {
			return text
		}
		return t.colorActionShort.Sprint(text[0:1]) + t.colorAction.Sprint(text[1:])
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	var b strings.Builder
	for _, seg := range renderer.ParseMarkup(msg) {
		b.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return b.String()
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	width := terminal.GetWidth()
	snap := g.Engine.Snapshot()

	fmt.Fprintln(t.out)
	t.printPair(width, locale.T("TITLE_LIGHTS"), locale.T("TITLE_OUT"))
	fmt.Fprintln(t.out)

	t.printBoard(g, width)
	fmt.Fprintln(t.out)

	if snap.Won() && snap.Moves() > 0 {
		t.printPair(width, locale.T("WIN_YOU"), locale.T("WIN_WIN"))
		fmt.Fprintln(t.out)
	}

	t.printStatusBar(g)
	t.printPossibleActions()
	t.printMessagesPane(g, width)
}

// printPair prints two words centred on the line, the first in neon orange
// and the second in neon blue.
func (t *TUIRenderer) printPair(width int, first, second string) {
	pad := terminal.CenterPadding(width, len([]rune(first))+1+len([]rune(second)))
	fmt.Fprintf(t.out, "%s%s %s\n", pad, t.colorNeonOrange.Sprint(first), t.colorNeonBlue.Sprint(second))
}

// printBoard draws one line per row, centred on the terminal width.
func (t *TUIRenderer) printBoard(g *state.Game, width int) {
	snap := g.Engine.Snapshot()
	layout := renderer.NewBoardLayout(snap.Bounds(), width, 0, cellWidth, 1, 0)
	pad := strings.Repeat(" ", layout.OriginX)

	for row := 0; row < snap.Rows(); row++ {
		var b strings.Builder
		b.WriteString(pad)
		for col := 0; col < snap.Cols(); col++ {
			b.WriteString(t.renderCell(g, world.Pos(row, col), snap.Lit(row, col)))
		}
		fmt.Fprintln(t.out, b.String())
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(g *state.Game, p world.Position, lit bool) string {
	icon := t.colorUnlit.Sprint(IconUnlit)
	if lit {
		icon = t.colorLit.Sprint(IconLit)
	}

	switch {
	case p == g.Cursor:
		return t.colorCursor.Sprint("[") + icon + t.colorCursor.Sprint("]")
	case g.Hint != nil && *g.Hint == p:
		return t.colorHint.Sprint("<") + icon + t.colorHint.Sprint(">")
	default:
		return " " + icon + " "
	}
}

// printStatusBar renders the move and lit counters
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	snap := g.Engine.Snapshot()
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(locale.T("STATUS_MOVES", snap.Moves())+"  "+locale.T("STATUS_LIT", snap.LitCount())))
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out, "- "+t.FormatText(locale.T("CONTROLS")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game, width int) {
	label := " " + locale.T("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+locale.T("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
