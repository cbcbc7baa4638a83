// Package ebiten provides an Ebiten-based graphical renderer: a window of
// clickable lights driven by the same intents as the terminal.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/renderer"
	"github.com/arturogbruno/lights-out-game/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It implements
// ebiten.Game; Update and Draw run on the same goroutine, so the session is
// only touched from there.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	titleFace  *text.GoTextFace
	bannerFace *text.GoTextFace
	sansFace   *text.GoTextFace
	monoFace   *text.GoTextFace

	game *state.Game

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
	}
}

// Init loads fonts and configures the window.
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(locale.T("TITLE_LIGHTS") + " " + locale.T("TITLE_OUT"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run opens the window and blocks until the player quits or closes it.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// boardLayout fits the board between the header and the footer.
func (e *EbitenRenderer) boardLayout() renderer.BoardLayout {
	areaW := e.windowWidth - 2*sideMargin
	areaH := e.windowHeight - headerHeight - footerHeight
	l := renderer.FitBoardLayout(e.game.Engine.Bounds(), areaW, areaH, cellGap, minCellSize)
	l.OriginX += sideMargin
	l.OriginY += headerHeight
	return l
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
