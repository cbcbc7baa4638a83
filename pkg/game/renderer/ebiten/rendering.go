package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/arturogbruno/lights-out-game/pkg/engine/world"
	"github.com/arturogbruno/lights-out-game/pkg/game/lightsout"
	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
	"github.com/arturogbruno/lights-out-game/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.game == nil || e.sansFace == nil {
		// Can't draw without a session or fonts
		return
	}

	snap := e.game.Engine.Snapshot()
	layout := e.boardLayout()

	drawPair(screen, locale.T("TITLE_LIGHTS"), locale.T("TITLE_OUT"), 24, e.titleFace)

	e.drawBoard(screen, snap, layout)
	e.drawFooter(screen, snap)

	if snap.Won() && snap.Moves() > 0 {
		e.drawWinBanner(screen, layout)
	}
}

// drawBoard draws every light, the cursor outline and the hint marker.
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap lightsout.Snapshot, layout renderer.BoardLayout) {
	w, h := layout.Size()
	const pad = cellGap
	vector.DrawFilledRect(screen, float32(layout.OriginX-pad), float32(layout.OriginY-pad),
		float32(w+2*pad), float32(h+2*pad), colorBoardBackground, false)

	size := float32(layout.CellWidth)
	snap.Bounds().ForEach(func(p world.Position) {
		x, y := layout.CellOrigin(p)
		fx, fy := float32(x), float32(y)

		fill := colorUnlit
		if snap.Lit(p.Row, p.Col) {
			fill = colorLit
		}
		vector.DrawFilledRect(screen, fx, fy, size, size, fill, false)

		if hint := e.game.Hint; hint != nil && *hint == p {
			dot := size / 4
			vector.DrawFilledRect(screen, fx+(size-dot)/2, fy+(size-dot)/2, dot, dot, colorHint, false)
		}
		if p == e.game.Cursor {
			vector.StrokeRect(screen, fx, fy, size, size, cursorStroke, colorCursor, false)
		}
	})
}

// drawFooter draws the counters, the controls and the latest message.
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, snap lightsout.Snapshot) {
	x := float64(sideMargin)
	y := float64(e.windowHeight - footerHeight + cellGap*2)
	lineHeight := uiFontSize * 1.6

	status := locale.T("STATUS_MOVES", snap.Moves()) + "   " + locale.T("STATUS_LIT", snap.LitCount())
	drawColoredText(screen, status, x, y, colorSubtle, e.monoFace)
	y += lineHeight

	drawMarkup(screen, locale.T("CONTROLS_GUI"), x, y, e.sansFace)
	y += lineHeight

	if n := len(e.game.Messages); n > 0 {
		drawMarkup(screen, e.game.Messages[n-1], x, y, e.sansFace)
	}
}

// drawWinBanner draws "YOU WIN!" on a panel across the middle of the board.
func (e *EbitenRenderer) drawWinBanner(screen *ebiten.Image, layout renderer.BoardLayout) {
	you, win := locale.T("WIN_YOU"), locale.T("WIN_WIN")
	_, th := text.Measure(you+" "+win, e.bannerFace, 0)

	_, h := layout.Size()
	centreY := float64(layout.OriginY) + float64(h)/2
	panelY := centreY - th/2 - cellGap*2
	vector.DrawFilledRect(screen, 0, float32(panelY), float32(e.windowWidth), float32(th+cellGap*4), colorPanelBackground, false)

	drawPair(screen, you, win, centreY-th/2, e.bannerFace)
}
