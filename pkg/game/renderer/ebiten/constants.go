package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoardBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board area
	colorLit             = color.RGBA{255, 214, 90, 255}  // Warm yellow
	colorUnlit           = color.RGBA{55, 55, 75, 255}    // Dim slate
	colorCursor          = color.RGBA{0, 255, 100, 255}   // Bright green
	colorHint            = color.RGBA{100, 220, 255, 255} // Cyan
	colorNeonOrange      = color.RGBA{255, 95, 31, 255}
	colorNeonBlue        = color.RGBA{31, 81, 255, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Window and board geometry, in pixels
const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 720

	headerHeight = 90
	footerHeight = 110
	sideMargin   = 24

	cellGap     = 6
	minCellSize = 12

	cursorStroke = 3
)

// Font sizes
const (
	titleFontSize = 40.0
	uiFontSize    = 16.0
)

// Key repeat, in ticks (60 per second)
const (
	keyRepeatInitialDelay = 30
	keyRepeatInterval     = 6
)
