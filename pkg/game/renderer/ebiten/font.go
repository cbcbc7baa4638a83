package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the Go fonts bundled with x/image.
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}

	e.titleFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: titleFontSize}
	e.bannerFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: titleFontSize * 1.5}
	e.sansFace = &text.GoTextFace{Source: e.sansFontSource, Size: uiFontSize}
	e.monoFace = &text.GoTextFace{Source: e.monoFontSource, Size: uiFontSize}
	return nil
}
