package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFontSource parses the embedded Go Regular font
func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading HUD font: %w", err)
	}
	return src, nil
}

// getUIFontSize returns the HUD font size, scaled to the tile size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * e.tileSize / baseTileSize
	if size < minFontSize {
		size = minFontSize
	}
	return size
}

// getFontFace returns a cached font face for HUD text
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedFace == nil || e.cachedFontSize != size {
		e.cachedFontSize = size
		e.cachedFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedFace
}
