package ebiten

import "github.com/hajimehoshi/ebiten/v2"

// keyCodes maps Ebiten keys to the key codes used by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyW:          "KeyW",
	ebiten.KeyA:          "KeyA",
	ebiten.KeyS:          "KeyS",
	ebiten.KeyD:          "KeyD",
	ebiten.KeyQ:          "KeyQ",
	ebiten.KeyDigit1:     "Digit1",
	ebiten.KeyDigit2:     "Digit2",
	ebiten.KeyF8:         "F8",
	ebiten.KeyF12:        "F12",
	ebiten.KeyEscape:     "Escape",
}

// Layout constants
const (
	gridLineWidth = 1
	hudMargin     = 6.0
	baseFontSize  = 14.0
	baseTileSize  = 60.0 // tile size at which baseFontSize is used
	minFontSize   = 10.0
)
