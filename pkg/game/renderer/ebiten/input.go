package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"glueboy/pkg/engine/input"
	"glueboy/pkg/game/i18n"
)

// mouseButtons maps Ebiten buttons to pointer buttons
var mouseButtons = map[ebiten.MouseButton]input.MouseButton{
	ebiten.MouseButtonLeft:   input.ButtonPrimary,
	ebiten.MouseButtonRight:  input.ButtonSecondary,
	ebiten.MouseButtonMiddle: input.ButtonMiddle,
}

// Update queues this tick's input, runs one game frame and keeps the
// snapshot for Draw (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Print(i18n.Get("WINDOW_OPENED", w, h))
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	e.pollKeys()
	e.pollPointer()

	now := time.Since(e.start).Seconds()
	snap, running := e.game.Tick(now)
	e.RenderFrame(snap)

	e.flashes.Update(float32(now - e.lastFrame))
	e.lastFrame = now

	if !running {
		return ebiten.Termination
	}
	return nil
}

// pollKeys queues key edges. Ebiten reports each press once, so OS key
// repeat never reaches the queue.
func (e *EbitenRenderer) pollKeys() {
	e.keyBuf = inpututil.AppendJustPressedKeys(e.keyBuf[:0])
	for _, k := range e.keyBuf {
		if code, ok := keyCodes[k]; ok {
			e.game.Push(input.NewKeyEvent(code, input.KeyDown))
		}
	}

	e.keyBuf = inpututil.AppendJustReleasedKeys(e.keyBuf[:0])
	for _, k := range e.keyBuf {
		if code, ok := keyCodes[k]; ok {
			e.game.Push(input.NewKeyEvent(code, input.KeyUp))
		}
	}
}

// pollPointer queues cursor motion and completed clicks
func (e *EbitenRenderer) pollPointer() {
	x, y := ebiten.CursorPosition()
	if !e.cursorKnown || x != e.cursorX || y != e.cursorY {
		e.cursorX, e.cursorY, e.cursorKnown = x, y, true
		e.game.Push(input.NewPointerEvent(input.PointerMove, input.ButtonPrimary, float64(x), float64(y)))
	}

	for eb, button := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(eb) {
			e.game.Push(input.NewPointerEvent(input.PointerClick, button, float64(x), float64(y)))
		}
	}
}
