// Package tui draws the game in a terminal with 24-bit colour blocks.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"

	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/terminal"
	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/renderer"
	"glueboy/pkg/game/state"
)

// Terminal cells per grid cell
const (
	cellWidth  = 2
	cellHeight = 1
)

// Grid origin on screen, 0-based terminal cells
const (
	originRow = 1
	originCol = 2
)

// Terminals report a held key as repeated presses and never report the
// release. A key stays held until no repeat has arrived for keyHoldTimeout.
const keyHoldTimeout = 100 * time.Millisecond

// escapeTimeout is how long a trailing ESC waits for the rest of a sequence
// before it counts as the Escape key.
const escapeTimeout = 50 * time.Millisecond

// hudRows is the number of fixed HUD lines under the grid
const hudRows = 3

// Icons
const (
	IconCharacter = "██"
	IconEmpty     = "  "
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	in       io.Reader
	gridSize int
	tileSize float64
	interval time.Duration

	raw     *terminal.RawMode
	flashes *renderer.FlashTracker

	game renderer.Game

	held   map[string]*keyHold
	heldMu sync.Mutex
}

// keyHold tracks one key the terminal has reported as down
type keyHold struct {
	lastSeen time.Time
	// framed is set once a frame has run with the key down
	framed bool
}

// New creates a new TUI renderer for a gridSize board. tileSize is the pixel
// size the aggregator expects pointer coordinates in.
func New(gridSize int, tileSize float64, interval time.Duration) *TUIRenderer {
	return &TUIRenderer{
		out:      os.Stdout,
		in:       os.Stdin,
		gridSize: gridSize,
		tileSize: tileSize,
		held:     make(map[string]*keyHold),
		interval: interval,
		flashes:  renderer.NewFlashTracker(renderer.DefaultFlashDuration),
	}
}

// Init switches the terminal to raw mode with mouse reporting
func (t *TUIRenderer) Init() error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("the tui renderer needs an interactive terminal")
	}
	width, height, err := terminal.GetSize()
	if err != nil {
		return err
	}
	if err := checkSize(t.gridSize, width, height); err != nil {
		return err
	}
	raw, err := terminal.EnableRaw()
	if err != nil {
		return err
	}
	t.raw = raw
	fmt.Fprint(t.out, terminal.HideCursor+terminal.EnableMouse+terminal.ClearScreen)
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	fmt.Fprint(t.out, terminal.DisableMouse+terminal.ShowCursor+"\r\n")
	if t.raw == nil {
		return nil
	}
	return t.raw.Restore()
}

// RenderFrame draws a snapshot
func (t *TUIRenderer) RenderFrame(snap state.Snapshot) {
	t.flashes.Observe(snap)
	fmt.Fprint(t.out, t.frameString(snap))
}

// Run ticks the game at the configured interval until ctx is cancelled, the
// player quits or stdin closes.
func (t *TUIRenderer) Run(ctx context.Context, g renderer.Game) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.game = g
	go t.readInput(ctx, cancel)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	start := time.Now()
	last := 0.0
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			ts := now.Sub(start).Seconds()
			t.releaseExpired(now)

			snap, running := g.Tick(ts)
			t.markFramed()
			t.flashes.Update(float32(ts - last))
			last = ts
			t.RenderFrame(snap)

			if !running {
				return nil
			}
		}
	}
}

// readChunks copies each read from r onto chunks and closes it when a read
// fails.
func readChunks(r io.Reader, chunks chan<- []byte) {
	defer close(chunks)
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		chunks <- chunk
	}
}

// readInput decodes stdin and queues events until a read fails or ctx ends.
// A read ending in ESC is held back until the next read or escapeTimeout.
func (t *TUIRenderer) readInput(ctx context.Context, cancel context.CancelFunc) {
	chunks := make(chan []byte)
	go readChunks(t.in, chunks)

	var pending []byte
	var escTimer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-escTimer:
			escTimer = nil
			pending = nil
			t.handleToken(terminal.EscapeToken(), time.Now())
		case chunk, ok := <-chunks:
			if !ok {
				cancel()
				return
			}
			var tokens []terminal.Token
			tokens, pending = terminal.Decode(append(pending, chunk...))
			now := time.Now()
			for _, tok := range tokens {
				if tok.Kind == terminal.TokenKey && tok.Code == terminal.CtrlC {
					cancel()
					return
				}
				t.handleToken(tok, now)
			}
			escTimer = nil
			if terminal.IsLoneEscape(pending) {
				escTimer = time.After(escapeTimeout)
			}
		}
	}
}

// handleToken turns a decoded token read at the given time into queued
// events. A key already held only has its hold extended.
func (t *TUIRenderer) handleToken(tok terminal.Token, at time.Time) {
	switch tok.Kind {
	case terminal.TokenKey:
		t.heldMu.Lock()
		defer t.heldMu.Unlock()
		if h, ok := t.held[tok.Code]; ok {
			h.lastSeen = at
			return
		}
		t.game.Push(input.NewKeyEvent(tok.Code, input.KeyDown))
		t.held[tok.Code] = &keyHold{lastSeen: at}

	case terminal.TokenMouse:
		x, y := t.pointerPosition(tok.Mouse)
		t.game.Push(input.NewPointerEvent(input.PointerMove, input.ButtonPrimary, x, y))
		if tok.Mouse.Release {
			t.game.Push(input.NewPointerEvent(input.PointerClick, mouseButton(tok.Mouse.Button), x, y))
		}
	}
}

// releaseExpired queues a key up for every held key that a frame has seen and
// that has not repeated within keyHoldTimeout of now.
func (t *TUIRenderer) releaseExpired(now time.Time) {
	t.heldMu.Lock()
	defer t.heldMu.Unlock()
	for code, h := range t.held {
		if h.framed && now.Sub(h.lastSeen) > keyHoldTimeout {
			t.game.Push(input.NewKeyEvent(code, input.KeyUp))
			delete(t.held, code)
		}
	}
}

// markFramed records that a frame has run with the current keys down
func (t *TUIRenderer) markFramed() {
	t.heldMu.Lock()
	defer t.heldMu.Unlock()
	for _, h := range t.held {
		h.framed = true
	}
}

// checkSize reports an error when a width x height terminal cannot show a
// gridSize grid and the fixed HUD lines.
func checkSize(gridSize, width, height int) error {
	needWidth := originCol + gridSize*cellWidth
	needHeight := originRow + gridSize*cellHeight + 1 + hudRows
	if width < needWidth || height < needHeight {
		return fmt.Errorf("terminal is %dx%d, a %d cell grid needs at least %dx%d", width, height, gridSize, needWidth, needHeight)
	}
	return nil
}

// pointerPosition converts a 1-based terminal cell to surface pixels at the
// centre of the grid cell under it
func (t *TUIRenderer) pointerPosition(m terminal.MouseReport) (float64, float64) {
	col := float64((m.X-1-originCol)/cellWidth) + 0.5
	row := float64((m.Y-1-originRow)/cellHeight) + 0.5
	if m.X-1 < originCol {
		col = -0.5
	}
	if m.Y-1 < originRow {
		row = -0.5
	}
	return col * t.tileSize, row * t.tileSize
}

func mouseButton(b int) input.MouseButton {
	switch b {
	case terminal.MouseRight:
		return input.ButtonSecondary
	case terminal.MouseMiddle:
		return input.ButtonMiddle
	default:
		return input.ButtonPrimary
	}
}

// frameString renders the whole screen for a snapshot
func (t *TUIRenderer) frameString(snap state.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(terminal.CursorHome)
	sb.WriteString("\r\n")

	visual := world.Coord{Row: int(snap.Visual.Row + 0.5), Col: int(snap.Visual.Col + 0.5)}
	for row := range snap.Cells {
		sb.WriteString(strings.Repeat(" ", originCol))
		for col := range snap.Cells[row] {
			c := world.Coord{Row: row, Col: col}
			sb.WriteString(t.renderCell(snap, c, c == visual))
		}
		sb.WriteString("\r\n")
	}

	sb.WriteString("\r\n")
	for _, line := range hudLines(snap) {
		sb.WriteString(strings.Repeat(" ", originCol))
		sb.WriteString(line)
		sb.WriteString("\x1b[K\r\n")
	}
	return sb.String()
}

// renderCell returns the coloured text for one grid cell
func (t *TUIRenderer) renderCell(snap state.Snapshot, c world.Coord, hasCharacter bool) string {
	bg := blend(renderer.TileColor(snap, c), t.flashes.Alpha(c))
	bgColor := color.RGB(bg.R, bg.G, bg.B, true)
	if hasCharacter {
		fg := renderer.ColorVisual
		return color.NewRGBStyle(color.RGB(fg.R, fg.G, fg.B), bgColor).Sprint(IconCharacter)
	}
	return bgColor.Sprint(IconEmpty)
}

// hudLines returns the status text shown under the grid
func hudLines(snap state.Snapshot) []string {
	lines := []string{
		i18n.Get("HUD_TOOL", i18n.BlockName(snap.Tool)),
		i18n.Get("HUD_POSITION", snap.Logical),
		i18n.Get("HUD_HELP"),
	}
	return append(lines, snap.Messages...)
}
