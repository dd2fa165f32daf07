package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/menu"
	"glueboy/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a block type
func cellSymbol(b world.BlockType) rune {
	switch b {
	case world.Empty:
		return '.'
	case world.Box:
		return '#'
	default:
		return '?'
	}
}

// WriteMap writes metadata, a legend, the key bindings and the grid with the character drawn
// as '@' at its logical cell.
func WriteMap(w io.Writer, snap state.Snapshot) error {
	ew := &errWriter{w: w}

	ew.printf("# Glue Boy map dump\n")
	ew.printf("frame: %d\n", snap.Frame)
	ew.printf("timestamp: %.3f\n", snap.Timestamp)
	ew.printf("size: %d\n", snap.Size())
	ew.printf("logical: %s\n", snap.Logical)
	ew.printf("visual: %.3f:%.3f\n", snap.Visual.Row, snap.Visual.Col)
	ew.printf("pending_moves: %d\n", snap.Pending)
	ew.printf("tool: %s\n", i18n.BlockName(snap.Tool))
	ew.printf("hovered: %s\n", snap.Hovered)
	ew.printf("\n## Legend\n")
	ew.printf("@ glue boy\n")
	for _, b := range world.AllBlockTypes() {
		ew.printf("%c %s\n", cellSymbol(b), i18n.BlockName(b))
	}
	ew.printf("\n## Controls\n")
	for _, label := range menu.Labels() {
		ew.printf("%s\n", label)
	}
	ew.printf("\n## Map\n")

	for row := range snap.Cells {
		line := make([]rune, 0, len(snap.Cells[row]))
		for col, b := range snap.Cells[row] {
			if (world.Coord{Row: row, Col: col}) == snap.Logical {
				line = append(line, '@')
				continue
			}
			line = append(line, cellSymbol(b))
		}
		ew.printf("%s\n", string(line))
	}
	return ew.err
}

// DumpMapToFile writes the map dump to map.txt in dir and returns the
// absolute path.
func DumpMapToFile(snap state.Snapshot, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("creating map dump: %w", err)
	}
	defer f.Close()

	if err := WriteMap(f, snap); err != nil {
		return "", fmt.Errorf("writing map dump: %w", err)
	}
	return absPath, nil
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
