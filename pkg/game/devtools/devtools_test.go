package devtools

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/state"
)

func testSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	grid := world.NewGrid(4)
	grid.Paint(world.Coord{Row: 3, Col: 3}, world.Box)
	grid.Paint(world.Coord{Row: 0, Col: 2}, world.Box)
	return state.Snapshot{
		Cells:    grid.Cells(),
		Logical:  world.Coord{Row: 1, Col: 0},
		Visual:   world.Vec2{Row: 0.6, Col: 0},
		Hovered:  world.Coord{Row: 2, Col: 2},
		Tool:     world.Box,
		Frame:    42,
		Messages: []string{"<hello>"},
	}
}

func TestWriteMap(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteMap(&sb, testSnapshot(t)))
	out := sb.String()

	assert.Contains(t, out, "frame: 42\n")
	assert.Contains(t, out, "logical: 1:0\n")
	assert.Contains(t, out, "tool: Box\n")
	assert.Contains(t, out, "# Box\n")
	assert.Contains(t, out, "## Controls\nMove North: ArrowUp, KeyW\n")
	assert.True(t, strings.HasSuffix(out, "## Map\n..#.\n@...\n....\n...#\n"), out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteMap_PropagatesWriteError(t *testing.T) {
	err := WriteMap(failingWriter{}, testSnapshot(t))
	assert.EqualError(t, err, "disk full")
}

func TestDumpMapToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpMapToFile(testSnapshot(t), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "map.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@...")
}

func TestDumpMapToFile_MissingDir(t *testing.T) {
	_, err := DumpMapToFile(testSnapshot(t), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScreenshotHTML(t *testing.T) {
	html := ScreenshotHTML(testSnapshot(t))
	assert.Equal(t, 4, strings.Count(html, "<tr>"))
	assert.Equal(t, 16, strings.Count(html, "<td"))
	assert.Contains(t, html, "background-color: #0000ff", "logical cell")
	assert.Contains(t, html, "background-color: #7f3f00", "box cell")
	assert.Contains(t, html, `class="visual"`)
	assert.Contains(t, html, "&lt;hello&gt;")
	assert.NotContains(t, html, "<hello>")
}

func TestSaveScreenshotHTML(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	path, err := SaveScreenshotHTML(testSnapshot(t), dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "screenshot-20240506-070809.html"), path)
	assert.FileExists(t, path)
}

func TestNearestCell(t *testing.T) {
	assert.Equal(t, world.Coord{Row: 1, Col: 0}, nearestCell(world.Vec2{Row: 0.6, Col: 0.4}))
	assert.Equal(t, world.Coord{Row: 0, Col: 3}, nearestCell(world.Vec2{Row: 0.49, Col: 2.5}))
}
