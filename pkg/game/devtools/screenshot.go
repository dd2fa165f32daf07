// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/renderer"
	"glueboy/pkg/game/state"
)

// ScreenshotHTML renders a snapshot as a standalone HTML page
func ScreenshotHTML(snap state.Snapshot) string {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + i18n.Get("WINDOW_TITLE") + ` - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .grid { border-collapse: collapse; position: relative; }
        .grid td {
            width: 24px;
            height: 24px;
            border: 1px solid ` + renderer.Hex(renderer.ColorGridLine) + `;
            padding: 0;
            text-align: center;
        }
        .visual { color: ` + renderer.Hex(renderer.ColorVisual) + `; font-weight: bold; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", i18n.Get("HUD_TOOL", i18n.BlockName(snap.Tool))))
	html.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", i18n.Get("HUD_POSITION", snap.Logical)))

	visual := nearestCell(snap.Visual)
	html.WriteString(`    <table class="grid">` + "\n")
	for row := range snap.Cells {
		html.WriteString(`        <tr>`)
		for col := range snap.Cells[row] {
			c := world.Coord{Row: row, Col: col}
			bg := renderer.Hex(renderer.TileColor(snap, c))
			if c == visual {
				html.WriteString(fmt.Sprintf(`<td class="visual" style="background-color: %s">&#9632;</td>`, bg))
				continue
			}
			html.WriteString(fmt.Sprintf(`<td style="background-color: %s"></td>`, bg))
		}
		html.WriteString("</tr>\n")
	}
	html.WriteString("    </table>\n")

	if len(snap.Messages) > 0 {
		html.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range snap.Messages {
			html.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", escapeHTML(msg)))
		}
		html.WriteString("    </div>\n")
	}

	html.WriteString("</body>\n</html>\n")
	return html.String()
}

// SaveScreenshotHTML writes the snapshot as screenshot-<time>.html in dir and
// returns the file path.
func SaveScreenshotHTML(snap state.Snapshot, dir string, now time.Time) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.html", now.Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(ScreenshotHTML(snap)), 0644); err != nil {
		return "", fmt.Errorf("saving screenshot: %w", err)
	}
	return path, nil
}

// nearestCell rounds a visual position to the cell it mostly covers
func nearestCell(v world.Vec2) world.Coord {
	return world.Coord{Row: int(v.Row + 0.5), Col: int(v.Col + 0.5)}
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
