package gameplay

import (
	"log"
	"time"

	"glueboy/pkg/engine/input"
	"glueboy/pkg/game/devtools"
	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/state"
)

// ProcessCommands carries out the meta actions raised in a frame.
func ProcessCommands(g *state.Game, snap state.Snapshot, outputDir string, now time.Time) {
	for _, cmd := range snap.Commands {
		ProcessCommand(g, snap, cmd, outputDir, now)
	}
}

// ProcessCommand handles one meta action
func ProcessCommand(g *state.Game, snap state.Snapshot, cmd input.Action, outputDir string, now time.Time) {
	switch cmd {
	case input.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(snap, outputDir, now)
		if err != nil {
			logMessage(g, "SCREENSHOT_FAILED", err)
			return
		}
		logMessage(g, "SCREENSHOT_SAVED", path)

	case input.ActionMapDump:
		path, err := devtools.DumpMapToFile(snap, outputDir)
		if err != nil {
			logMessage(g, "MAP_DUMP_FAILED", err)
			return
		}
		logMessage(g, "MAP_DUMPED", path)

	case input.ActionQuit:
		g.Quit = true
	}
}

// logMessage adds a translated message to the game's message log and the
// process log
func logMessage(g *state.Game, key string, a ...any) {
	msg := i18n.Get(key, a...)
	log.Print(msg)
	g.AddMessage(msg)
}
