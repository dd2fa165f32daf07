// Package gameplay runs the per-frame game logic.
package gameplay

import (
	"log"
	"time"

	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/config"
	"glueboy/pkg/game/generator"
	"glueboy/pkg/game/state"
)

// BuildGame creates a new game instance from the configuration
func BuildGame(cfg config.Config) (*state.Game, error) {
	seeder, err := generator.Lookup(cfg.Layout)
	if err != nil {
		return nil, err
	}

	grid := seeder.Seed(cfg.GridSize)
	log.Printf("Seeded the %s layout with %d boxes", seeder.Name(), grid.Count(world.Box))

	g := state.NewGame(grid, state.Options{
		TileSize: cfg.TileSize(),
		Speed:    cfg.Speed,
		Cadence:  cfg.Cadence,
	})
	return g, nil
}

// Driver owns the event queue and steps the game once per frame.
type Driver struct {
	game      *state.Game
	events    *input.Queue
	outputDir string
	clock     func() time.Time
}

// NewDriver creates a driver for g. Dev tool output goes to outputDir.
func NewDriver(g *state.Game, outputDir string) *Driver {
	return &Driver{
		game:      g,
		events:    input.NewQueue(),
		outputDir: outputDir,
		clock:     time.Now,
	}
}

// Game returns the driven game
func (d *Driver) Game() *state.Game {
	return d.game
}

// Push queues a raw event for the next frame. Safe from any goroutine.
func (d *Driver) Push(ev input.Event) {
	d.events.Push(ev)
}

// Frame runs one frame at timestamp (seconds, monotonic) and returns what to
// draw. The first frame advances no animation time.
func (d *Driver) Frame(timestamp float64) state.Snapshot {
	g := d.game

	dt := 0.0
	if g.Started {
		dt = timestamp - g.LastTimestamp
	}
	g.Started = true
	g.LastTimestamp = timestamp

	f := g.Input.Drain(d.events.Drain())
	g.Tool = g.Input.SelectTool(g.Tool)
	MoveCharacter(g, timestamp)
	if f.Clicked {
		Paint(g, f.Hovered)
	}
	g.Character.Anim.Advance(dt, g.Character.Logical)
	g.Input.EndFrame()
	g.Frames++

	return g.Snapshot(timestamp, f.Commands)
}

// Tick runs a frame, carries out any dev commands it raised and reports
// whether the game should keep running.
func (d *Driver) Tick(timestamp float64) (state.Snapshot, bool) {
	snap := d.Frame(timestamp)
	if len(snap.Commands) > 0 {
		ProcessCommands(d.game, snap, d.outputDir, d.clock())
		snap.Messages = append([]string(nil), d.game.Messages...)
	}
	return snap, !d.game.Quit
}
