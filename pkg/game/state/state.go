package state

import (
	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/movement"
)

// Character is the player-controlled glue boy.
type Character struct {
	// Logical is the authoritative cell. It moves instantly on a trigger.
	Logical world.Coord
	// Anim trails the logical cell with a smooth visual position.
	Anim *movement.Animator
}

// Visual returns the interpolated position drawn by renderers
func (c *Character) Visual() world.Vec2 {
	return c.Anim.Visual()
}

// Game represents the game state for Glue Boy
type Game struct {
	Grid *world.Grid

	Character Character

	Input *input.Aggregator

	Repeat *movement.Repeater

	// Tool is the block type a click paints
	Tool world.BlockType

	Messages []string

	// Frames counts completed frames
	Frames int

	// LastTimestamp is the timestamp of the previous frame in seconds
	LastTimestamp float64

	// Started is false until the first frame has run
	Started bool

	Quit bool
}

// Options holds the startup parameters for a new game.
type Options struct {
	TileSize float64
	Speed    float64
	Cadence  float64
	Start    world.Coord
}

// NewGame creates a new game around a prepared grid
func NewGame(grid *world.Grid, opts Options) *Game {
	start := grid.Clip(opts.Start)
	return &Game{
		Grid: grid,
		Character: Character{
			Logical: start,
			Anim:    movement.NewAnimator(start, opts.Speed),
		},
		Input:    input.NewAggregator(grid.Size(), opts.TileSize),
		Repeat:   movement.NewRepeater(opts.Cadence),
		Tool:     world.Empty,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Snapshot copies everything a renderer needs out of the game.
func (g *Game) Snapshot(timestamp float64, commands []input.Action) Snapshot {
	return Snapshot{
		Cells:     g.Grid.Cells(),
		Logical:   g.Character.Logical,
		Visual:    g.Character.Visual(),
		Hovered:   g.Input.Hovered(),
		Tool:      g.Tool,
		Pending:   g.Character.Anim.Pending(),
		Timestamp: timestamp,
		Frame:     g.Frames,
		Commands:  append([]input.Action(nil), commands...),
		Messages:  append([]string(nil), g.Messages...),
	}
}
