// Package config holds the startup settings for Glue Boy.
package config

import (
	"flag"
	"fmt"
	"time"

	"glueboy/pkg/engine/assert"
)

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config is fixed once the game starts.
type Config struct {
	GridSize      int
	SurfaceWidth  int
	SurfaceHeight int
	Speed         float64 // cells per second
	Cadence       float64 // seconds between held-key repeats
	Renderer      string
	Layout        string
	TickRate      int    // frames per second for the terminal loop
	OutputDir     string // where screenshots and map dumps are written
}

// Default returns the default configuration
func Default() Config {
	return Config{
		GridSize:      10,
		SurfaceWidth:  600,
		SurfaceHeight: 600,
		Speed:         10,
		Cadence:       1.0 / 7.0,
		Renderer:      RendererEbiten,
		Layout:        "demo",
		TickRate:      60,
		OutputDir:     ".",
	}
}

// RegisterFlags binds the command-line flags to c
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "number of cells along each side of the grid")
	fs.IntVar(&c.SurfaceWidth, "surface", c.SurfaceWidth, "drawing surface size in pixels (square)")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "movement animation speed in cells per second")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer backend: ebiten or tui")
	fs.StringVar(&c.Layout, "layout", c.Layout, "starting grid layout: demo, empty or border")
	fs.IntVar(&c.TickRate, "tick", c.TickRate, "frames per second for the terminal renderer")
	fs.StringVar(&c.OutputDir, "out", c.OutputDir, "directory for screenshots and map dumps")
}

// Parse reads args into a copy of the default configuration and validates it.
func Parse(args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet("glueboy", flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	// -surface sets a square surface
	c.SurfaceHeight = c.SurfaceWidth
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks user-supplied values
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.GridSize)
	}
	if c.SurfaceWidth < c.GridSize {
		return fmt.Errorf("surface of %dpx is too small for %d cells", c.SurfaceWidth, c.GridSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	return nil
}

// TileSize returns the pixel size of one cell. The surface must be square.
func (c Config) TileSize() float64 {
	assert.That(c.SurfaceWidth == c.SurfaceHeight, "surface must be square, got %dx%d", c.SurfaceWidth, c.SurfaceHeight)
	assert.That(c.GridSize > 0, "grid size %d must be positive", c.GridSize)
	return float64(c.SurfaceWidth) / float64(c.GridSize)
}

// TickInterval returns the frame period of the terminal loop
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
