package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"glueboy/pkg/game/config"
	"glueboy/pkg/game/gameplay"
	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/menu"
	"glueboy/pkg/game/renderer"
	ebitenrenderer "glueboy/pkg/game/renderer/ebiten"
	"glueboy/pkg/game/renderer/tui"
)

// newRenderer returns the backend selected by the configuration
func newRenderer(cfg config.Config) renderer.Renderer {
	switch cfg.Renderer {
	case config.RendererTUI:
		return tui.New(cfg.GridSize, cfg.TileSize(), cfg.TickInterval())
	default:
		return ebitenrenderer.New(cfg.SurfaceWidth, cfg.GridSize)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}

	g, err := gameplay.BuildGame(cfg)
	if err != nil {
		return err
	}
	driver := gameplay.NewDriver(g, cfg.OutputDir)

	log.Printf("Starting %dx%d grid with the %s renderer", cfg.GridSize, cfg.GridSize, cfg.Renderer)
	for _, label := range menu.Labels() {
		log.Printf("  %s", label)
	}
	r := newRenderer(cfg)
	if err := r.Init(); err != nil {
		return err
	}
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Printf("%v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return r.Run(ctx, driver)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("glueboy: %v", err)
	}
	fmt.Println(i18n.Get("GOODBYE"))
}
