// cmd/gallery/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"go-image-border/internal/config"
	"go-image-border/internal/defs"
	"go-image-border/internal/state"
	"go-image-border/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGallery struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGallery) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGallery) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGallery) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", config.DefinitionsPath, "border definitions file (.json or .toml)")
	watch := flag.Bool("watch", true, "reload definitions when the file changes")
	verbose := flag.Bool("v", false, "log rasterizer diagnostics")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	lib, err := defs.LoadBorderDefinitions(*defsPath)
	if err != nil {
		log.Fatalf("Failed to load border definitions: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reload <-chan struct{}
	if *watch {
		reload, err = defs.Watch(ctx, *defsPath)
		if err != nil {
			log.Printf("WARNING: hot reload disabled: %v", err)
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGalleryState(sm, lib, *defsPath, reload))
	app := &AppGallery{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Image Borders")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
