// internal/state/gallery_state.go
package state

import (
	"fmt"
	"log"

	"go-image-border/internal/app"
	"go-image-border/internal/assets"
	"go-image-border/internal/config"
	"go-image-border/internal/defs"
	"go-image-border/internal/event"
	"go-image-border/internal/system"
	"go-image-border/pkg/render"
	"go-image-border/pkg/shape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что GalleryState соответствует интерфейсу State
var _ State = (*GalleryState)(nil)

// GalleryState — основной экран: сетка картинок в рамках и управление
// выбранной картинкой с клавиатуры.
type GalleryState struct {
	sm       *StateMachine
	gallery  *app.Gallery
	atlases  *assets.AtlasManager
	renderer *system.RenderSystem
	defsPath string
	reload   <-chan struct{} // Сигналы об изменении файла определений, может быть nil
	face     font.Face
	rebuilds int
}

func NewGalleryState(sm *StateMachine, lib *defs.Library, defsPath string, reload <-chan struct{}) *GalleryState {
	outlines, err := shape.NewCache(config.OutlineCacheSize)
	if err != nil {
		log.Printf("WARNING: outline cache disabled: %v", err)
	}
	atlases := assets.NewAtlasManager(config.AtlasDir)
	gallery := app.NewGallery(atlases, outlines)

	gs := &GalleryState{
		sm:       sm,
		gallery:  gallery,
		atlases:  atlases,
		renderer: system.NewRenderSystem(gallery.ECS),
		defsPath: defsPath,
		reload:   reload,
		face:     basicfont.Face7x13,
	}

	gallery.Events.Subscribe(event.ImageBorderRebuilt, event.ListenerFunc(func(event.Event) {
		gs.rebuilds++
	}))
	gallery.Events.Subscribe(event.DefinitionsReloaded, event.ListenerFunc(func(e event.Event) {
		log.Printf("Loaded %d border definitions from %s", e.Data, gs.defsPath)
	}))

	gallery.Load(lib)
	return gs
}

func (g *GalleryState) Enter() {}

func (g *GalleryState) Update(deltaTime float64) {
	g.gallery.Update()
	g.pollReload()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.sm.Push(NewHelpState(g.sm))
	case inpututil.IsKeyJustPressed(ebiten.KeyTab), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.gallery.Select(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.gallery.Select(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.gallery.AdjustRadius(config.RadiusStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.gallery.AdjustRadius(-config.RadiusStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.gallery.AdjustSize(config.SizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.gallery.AdjustSize(-config.SizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.gallery.NextFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.atlases.Reload()
		g.reloadDefinitions()
	}
}

// pollReload забирает сигнал наблюдателя, не блокируя кадр
func (g *GalleryState) pollReload() {
	if g.reload == nil {
		return
	}
	select {
	case _, ok := <-g.reload:
		if !ok {
			g.reload = nil
			return
		}
		g.reloadDefinitions()
	default:
	}
}

// reloadDefinitions перечитывает файл. При ошибке сцена остаётся как была.
func (g *GalleryState) reloadDefinitions() {
	lib, err := defs.LoadBorderDefinitions(g.defsPath)
	if err != nil {
		log.Printf("WARNING: reload %s: %v", g.defsPath, err)
		return
	}
	g.gallery.Load(lib)
}

func (g *GalleryState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)

	selected := g.gallery.Selected()
	for _, e := range g.gallery.Entries() {
		pos, ok := g.gallery.ECS.Positions[e.Border.Node()]
		if !ok {
			continue
		}
		cfg := e.Border.Config()
		w, h := float32(max(cfg.Width, 1)), float32(max(cfg.Height, 1))
		x, y := float32(pos.X)-w/2, float32(pos.Y)-h/2

		labelColor := render.DarkenColor(config.TextLightColor)
		if e == selected {
			labelColor = config.TextLightColor
			pad := float32(config.SelectionPadding) + float32(cfg.BorderWidth)/2
			vector.StrokeRect(screen, x-pad, y-pad, w+2*pad, h+2*pad, config.SelectionStroke, config.SelectionColor, true)
		}
		text.Draw(screen, e.ID, g.face, int(x), int(y+h)+config.TextOffsetY, labelColor)
	}

	text.Draw(screen, g.statusLine(), g.face, 10, config.TextOffsetY, config.TextLightColor)
}

func (g *GalleryState) statusLine() string {
	e := g.gallery.Selected()
	if e == nil {
		return fmt.Sprintf("no borders in %s  (F1 help)", g.defsPath)
	}
	cfg := e.Border.Config()
	shapeName := fmt.Sprintf("r=%.0f", cfg.Radius)
	if cfg.UseCircle {
		shapeName = "circle"
	}
	return fmt.Sprintf("%s  %dx%d %s  border=%.1f  rebuilds=%d textures=%d  (F1 help)",
		e.ID, cfg.Width, cfg.Height, shapeName, cfg.BorderWidth, g.rebuilds, g.renderer.TextureCount())
}

func (g *GalleryState) Exit() {}
