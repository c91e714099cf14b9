// internal/app/gallery.go
package app

import (
	"log"

	"go-image-border/internal/assets"
	"go-image-border/internal/component"
	"go-image-border/internal/config"
	"go-image-border/internal/defs"
	"go-image-border/internal/entity"
	"go-image-border/internal/event"
	"go-image-border/internal/types"
	"go-image-border/internal/ui"
	"go-image-border/pkg/shape"
)

// Entry — одна картинка галереи: определение и компонент на его узле
type Entry struct {
	ID     string
	Def    defs.BorderDefinition
	Border *ui.ImageBorder
}

// Gallery раскладывает определения рамок по сцене и применяет к ним команды
// пользователя. Вся работа синхронная, в кадре хоста.
type Gallery struct {
	ECS    *entity.ECS
	Events *event.Dispatcher

	atlases   *assets.AtlasManager
	outlines  *shape.Cache
	lifecycle ui.Lifecycle
	entries   []*Entry
	frames    []*component.SpriteFrame // Все кадры из определений, по порядку
	selected  int
}

func NewGallery(atlases *assets.AtlasManager, outlines *shape.Cache) *Gallery {
	return &Gallery{
		ECS:      entity.NewECS(),
		Events:   event.NewDispatcher(),
		atlases:  atlases,
		outlines: outlines,
	}
}

// Load сверяет сцену с библиотекой: новые определения получают узел и
// компонент, существующие перенастраиваются, исчезнувшие удаляются.
func (g *Gallery) Load(lib *defs.Library) {
	byID := make(map[string]*Entry, len(g.entries))
	for _, e := range g.entries {
		byID[e.ID] = e
	}

	g.frames = g.frames[:0]
	entries := make([]*Entry, 0, lib.Len())
	for i, def := range lib.All() {
		frame := g.frameFor(def)
		if frame != nil {
			g.frames = append(g.frames, frame)
		}
		cfg := ConfigFor(def, frame)

		e, ok := byID[def.ID]
		if ok {
			delete(byID, def.ID)
			e.Def = def
			g.place(e.Border.Node(), def, i)
			if e.Border.Built() {
				e.Border.Configure(cfg)
			} else {
				// Ещё ждёт Start; он и соберёт с новыми настройками
				g.lifecycle.Remove(e.Border)
				e.Border = g.newBorder(e.Border.Node(), cfg)
			}
		} else {
			node := g.ECS.NewNode(def.ID, types.NoEntity)
			g.place(node, def, i)
			e = &Entry{ID: def.ID, Def: def, Border: g.newBorder(node, cfg)}
		}
		entries = append(entries, e)
	}

	for _, gone := range byID {
		g.lifecycle.Remove(gone.Border)
		g.ECS.DestroyEntity(gone.Border.Node())
	}
	g.entries = entries
	if g.selected >= len(g.entries) {
		g.selected = 0
	}
	g.Events.Dispatch(event.Event{Type: event.DefinitionsReloaded, Data: lib.Len()})
}

func (g *Gallery) newBorder(node types.EntityID, cfg ui.Config) *ui.ImageBorder {
	b := ui.NewImageBorder(g.ECS, node, cfg, ui.WithOutlineCache(g.outlines), ui.WithDispatcher(g.Events))
	g.lifecycle.Add(b)
	return b
}

// place ставит узел в точку из определения или в клетку сетки
func (g *Gallery) place(node types.EntityID, def defs.BorderDefinition, index int) {
	pos := g.ECS.Positions[node]
	if def.X != 0 || def.Y != 0 {
		pos.X, pos.Y = def.X, def.Y
		return
	}
	pos.X, pos.Y = GridPosition(index)
}

func (g *Gallery) frameFor(def defs.BorderDefinition) *component.SpriteFrame {
	if def.Atlas == "" || g.atlases == nil {
		return nil
	}
	frame, err := g.atlases.Frame(def.Atlas, def.Frame.Rect())
	if err != nil {
		log.Printf("WARNING: %s: %v", def.ID, err)
		return nil
	}
	return frame
}

// Update активирует компоненты, добавленные с прошлого кадра.
func (g *Gallery) Update() {
	g.lifecycle.Activate()
}

func (g *Gallery) Entries() []*Entry {
	return g.entries
}

// Selected возвращает выбранную картинку или nil, если галерея пуста
func (g *Gallery) Selected() *Entry {
	if len(g.entries) == 0 {
		return nil
	}
	return g.entries[g.selected]
}

// Select сдвигает выбор на delta с заворотом
func (g *Gallery) Select(delta int) {
	n := len(g.entries)
	if n == 0 {
		return
	}
	g.selected = ((g.selected+delta)%n + n) % n
}

// AdjustRadius меняет радиус выбранной картинки, не опуская его ниже нуля
func (g *Gallery) AdjustRadius(delta float64) {
	e := g.Selected()
	if e == nil {
		return
	}
	e.Border.SetRadius(max(e.Border.Config().Radius+delta, 0))
}

// AdjustSize меняет обе стороны на delta в пределах MinSize..MaxSize
func (g *Gallery) AdjustSize(delta int) {
	e := g.Selected()
	if e == nil {
		return
	}
	cfg := e.Border.Config()
	e.Border.SetSize(clampSize(cfg.Width+delta), clampSize(cfg.Height+delta))
}

// NextFrame переключает выбранную картинку на следующий известный кадр
func (g *Gallery) NextFrame() {
	e := g.Selected()
	if e == nil || len(g.frames) == 0 {
		return
	}
	next := 0
	current := e.Border.Config().SpriteFrame
	for i, f := range g.frames {
		if f == current {
			next = (i + 1) % len(g.frames)
			break
		}
	}
	e.Border.SetSpriteFrame(g.frames[next])
}

// ConfigFor переводит определение в настройки компонента
func ConfigFor(def defs.BorderDefinition, frame *component.SpriteFrame) ui.Config {
	cfg := ui.DefaultConfig()
	cfg.SpriteFrame = frame
	if def.Width != nil {
		cfg.Width = *def.Width
	}
	if def.Height != nil {
		cfg.Height = *def.Height
	}
	if def.Radius != nil {
		cfg.Radius = *def.Radius
	}
	cfg.UseCircle = def.Circle
	cfg.BorderWidth = def.BorderWidth
	cfg.BorderColor = def.Color
	return cfg
}

// GridPosition — центр клетки сетки галереи для index-й картинки
func GridPosition(index int) (float64, float64) {
	col := index % config.GalleryColumns
	row := index / config.GalleryColumns
	return float64(config.GalleryMarginX + col*config.GalleryCellW),
		float64(config.GalleryMarginY + row*config.GalleryCellH)
}

func clampSize(v int) int {
	return min(max(v, config.MinSize), config.MaxSize)
}
