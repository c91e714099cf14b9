// internal/ui/image_border.go
package ui

import (
	"image/color"

	"go-image-border/internal/component"
	"go-image-border/internal/config"
	"go-image-border/internal/entity"
	"go-image-border/internal/event"
	"go-image-border/internal/types"
	"go-image-border/pkg/render"
	"go-image-border/pkg/shape"
)

// Имена дочерних узлов, которые пересоздаются при каждой пересборке
const (
	ContainerNodeName = "container"
	BorderNodeName    = "border"
	RenderNodeName    = "render"
)

// Config — настройки ImageBorder. Все поля можно менять во время работы.
type Config struct {
	SpriteFrame *component.SpriteFrame // Картинка; nil — рисовать нечего
	Width       int
	Height      int
	Radius      float64 // Радиус скругления, ограничивается половиной меньшей стороны
	UseCircle   bool    // Круглая маска, Radius игнорируется
	BorderWidth float64 // 0 — без рамки
	BorderColor color.RGBA
}

// DefaultConfig возвращает настройки по умолчанию: 95x95, радиус 10,
// без рамки, белый цвет рамки.
func DefaultConfig() Config {
	return Config{
		Width:       config.DefaultWidth,
		Height:      config.DefaultHeight,
		Radius:      config.DefaultRadius,
		BorderWidth: config.DefaultBorderWidth,
		BorderColor: config.DefaultBorderColor,
	}
}

// normalized подрезает заведомо неверные значения вместо ошибки.
func (c Config) normalized() Config {
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	c.Radius = max(c.Radius, 0)
	c.BorderWidth = max(c.BorderWidth, 0)
	return c
}

func (c Config) spec() shape.Spec {
	return shape.Spec{
		Width:  float64(c.Width),
		Height: float64(c.Height),
		Radius: c.Radius,
		Circle: c.UseCircle,
	}
}

func (c Config) maskOptions(outlines *shape.Cache) render.MaskOptions {
	return render.MaskOptions{
		Width:    c.Width,
		Height:   c.Height,
		Radius:   c.Radius,
		Circle:   c.UseCircle,
		Source:   source(c.SpriteFrame),
		Outlines: outlines,
	}
}

// SnapshotOptions описывает ту же картинку с рамкой для render.Snapshot,
// чтобы получить её вне сцены.
func (c Config) SnapshotOptions(outlines *shape.Cache) render.SnapshotOptions {
	c = c.normalized()
	return render.SnapshotOptions{
		MaskOptions: c.maskOptions(outlines),
		BorderWidth: c.BorderWidth,
		BorderColor: c.BorderColor,
	}
}

// Rebuilt — данные события event.ImageBorderRebuilt
type Rebuilt struct {
	Node      types.EntityID
	Container types.EntityID
	Render    types.EntityID
	Border    types.EntityID // types.NoEntity, если рамки нет
	Radius    float64        // Фактический радиус: скругления или круга
	Circle    bool
}

// ImageBorder показывает картинку, обрезанную по скруглённому прямоугольнику
// или кругу, с необязательной рамкой.
//
// Под своим узлом компонент держит ровно одного ребёнка "container", а в нём
// "border" (если BorderWidth > 0) и "render". Любое изменение настроек
// уничтожает их и строит заново; идентификаторы детей между пересборками не
// сохраняются.
type ImageBorder struct {
	ecs      *entity.ECS
	node     types.EntityID
	cfg      Config
	outlines *shape.Cache
	events   *event.Dispatcher

	built     bool
	container types.EntityID
	render    types.EntityID
	border    types.EntityID
}

// Option настраивает ImageBorder при создании
type Option func(*ImageBorder)

// WithOutlineCache подключает общий кэш контуров.
func WithOutlineCache(c *shape.Cache) Option {
	return func(b *ImageBorder) { b.outlines = c }
}

// WithDispatcher включает событие ImageBorderRebuilt после каждой пересборки.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(b *ImageBorder) { b.events = d }
}

// NewImageBorder прикрепляет компонент к узлу node. Ничего не строит до
// Start или первого сеттера.
func NewImageBorder(ecs *entity.ECS, node types.EntityID, cfg Config, opts ...Option) *ImageBorder {
	b := &ImageBorder{ecs: ecs, node: node, cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *ImageBorder) Node() types.EntityID { return b.node }
func (b *ImageBorder) Config() Config       { return b.cfg }
func (b *ImageBorder) Built() bool          { return b.built }

// ContainerNode, RenderNode и BorderNode возвращают детей последней сборки.
func (b *ImageBorder) ContainerNode() types.EntityID { return b.container }
func (b *ImageBorder) RenderNode() types.EntityID    { return b.render }
func (b *ImageBorder) BorderNode() types.EntityID    { return b.border }

// Start — хук активации. Гасит обычный спрайт на том же узле, чтобы картинка
// не рисовалась дважды, и выполняет первую сборку.
func (b *ImageBorder) Start() {
	if sprite, ok := b.ecs.Sprites[b.node]; ok {
		sprite.Frame = nil
		sprite.Enabled = false
	}
	b.Rebuild()
}

// SetSpriteFrame меняет картинку во время работы
func (b *ImageBorder) SetSpriteFrame(frame *component.SpriteFrame) {
	b.cfg.SpriteFrame = frame
	b.Rebuild()
}

// SetSize меняет размер во время работы
func (b *ImageBorder) SetSize(width, height int) {
	b.cfg.Width = width
	b.cfg.Height = height
	b.Rebuild()
}

// SetRadius меняет радиус скругления во время работы
func (b *ImageBorder) SetRadius(radius float64) {
	b.cfg.Radius = radius
	b.Rebuild()
}

// Configure заменяет все настройки разом (например, после перечитывания
// файла определений).
func (b *ImageBorder) Configure(cfg Config) {
	b.cfg = cfg
	b.Rebuild()
}

// Rebuild сносит детей узла и собирает их заново: сначала рамку, потом
// картинку. Выполняется целиком за один вызов.
func (b *ImageBorder) Rebuild() {
	if _, ok := b.ecs.Nodes[b.node]; !ok {
		return
	}
	cfg := b.cfg.normalized()

	b.ecs.RemoveAllChildren(b.node)
	b.container = b.ecs.NewNode(ContainerNodeName, b.node)
	b.border = types.NoEntity
	if cfg.BorderWidth > 0 {
		b.border = b.createBorder(cfg)
	}
	b.render = b.createRender(cfg)
	b.built = true

	radius := shape.EffectiveRadius(float64(cfg.Width), float64(cfg.Height), cfg.Radius)
	if cfg.UseCircle {
		radius = shape.CircleRadius(float64(cfg.Width), float64(cfg.Height))
	}
	b.events.Dispatch(event.Event{
		Type: event.ImageBorderRebuilt,
		Data: Rebuilt{
			Node:      b.node,
			Container: b.container,
			Render:    b.render,
			Border:    b.border,
			Radius:    radius,
			Circle:    cfg.UseCircle,
		},
	})
}

// createRender растеризует картинку под маской в новый буфер и вешает его
// спрайтом на узел "render".
func (b *ImageBorder) createRender(cfg Config) types.EntityID {
	id := b.ecs.NewNode(RenderNodeName, b.container)
	node := b.ecs.Nodes[id]
	node.Width = float64(cfg.Width)
	node.Height = float64(cfg.Height)

	img := render.Mask(cfg.maskOptions(b.outlines))
	b.ecs.Sprites[id] = &component.Sprite{
		Frame:    component.NewSpriteFrame(RenderNodeName, img),
		Enabled:  true,
		SizeMode: component.SizeModeCustom,
	}
	return id
}

// createBorder строит тот же контур, но с центром в (0, 0) узла.
func (b *ImageBorder) createBorder(cfg Config) types.EntityID {
	id := b.ecs.NewNode(BorderNodeName, b.container)
	node := b.ecs.Nodes[id]
	node.Width = float64(cfg.Width)
	node.Height = float64(cfg.Height)

	w, h := float64(cfg.Width), float64(cfg.Height)
	b.ecs.Graphics[id] = &component.Graphics{
		Outline:     b.outlines.Outline(cfg.spec(), -w/2, -h/2),
		LineWidth:   cfg.BorderWidth,
		StrokeColor: cfg.BorderColor,
	}
	return id
}

func source(frame *component.SpriteFrame) *render.Source {
	if frame == nil {
		return nil
	}
	return &render.Source{Image: frame.Texture, Rect: frame.Rect}
}
