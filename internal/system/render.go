// internal/system/render.go
package system

import (
	"image"
	"image/color"

	"go-image-border/internal/component"
	"go-image-border/internal/entity"
	"go-image-border/internal/types"
	"go-image-border/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует дерево сцены: спрайты и векторные контуры в порядке
// обхода (родитель, затем дети по порядку).
type RenderSystem struct {
	ecs        *entity.ECS
	textures   *render.FrameCache[*component.SpriteFrame, texture]
	whiteImage *ebiten.Image
	whiteSub   *ebiten.Image
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	// Берём центральный пиксель 3x3, чтобы сглаживание не цепляло край
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)

	return &RenderSystem{
		ecs:        ecs,
		textures:   render.NewFrameCache(newTexture, texture.release),
		whiteImage: whiteImage,
		whiteSub:   whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		strokeVs:   make([]ebiten.Vertex, 0, 256),
		strokeIs:   make([]uint16, 0, 512),
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.ecs.Walk(func(id types.EntityID) {
		x, y := s.ecs.WorldPosition(id)
		if sprite, ok := s.ecs.Sprites[id]; ok && sprite.Enabled && sprite.Frame.Loaded() {
			s.drawSprite(screen, id, sprite, x, y)
		}
		if g, ok := s.ecs.Graphics[id]; ok && g.LineWidth > 0 {
			s.drawOutline(screen, g, x, y)
		}
	})

	// Кадры, которых больше нет в сцене (после пересборки), выгружаем
	s.textures.Sweep()
}

// TextureCount — сколько текстур сейчас закэшировано
func (s *RenderSystem) TextureCount() int {
	return s.textures.Len()
}

// texture — загруженная на GPU картинка кадра и её видимая часть.
// Deallocate у подкартинки ничего не делает, поэтому храним обе.
type texture struct {
	full *ebiten.Image
	view *ebiten.Image
}

func newTexture(frame *component.SpriteFrame) texture {
	full := ebiten.NewImageFromImage(frame.Texture)
	view := full
	if !frame.Rect.Empty() && frame.Rect != frame.Texture.Bounds() {
		// NewImageFromImage сдвигает картинку в (0, 0)
		r := frame.Rect.Sub(frame.Texture.Bounds().Min)
		view = full.SubImage(r).(*ebiten.Image)
	}
	return texture{full: full, view: view}
}

func (t texture) release() {
	t.full.Deallocate()
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id types.EntityID, sprite *component.Sprite, x, y float64) {
	fw, fh := sprite.Frame.Size()
	if fw == 0 || fh == 0 {
		return
	}
	tex := s.textures.Get(sprite.Frame).view

	w, h := float64(fw), float64(fh)
	anchorX, anchorY := 0.5, 0.5
	if node, ok := s.ecs.Nodes[id]; ok {
		anchorX, anchorY = node.AnchorX, node.AnchorY
		if sprite.SizeMode == component.SizeModeCustom && node.Width > 0 && node.Height > 0 {
			w, h = node.Width, node.Height
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(fw), h/float64(fh))
	op.GeoM.Translate(x-w*anchorX, y-h*anchorY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

func (s *RenderSystem) drawOutline(screen *ebiten.Image, g *component.Graphics, x, y float64) {
	path := vector.Path{}
	g.Outline.Translate(x, y).Walk(pathSink{path: &path})

	s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(g.LineWidth),
		LineJoin: vector.LineJoinRound,
	})

	r, gr, b, a := render.VertexColor(g.StrokeColor)
	for i := range s.strokeVs {
		s.strokeVs[i].SrcX = 1
		s.strokeVs[i].SrcY = 1
		s.strokeVs[i].ColorR = r
		s.strokeVs[i].ColorG = gr
		s.strokeVs[i].ColorB = b
		s.strokeVs[i].ColorA = a
	}
	// VertexColor отдаёт premultiplied-компоненты
	screen.DrawTriangles(s.strokeVs, s.strokeIs, s.whiteSub, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	})
}

// pathSink переводит контур в vector.Path
type pathSink struct {
	path *vector.Path
}

func (p pathSink) MoveTo(x, y float64) { p.path.MoveTo(float32(x), float32(y)) }
func (p pathSink) LineTo(x, y float64) { p.path.LineTo(float32(x), float32(y)) }
func (p pathSink) QuadTo(cx, cy, x, y float64) {
	p.path.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}
func (p pathSink) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.path.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}
func (p pathSink) Close() { p.path.Close() }
