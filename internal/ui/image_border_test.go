package ui

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-image-border/internal/component"
	"go-image-border/internal/entity"
	"go-image-border/internal/event"
	"go-image-border/internal/types"
	"go-image-border/pkg/render"
	"go-image-border/pkg/shape"
)

func newScene(t *testing.T, cfg Config, opts ...Option) (*entity.ECS, *ImageBorder) {
	t.Helper()
	ecs := entity.NewECS()
	node := ecs.NewNode("avatar", types.NoEntity)
	return ecs, NewImageBorder(ecs, node, cfg, opts...)
}

func solidFrame(w, h int, c color.Color) *component.SpriteFrame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return component.NewSpriteFrame("solid", img)
}

func renderedImage(t *testing.T, ecs *entity.ECS, b *ImageBorder) *image.RGBA {
	t.Helper()
	sprite, ok := ecs.Sprites[b.RenderNode()]
	require.True(t, ok, "render node has no sprite")
	require.True(t, sprite.Enabled)
	img, ok := sprite.Frame.Texture.(*image.RGBA)
	require.True(t, ok)
	return img
}

func countNamed(ecs *entity.ECS, name string) int {
	n := 0
	for _, node := range ecs.Nodes {
		if node.Name == name {
			n++
		}
	}
	return n
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 95, cfg.Width)
	assert.Equal(t, 95, cfg.Height)
	assert.Equal(t, 10.0, cfg.Radius)
	assert.False(t, cfg.UseCircle)
	assert.Zero(t, cfg.BorderWidth)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.BorderColor)
	assert.Nil(t, cfg.SpriteFrame)
}

func TestStartBuildsTree(t *testing.T) {
	ecs, b := newScene(t, DefaultConfig())
	assert.False(t, b.Built())

	b.Start()
	require.True(t, b.Built())

	assert.Equal(t, []types.EntityID{b.ContainerNode()}, ecs.Children(b.Node()))
	assert.Equal(t, []types.EntityID{b.RenderNode()}, ecs.Children(b.ContainerNode()))
	assert.Equal(t, types.NoEntity, b.BorderNode())

	render := ecs.Nodes[b.RenderNode()]
	assert.Equal(t, RenderNodeName, render.Name)
	assert.Equal(t, 95.0, render.Width)
	assert.Equal(t, 0.5, render.AnchorX)
	assert.Equal(t, component.SizeModeCustom, ecs.Sprites[b.RenderNode()].SizeMode)
}

func TestStartDisablesExistingSprite(t *testing.T) {
	ecs, b := newScene(t, DefaultConfig())
	ecs.Sprites[b.Node()] = &component.Sprite{Frame: solidFrame(4, 4, color.White), Enabled: true}

	b.Start()

	sprite := ecs.Sprites[b.Node()]
	assert.False(t, sprite.Enabled)
	assert.Nil(t, sprite.Frame)
}

func TestMissingImageGivesTransparentImage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 120, 80
	ecs, b := newScene(t, cfg)

	require.NotPanics(t, b.Start)

	img := renderedImage(t, ecs, b)
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())
	for i := 3; i < len(img.Pix); i += 4 {
		require.Zero(t, img.Pix[i])
	}
}

func TestUnloadedFrameGivesTransparentImage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpriteFrame = &component.SpriteFrame{Name: "pending", Rect: image.Rect(0, 0, 16, 16)}
	ecs, b := newScene(t, cfg)
	b.Start()

	img := renderedImage(t, ecs, b)
	assert.Equal(t, image.Rect(0, 0, 95, 95), img.Bounds())
	for i := 3; i < len(img.Pix); i += 4 {
		require.Zero(t, img.Pix[i])
	}
}

func TestBorderWidthZeroHasNoBorder(t *testing.T) {
	ecs, b := newScene(t, DefaultConfig())
	b.Start()
	b.SetRadius(20)
	assert.Zero(t, countNamed(ecs, BorderNodeName))
	assert.Empty(t, ecs.Graphics)
}

func TestBorderExactlyOnceAcrossRebuilds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BorderWidth = 4
	ecs, b := newScene(t, cfg)

	b.Start()
	b.Rebuild()
	b.SetSize(100, 60)

	assert.Equal(t, 1, countNamed(ecs, BorderNodeName))
	assert.Equal(t, 1, countNamed(ecs, RenderNodeName))
	assert.Equal(t, 1, countNamed(ecs, ContainerNodeName))
	assert.Len(t, ecs.Graphics, 1)

	// The border is drawn before the image.
	assert.Equal(t, []types.EntityID{b.BorderNode(), b.RenderNode()}, ecs.Children(b.ContainerNode()))
}

func TestBorderScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 60
	cfg.Radius = 50
	cfg.BorderWidth = 4
	cfg.BorderColor = color.RGBA{R: 200, A: 255}
	ecs, b := newScene(t, cfg)
	b.Start()

	g := ecs.Graphics[b.BorderNode()]
	require.NotNil(t, g)
	assert.Equal(t, 4.0, g.LineWidth)
	assert.Equal(t, cfg.BorderColor, g.StrokeColor)
	assert.Equal(t, 30.0, g.Outline.Radius())

	want := shape.Outline(shape.Spec{Width: 100, Height: 60, Radius: 30}, -50, -30)
	assert.Equal(t, want.Segments(), g.Outline.Segments())
}

func TestCircleScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 80, 80
	cfg.Radius = 3
	cfg.UseCircle = true
	cfg.BorderWidth = 2
	cfg.SpriteFrame = solidFrame(10, 10, color.RGBA{G: 255, A: 255})
	ecs, b := newScene(t, cfg)
	b.Start()

	g := ecs.Graphics[b.BorderNode()]
	assert.True(t, g.Outline.IsCircle())
	assert.Equal(t, 40.0, g.Outline.Radius())

	img := renderedImage(t, ecs, b)
	assert.Greater(t, img.RGBAAt(40, 40).G, uint8(250))
	assert.Zero(t, img.RGBAAt(4, 4).A)
	assert.Zero(t, img.RGBAAt(76, 4).A)
}

func TestSettersUpdateConfigAndRebuild(t *testing.T) {
	ecs, b := newScene(t, DefaultConfig())
	b.Start()
	oldRender := b.RenderNode()

	frame := solidFrame(8, 8, color.RGBA{B: 255, A: 255})
	b.SetSpriteFrame(frame)
	assert.Same(t, frame, b.Config().SpriteFrame)
	assert.NotEqual(t, oldRender, b.RenderNode())
	assert.NotContains(t, ecs.Nodes, oldRender)

	b.SetSize(64, 32)
	assert.Equal(t, image.Rect(0, 0, 64, 32), renderedImage(t, ecs, b).Bounds())

	b.SetRadius(7)
	assert.Equal(t, 7.0, b.Config().Radius)
}

func TestMutatorBeforeStartBuilds(t *testing.T) {
	_, b := newScene(t, DefaultConfig())
	b.SetRadius(5)
	assert.True(t, b.Built())
}

func TestRebuildIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BorderWidth = 3
	cfg.SpriteFrame = solidFrame(12, 12, color.RGBA{R: 90, G: 140, B: 30, A: 255})
	ecs, b := newScene(t, cfg)
	b.Start()

	before := renderedImage(t, ecs, b).Pix
	beforeOutline := ecs.Graphics[b.BorderNode()].Outline.Segments()

	b.SetRadius(b.Config().Radius)
	assert.Equal(t, before, renderedImage(t, ecs, b).Pix)
	assert.Equal(t, beforeOutline, ecs.Graphics[b.BorderNode()].Outline.Segments())

	b.SetSize(b.Config().Width, b.Config().Height)
	b.SetSpriteFrame(b.Config().SpriteFrame)
	assert.Equal(t, before, renderedImage(t, ecs, b).Pix)
}

func TestRenderedImageIsFreshEachRebuild(t *testing.T) {
	ecs, b := newScene(t, DefaultConfig())
	b.Start()
	first := renderedImage(t, ecs, b)
	b.Rebuild()
	assert.NotSame(t, first, renderedImage(t, ecs, b))
}

func TestMalformedConfigIsClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 0, -3
	cfg.Radius = -10
	cfg.BorderWidth = -1
	ecs, b := newScene(t, cfg)
	require.NotPanics(t, b.Start)

	assert.Equal(t, image.Rect(0, 0, 1, 1), renderedImage(t, ecs, b).Bounds())
	assert.Equal(t, types.NoEntity, b.BorderNode())
	// The stored config is left as given.
	assert.Equal(t, -10.0, b.Config().Radius)
}

func TestRebuildOnDestroyedNodeIsNoop(t *testing.T) {
	ecs, b := newScene(t, DefaultConfig())
	ecs.DestroyEntity(b.Node())
	b.Start()
	assert.False(t, b.Built())
	assert.Empty(t, ecs.Nodes)
}

func TestRebuiltEvent(t *testing.T) {
	d := event.NewDispatcher()
	var got []Rebuilt
	d.Subscribe(event.ImageBorderRebuilt, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(Rebuilt))
	}))

	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Radius = 100, 60, 50
	cfg.BorderWidth = 1
	_, b := newScene(t, cfg, WithDispatcher(d))
	b.Start()
	b.SetSize(80, 80)

	require.Len(t, got, 2)
	assert.Equal(t, 30.0, got[0].Radius)
	assert.Equal(t, b.Node(), got[0].Node)
	assert.NotEqual(t, types.NoEntity, got[0].Border)
	assert.Equal(t, 40.0, got[1].Radius)
	assert.Equal(t, b.RenderNode(), got[1].Render)
}

func TestSharedOutlineCache(t *testing.T) {
	cache, err := shape.NewCache(16)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.BorderWidth = 2
	cfg.SpriteFrame = solidFrame(4, 4, color.White)
	_, b := newScene(t, cfg, WithOutlineCache(cache))
	b.Start()
	// Mask outline at the top-left origin plus the centred border outline.
	assert.Equal(t, 2, cache.Len())

	b.Rebuild()
	assert.Equal(t, 2, cache.Len())
}

func TestSnapshotOptionsMatchScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 60, 40
	cfg.Radius = -2
	cfg.BorderWidth = 4
	cfg.SpriteFrame = solidFrame(6, 6, color.RGBA{R: 255, A: 255})

	opts := cfg.SnapshotOptions(nil)
	assert.Zero(t, opts.Radius)
	assert.Equal(t, 2, opts.Padding())

	img, err := render.Snapshot(opts)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 44), img.Bounds())

	ecs, b := newScene(t, cfg)
	b.Start()
	scene := renderedImage(t, ecs, b)
	want, got := scene.RGBAAt(30, 20), img.RGBAAt(32, 22)
	assert.InDelta(t, want.R, got.R, 1)
	assert.InDelta(t, want.A, got.A, 1)
	assert.Zero(t, got.G)
}
