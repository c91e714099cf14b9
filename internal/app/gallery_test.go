package app

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-image-border/internal/assets"
	"go-image-border/internal/config"
	"go-image-border/internal/defs"
	"go-image-border/internal/event"
	"go-image-border/pkg/shape"
)

const galleryDefs = `[
	{"id": "left", "atlas": "faces.png", "frame": {"x": 0, "y": 0, "w": 8, "h": 8}, "radius": 4, "border_width": 2},
	{"id": "right", "atlas": "faces.png", "frame": {"x": 8, "y": 0, "w": 8, "h": 8}, "circle": true},
	{"id": "pinned", "x": 500, "y": 300, "width": 40, "height": 20}
]`

func newGallery(t *testing.T) *Gallery {
	t.Helper()
	dir := t.TempDir()
	atlas := imaging.New(16, 8, color.NRGBA{R: 255, A: 255})
	atlas = imaging.Paste(atlas, imaging.New(8, 8, color.NRGBA{B: 255, A: 255}), image.Pt(8, 0))
	require.NoError(t, imaging.Save(atlas, filepath.Join(dir, "faces.png")))

	cache, err := shape.NewCache(config.OutlineCacheSize)
	require.NoError(t, err)
	return NewGallery(assets.NewAtlasManager(dir), cache)
}

func parse(t *testing.T, src string) *defs.Library {
	t.Helper()
	lib, err := defs.ParseBorderDefinitions([]byte(src), defs.FormatJSON)
	require.NoError(t, err)
	return lib
}

func ids(g *Gallery) []string {
	var out []string
	for _, e := range g.Entries() {
		out = append(out, e.ID)
	}
	return out
}

func TestGalleryLoadBuildsOnUpdate(t *testing.T) {
	g := newGallery(t)
	var loaded []int
	g.Events.Subscribe(event.DefinitionsReloaded, event.ListenerFunc(func(e event.Event) {
		loaded = append(loaded, e.Data.(int))
	}))

	g.Load(parse(t, galleryDefs))
	assert.Equal(t, []string{"left", "right", "pinned"}, ids(g))
	assert.Equal(t, []int{3}, loaded)

	for _, e := range g.Entries() {
		assert.False(t, e.Border.Built(), e.ID)
	}
	g.Update()
	for _, e := range g.Entries() {
		assert.True(t, e.Border.Built(), e.ID)
	}

	left := g.Entries()[0].Border.Config()
	assert.Equal(t, image.Rect(0, 0, 8, 8), left.SpriteFrame.Rect)
	assert.Equal(t, 4.0, left.Radius)
	assert.Equal(t, 2.0, left.BorderWidth)
	assert.True(t, g.Entries()[1].Border.Config().UseCircle)
	assert.Nil(t, g.Entries()[2].Border.Config().SpriteFrame)
}

func TestGalleryPlacement(t *testing.T) {
	g := newGallery(t)
	g.Load(parse(t, galleryDefs))

	x, y := GridPosition(1)
	pos := g.ECS.Positions[g.Entries()[1].Border.Node()]
	assert.Equal(t, x, pos.X)
	assert.Equal(t, y, pos.Y)

	pinned := g.ECS.Positions[g.Entries()[2].Border.Node()]
	assert.Equal(t, 500.0, pinned.X)
	assert.Equal(t, 300.0, pinned.Y)

	x, y = GridPosition(config.GalleryColumns)
	assert.Equal(t, float64(config.GalleryMarginX), x)
	assert.Equal(t, float64(config.GalleryMarginY+config.GalleryCellH), y)
}

func TestGalleryReloadReconciles(t *testing.T) {
	g := newGallery(t)
	g.Load(parse(t, galleryDefs))
	g.Update()
	leftNode := g.Entries()[0].Border.Node()
	rightNode := g.Entries()[1].Border.Node()

	g.Load(parse(t, `[
		{"id": "left", "radius": 12},
		{"id": "extra"}
	]`))
	assert.Equal(t, []string{"left", "extra"}, ids(g))

	left := g.Entries()[0]
	assert.Equal(t, leftNode, left.Border.Node())
	assert.Equal(t, 12.0, left.Border.Config().Radius)
	assert.True(t, left.Border.Built())

	assert.NotContains(t, g.ECS.Nodes, rightNode)
	assert.False(t, g.Entries()[1].Border.Built())
	g.Update()
	assert.True(t, g.Entries()[1].Border.Built())
}

func TestGalleryReloadBeforeStart(t *testing.T) {
	g := newGallery(t)
	g.Load(parse(t, galleryDefs))
	g.Load(parse(t, `[{"id": "left", "width": 30}]`))

	g.Update()
	require.Len(t, g.Entries(), 1)
	assert.True(t, g.Entries()[0].Border.Built())
	assert.Equal(t, 30, g.Entries()[0].Border.Config().Width)
}

func TestGallerySelectWraps(t *testing.T) {
	g := newGallery(t)
	assert.Nil(t, g.Selected())
	g.Select(1)

	g.Load(parse(t, galleryDefs))
	assert.Equal(t, "left", g.Selected().ID)
	g.Select(-1)
	assert.Equal(t, "pinned", g.Selected().ID)
	g.Select(2)
	assert.Equal(t, "right", g.Selected().ID)
}

func TestGalleryAdjust(t *testing.T) {
	g := newGallery(t)
	g.Load(parse(t, galleryDefs))
	g.Update()

	g.AdjustRadius(-config.RadiusStep * 10)
	assert.Zero(t, g.Selected().Border.Config().Radius)
	g.AdjustRadius(config.RadiusStep)
	assert.Equal(t, config.RadiusStep, g.Selected().Border.Config().Radius)

	g.AdjustSize(config.SizeStep)
	cfg := g.Selected().Border.Config()
	assert.Equal(t, config.DefaultWidth+config.SizeStep, cfg.Width)
	assert.Equal(t, config.DefaultHeight+config.SizeStep, cfg.Height)

	g.AdjustSize(-10000)
	cfg = g.Selected().Border.Config()
	assert.Equal(t, config.MinSize, cfg.Width)
	assert.Equal(t, config.MinSize, cfg.Height)

	g.AdjustSize(10000)
	assert.Equal(t, config.MaxSize, g.Selected().Border.Config().Width)
}

func TestGalleryNextFrameCycles(t *testing.T) {
	g := newGallery(t)
	g.Load(parse(t, galleryDefs))
	g.Update()

	g.NextFrame()
	assert.Equal(t, image.Rect(8, 0, 16, 8), g.Selected().Border.Config().SpriteFrame.Rect)
	g.NextFrame()
	assert.Equal(t, image.Rect(0, 0, 8, 8), g.Selected().Border.Config().SpriteFrame.Rect)

	// Картинка без кадра получает первый известный
	g.Select(2)
	g.NextFrame()
	assert.Equal(t, image.Rect(0, 0, 8, 8), g.Selected().Border.Config().SpriteFrame.Rect)
}

func TestGalleryBadFrameFallsBackToEmpty(t *testing.T) {
	g := newGallery(t)
	g.Load(parse(t, `[
		{"id": "outside", "atlas": "faces.png", "frame": {"x": 40, "y": 40, "w": 8, "h": 8}},
		{"id": "missing", "atlas": "nope.png", "frame": {"x": 2, "y": 2, "w": 4, "h": 4}}
	]`))
	g.Update()

	assert.Nil(t, g.Entries()[0].Border.Config().SpriteFrame)
	missing := g.Entries()[1].Border.Config().SpriteFrame
	require.NotNil(t, missing)
	assert.Equal(t, image.Rect(0, 0, config.PlaceholderSize, config.PlaceholderSize), missing.Rect)
}

func TestConfigFor(t *testing.T) {
	w, r := 120, 33.0
	cfg := ConfigFor(defs.BorderDefinition{
		Width:       &w,
		Radius:      &r,
		Circle:      true,
		BorderWidth: 5,
		Color:       color.RGBA{G: 10, A: 255},
	}, nil)

	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, config.DefaultHeight, cfg.Height)
	assert.Equal(t, 33.0, cfg.Radius)
	assert.True(t, cfg.UseCircle)
	assert.Equal(t, 5.0, cfg.BorderWidth)
	assert.Equal(t, color.RGBA{G: 10, A: 255}, cfg.BorderColor)
}
