package render

import (
	"github.com/gogpu/gg"
	"golang.org/x/image/vector"

	"go-image-border/pkg/shape"
)

// rasterSink feeds an outline into an x/image/vector rasterizer.
type rasterSink struct {
	z *vector.Rasterizer
}

var _ shape.Sink = rasterSink{}

func (s rasterSink) MoveTo(x, y float64) { s.z.MoveTo(float32(x), float32(y)) }
func (s rasterSink) LineTo(x, y float64) { s.z.LineTo(float32(x), float32(y)) }
func (s rasterSink) QuadTo(cx, cy, x, y float64) {
	s.z.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}
func (s rasterSink) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}
func (s rasterSink) Close() { s.z.ClosePath() }

// contextSink builds an outline as the current path of a gg context.
type contextSink struct {
	dc *gg.Context
}

var _ shape.Sink = contextSink{}

func (s contextSink) MoveTo(x, y float64)         { s.dc.MoveTo(x, y) }
func (s contextSink) LineTo(x, y float64)         { s.dc.LineTo(x, y) }
func (s contextSink) QuadTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }
func (s contextSink) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (s contextSink) Close() { s.dc.ClosePath() }
