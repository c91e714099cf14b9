package render

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"github.com/gogpu/gg"
)

// SnapshotOptions configures Snapshot.
type SnapshotOptions struct {
	MaskOptions

	BorderWidth float64
	BorderColor color.Color

	// Background fills the canvas before drawing; nil keeps it transparent.
	Background color.Color
}

// Padding is the margin added around the image so the outer half of the
// border stroke fits on the canvas.
func (o SnapshotOptions) Padding() int {
	if o.BorderWidth <= 0 {
		return 0
	}
	return int(math.Ceil(o.BorderWidth / 2))
}

// Snapshot renders the masked image together with its border into a single
// image, the way the scene shows them: border stroked first, image drawn on
// top. The canvas is the image size plus Padding on each side.
func Snapshot(opts SnapshotOptions) (*image.RGBA, error) {
	masked := Mask(opts.MaskOptions)
	w, h := opts.Size()
	pad := opts.Padding()

	dc := gg.NewContext(w+2*pad, h+2*pad)
	defer dc.Close()

	if opts.Background != nil {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	}

	if opts.BorderWidth > 0 {
		borderColor := opts.BorderColor
		if borderColor == nil {
			borderColor = color.White
		}
		outline := opts.Outlines.Outline(opts.Spec(), float64(pad), float64(pad))
		outline.Walk(contextSink{dc: dc})
		dc.SetLineWidth(opts.BorderWidth)
		dc.SetColor(borderColor)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to stroke border: %w", err)
		}
	}

	dc.DrawImage(gg.ImageBufFromImage(masked), float64(pad), float64(pad))

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return toRGBA(dc.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(out, out.Bounds(), img, b.Min, stddraw.Src)
	return out
}
