package render

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"go-image-border/pkg/shape"
)

// Source is the region of a texture an image is sampled from. Rect is the
// crop/trim rectangle inside Image (atlas frames); an empty Rect means the
// whole image.
type Source struct {
	Image image.Image
	Rect  image.Rectangle
}

// sample returns the rectangle to read from, clipped to the texture. ok is
// false when there is nothing to read.
func (s *Source) sample() (image.Rectangle, bool) {
	if s.Image == nil {
		return image.Rectangle{}, false
	}
	bounds := s.Image.Bounds()
	r := s.Rect
	if r.Empty() {
		r = bounds
	}
	r = r.Intersect(bounds)
	return r, !r.Empty()
}

// MaskOptions configures Mask.
type MaskOptions struct {
	Width  int
	Height int
	Radius float64
	Circle bool

	// Source is nil when no image is configured.
	Source *Source

	// Outlines, when set, is used to look up the clip outline.
	Outlines *shape.Cache
}

// Size returns the output size, at least 1x1.
func (o MaskOptions) Size() (int, int) {
	return max(o.Width, 1), max(o.Height, 1)
}

// Spec returns the outline spec for the output size.
func (o MaskOptions) Spec() shape.Spec {
	w, h := o.Size()
	return shape.Spec{
		Width:  float64(w),
		Height: float64(h),
		Radius: o.Radius,
		Circle: o.Circle,
	}
}

// Mask renders the source scaled to exactly Width x Height and clipped to the
// rounded rectangle (or circle) outline. Pixels outside the outline are
// transparent.
//
// Mask never fails: without a source, or when the source has no pixel data,
// it returns a fully transparent image of the requested size. The latter
// case is logged as a warning.
func Mask(opts MaskOptions) *image.RGBA {
	w, h := opts.Size()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Source == nil {
		return dst
	}

	sr, ok := opts.Source.sample()
	if !ok {
		Logger().Warn("render: image data not available, nothing to draw",
			"width", w, "height", h, "rect", opts.Source.Rect.String())
		return dst
	}

	coverage := Coverage(w, h, opts.Outlines.Outline(opts.Spec(), 0, 0))
	draw.BiLinear.Scale(dst, dst.Bounds(), opts.Source.Image, sr, draw.Over, &draw.Options{
		DstMask: coverage,
	})
	return dst
}

// Coverage rasterizes p into an anti-aliased alpha mask of size w x h.
func Coverage(w, h int, p shape.Path) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	p.Walk(rasterSink{z: z})
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
