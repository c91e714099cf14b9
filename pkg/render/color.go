package render

import "image/color"

// VertexColor returns the premultiplied components of c scaled to [0, 1].
// ebiten vertices carrying them must be drawn with
// ColorScaleModePremultipliedAlpha.
func VertexColor(c color.Color) (r, g, b, a float32) {
	if c == nil {
		return 0, 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// ToRGBA converts any color to premultiplied 8-bit RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
