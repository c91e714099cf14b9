package shape

import "math"

// kappa is the cubic Bezier handle length for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Spec describes the shape an image is clipped to.
type Spec struct {
	Width  float64
	Height float64
	Radius float64
	Circle bool // when set Radius is ignored
}

// Op is a path drawing operation.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

// Segment is one path operation. Pts holds the control points followed by
// the end point; only the first n points are used, n depending on Op.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// Point is a 2D point in pixel space, y pointing down.
type Point struct {
	X, Y float64
}

// Sink receives path operations. Rasterizers and vector paths implement it
// through small adapters.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubeTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Path is an immutable closed outline.
type Path struct {
	segs   []Segment
	radius float64
	circle bool
}

// Segments returns a copy of the path operations.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Radius returns the corner radius actually used, or the circle radius in
// circle mode.
func (p Path) Radius() float64 { return p.radius }

// IsCircle reports whether the path is a circle.
func (p Path) IsCircle() bool { return p.circle }

// Len returns the number of operations.
func (p Path) Len() int { return len(p.segs) }

// Walk replays the path into s.
func (p Path) Walk(s Sink) {
	for _, seg := range p.segs {
		switch seg.Op {
		case OpMoveTo:
			s.MoveTo(seg.Pts[0].X, seg.Pts[0].Y)
		case OpLineTo:
			s.LineTo(seg.Pts[0].X, seg.Pts[0].Y)
		case OpQuadTo:
			s.QuadTo(seg.Pts[0].X, seg.Pts[0].Y, seg.Pts[1].X, seg.Pts[1].Y)
		case OpCubeTo:
			s.CubeTo(seg.Pts[0].X, seg.Pts[0].Y, seg.Pts[1].X, seg.Pts[1].Y, seg.Pts[2].X, seg.Pts[2].Y)
		case OpClose:
			s.Close()
		}
	}
}

// Translate returns a copy of the path moved by dx, dy.
func (p Path) Translate(dx, dy float64) Path {
	out := Path{segs: p.Segments(), radius: p.radius, circle: p.circle}
	for i := range out.segs {
		pts := out.segs[i].Pts[:out.segs[i].Op.points()]
		for j := range pts {
			pts[j].X += dx
			pts[j].Y += dy
		}
	}
	return out
}

// points returns how many entries of Segment.Pts the operation uses.
func (o Op) points() int {
	switch o {
	case OpMoveTo, OpLineTo:
		return 1
	case OpQuadTo:
		return 2
	case OpCubeTo:
		return 3
	}
	return 0
}

// EffectiveRadius clamps the requested corner radius to [0, min(w,h)/2] so
// that opposite corners never overlap.
func EffectiveRadius(width, height, radius float64) float64 {
	maxRadius := math.Min(width/2, height/2)
	r := math.Min(radius, maxRadius)
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// CircleRadius returns the radius of the circle inscribed in width x height.
func CircleRadius(width, height float64) float64 {
	r := math.Min(width/2, height/2)
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// Outline builds the clip outline for spec with its bounding box top-left
// corner at (x, y). Pass (0, 0) for raster space or (-w/2, -h/2) for a
// node-local outline centred on the origin.
//
// Rounded corners are a single quadratic curve with the control point at
// the sharp corner. That is not a true quarter circle, and mask and border
// both rely on it being the same curve.
func Outline(spec Spec, x, y float64) Path {
	if spec.Circle {
		return circle(x+spec.Width/2, y+spec.Height/2, CircleRadius(spec.Width, spec.Height))
	}
	return roundedRect(x, y, spec.Width, spec.Height, EffectiveRadius(spec.Width, spec.Height, spec.Radius))
}

// roundedRect is traversed clockwise (y down) starting at the tangent point
// of the top-left corner.
func roundedRect(x, y, w, h, r float64) Path {
	b := builder{}
	b.move(x+r, y)
	b.line(x+w-r, y)
	b.quad(x+w, y, x+w, y+r)
	b.line(x+w, y+h-r)
	b.quad(x+w, y+h, x+w-r, y+h)
	b.line(x+r, y+h)
	b.quad(x, y+h, x, y+h-r)
	b.line(x, y+r)
	b.quad(x, y, x+r, y)
	b.close()
	return Path{segs: b.segs, radius: r}
}

// circle starts at angle 0 and sweeps clockwise in screen space, four cubic
// quarters.
func circle(cx, cy, r float64) Path {
	k := r * kappa
	b := builder{}
	b.move(cx+r, cy)
	b.cube(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	b.cube(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	b.cube(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	b.cube(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	b.close()
	return Path{segs: b.segs, radius: r, circle: true}
}

type builder struct {
	segs []Segment
}

func (b *builder) move(x, y float64) {
	b.segs = append(b.segs, Segment{Op: OpMoveTo, Pts: [3]Point{{x, y}}})
}

func (b *builder) line(x, y float64) {
	b.segs = append(b.segs, Segment{Op: OpLineTo, Pts: [3]Point{{x, y}}})
}

func (b *builder) quad(cx, cy, x, y float64) {
	b.segs = append(b.segs, Segment{Op: OpQuadTo, Pts: [3]Point{{cx, cy}, {x, y}}})
}

func (b *builder) cube(c1x, c1y, c2x, c2y, x, y float64) {
	b.segs = append(b.segs, Segment{Op: OpCubeTo, Pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

func (b *builder) close() {
	b.segs = append(b.segs, Segment{Op: OpClose})
}
