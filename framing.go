package mtsdf

import "math"

// Framing maps shape-space coordinates into a pixel grid: a uniform
// scale, a shape-space translation applied before scaling, and the
// distance field range in shape units.
type Framing struct {
	// Scale is the uniform shape-to-pixel scale factor.
	Scale float64

	// Translate is the shape-space offset applied before scaling.
	Translate Point

	// Range is the distance field range in shape units.
	Range float64
}

// Project maps a shape-space point to pixel space.
func (f Framing) Project(p Point) Point {
	return p.Add(f.Translate).Mul(f.Scale)
}

// Unproject maps a pixel-space point back to shape space.
func (f Framing) Unproject(p Point) Point {
	return p.Mul(1 / f.Scale).Sub(f.Translate)
}

// autoFrame fits bounds into a width x height pixel grid, reserving
// rng/2 of margin on every side so the distance field saturates before
// the border. The shape is scaled uniformly (the smaller axis fit) and
// the slack on the non-limiting axis is centered.
//
// Returns false when the geometry cannot produce a valid frame:
// non-finite bounds, or a scale that comes out zero, negative or
// non-finite.
func autoFrame(bounds Rect, width, height int, rng float64) (Framing, bool) {
	if width <= 0 || height <= 0 || rng <= 0 || !bounds.IsFinite() {
		return Framing{}, false
	}

	padded := bounds.Expand(rng / 2)
	dimX := padded.Width()
	dimY := padded.Height()
	if dimX <= 0 || dimY <= 0 {
		return Framing{}, false
	}

	w := float64(width)
	h := float64(height)
	scale := min(w/dimX, h/dimY)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return Framing{}, false
	}

	// Center the occupied box; the limiting axis has zero slack.
	translate := Point{
		X: (w/scale-dimX)/2 - padded.MinX,
		Y: (h/scale-dimY)/2 - padded.MinY,
	}
	if !translate.IsFinite() {
		return Framing{}, false
	}

	return Framing{Scale: scale, Translate: translate, Range: rng}, true
}
