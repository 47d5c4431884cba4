package mtsdf

import (
	"math"

	"github.com/gogpu/mtsdf/face"
)

// Source supplies glyph outlines for distance field generation. Both
// face.Face and face.GoTextFace implement it.
type Source interface {
	// UnitsPerEm returns the font's internal unit scale.
	UnitsPerEm() int

	// GlyphOutline extracts a glyph's vector outline in font units.
	// A glyph without an outline yields an empty (not nil) Outline.
	GlyphOutline(gid face.GlyphID) (*face.Outline, error)
}

// GlyphShape holds the geometry and framing of a single glyph, ready for
// distance field generation. It is immutable after construction: the
// internal shape's edge colors are assigned exactly once by
// NewGlyphShape and never change afterwards.
type GlyphShape struct {
	// Anchor is the framing translation normalized into em space
	// (divided by units per em). Layout callers use it to position the
	// bitmap origin relative to the glyph's logical origin.
	Anchor Point

	// PxPerEm is the rendering resolution the shape was framed for.
	PxPerEm float64

	// Width and Height are the pixel dimensions of the bitmap Generate
	// produces. Both are at least Config.MinSize.
	Width, Height int

	shape   *Shape
	framing Framing
	errTh   float64
}

// NewGlyphShape extracts a glyph's outline from src and computes its
// bitmap dimensions and shape-to-pixel framing.
//
// It returns *GlyphShapeError when the glyph has no renderable outline
// and *AutoFramingError when the framing computation fails; both are
// recoverable (skip the glyph or adjust cfg.Range).
func NewGlyphShape(src Source, glyph face.GlyphID, cfg Config) (*GlyphShape, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	unitsPerEm := cfg.UnitsPerEm
	if unitsPerEm == 0 {
		unitsPerEm = float64(src.UnitsPerEm())
	}
	if unitsPerEm <= 0 {
		return nil, &ConfigError{Field: "UnitsPerEm", Reason: "face reports no unit scale"}
	}

	outline, err := src.GlyphOutline(glyph)
	if err != nil {
		return nil, err
	}
	if outline.IsEmpty() {
		return nil, &GlyphShapeError{Glyph: glyph}
	}

	shape := FromOutline(outline)
	if shape.EdgeCount() == 0 {
		return nil, &GlyphShapeError{Glyph: glyph}
	}

	// One-time coloring; the shape is never recolored after this.
	AssignColors(shape, cfg.AngleThreshold)

	bounds := shape.Bounds
	pxPerUnit := cfg.PxPerEm / unitsPerEm
	width := bitmapExtent(bounds.Width(), pxPerUnit, cfg.Padding, cfg.MinSize)
	height := bitmapExtent(bounds.Height(), pxPerUnit, cfg.Padding, cfg.MinSize)

	framing, ok := autoFrame(bounds, width, height, cfg.Range)
	if !ok {
		return nil, &AutoFramingError{
			Glyph:  glyph,
			Width:  width,
			Height: height,
			Range:  cfg.Range,
		}
	}

	Logger().Debug("framed glyph",
		"glyph", glyph,
		"width", width,
		"height", height,
		"edges", shape.EdgeCount(),
		"scale", framing.Scale,
	)

	return &GlyphShape{
		Anchor:  framing.Translate.Mul(1 / unitsPerEm),
		PxPerEm: cfg.PxPerEm,
		Width:   width,
		Height:  height,
		shape:   shape,
		framing: framing,
		errTh:   cfg.ErrorThreshold,
	}, nil
}

// Framing returns the shape-to-pixel framing computed at construction.
func (g *GlyphShape) Framing() Framing {
	return g.framing
}

// bitmapExtent converts a glyph extent in font units to a padded pixel
// extent with the minimum-size floor applied.
func bitmapExtent(extent, pxPerUnit float64, padding, minSize int) int {
	px := int(math.Ceil(extent*pxPerUnit)) + padding
	if px < minSize {
		px = minSize
	}
	return px
}

// Generate renders the glyph's multi-channel true signed distance field
// and packs it into a GlyphBitmap of exactly Width x Height pixels.
//
// The R, G and B channels hold per-channel signed distances, the A
// channel the true signed distance over all edges. Generation cannot
// fail on a successfully constructed GlyphShape.
func (g *GlyphShape) Generate() *GlyphBitmap {
	pix := newFloatBitmap(g.Width, g.Height)
	g.render(pix)
	g.correctSigns(pix)
	g.correctChannelErrors(pix)
	return pix.pack()
}

// render fills the float bitmap with normalized channel distances.
func (g *GlyphShape) render(pix *floatBitmap) {
	for y := 0; y < pix.height; y++ {
		for x := 0; x < pix.width; x++ {
			// Sample at the pixel center
			p := g.framing.Unproject(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})

			r := g.channelDistance(p, SelectRed)
			gr := g.channelDistance(p, SelectGreen)
			b := g.channelDistance(p, SelectBlue)
			a := g.trueDistance(p)

			pix.set(x, y,
				g.normalize(r.Distance),
				g.normalize(gr.Distance),
				g.normalize(b.Distance),
				g.normalize(a.Distance),
			)
		}
	}
}

// channelDistance finds the minimum signed distance over the edges
// contributing to one channel.
func (g *GlyphShape) channelDistance(p Point, selector EdgeSelectorFunc) SignedDistance {
	minDist := Infinite()
	for _, contour := range g.shape.Contours {
		for i := range contour.Edges {
			edge := &contour.Edges[i]
			if !selector(edge.Color) {
				continue
			}
			minDist = minDist.Combine(edge.SignedDistance(p))
		}
	}

	// No edge carries this channel (can happen on pathological
	// colorings); fall back to the full edge set.
	if minDist.Distance == math.MaxFloat64 {
		return g.trueDistance(p)
	}
	return minDist
}

// trueDistance finds the minimum signed distance over all edges.
func (g *GlyphShape) trueDistance(p Point) SignedDistance {
	minDist := Infinite()
	for _, contour := range g.shape.Contours {
		for i := range contour.Edges {
			minDist = minDist.Combine(contour.Edges[i].SignedDistance(p))
		}
	}
	return minDist
}

// normalize maps a signed distance in shape units to [0, 1], with 0.5 on
// the edge and saturation at half the range on either side.
func (g *GlyphShape) normalize(distance float64) float64 {
	v := 0.5 + distance/g.framing.Range
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// correctSigns fixes channels whose raw distance sign disagrees with the
// shape's actual inside/outside topology, row by row against a
// nonzero-winding scanline fill.
func (g *GlyphShape) correctSigns(pix *floatBitmap) {
	for y := 0; y < pix.height; y++ {
		rowY := g.framing.Unproject(Point{Y: float64(y) + 0.5}).Y
		sl := newScanline(g.shape, rowY)

		for x := 0; x < pix.width; x++ {
			shapeX := g.framing.Unproject(Point{X: float64(x) + 0.5}).X
			filled := sl.Filled(shapeX)

			r, gr, b, a := pix.at(x, y)
			if (median3(r, gr, b) > 0.5) != filled {
				r, gr, b = 1-r, 1-gr, 1-b
			}
			if (a > 0.5) != filled {
				a = 1 - a
			}
			pix.set(x, y, r, gr, b, a)
		}
	}
}

// correctChannelErrors flattens channels that stray too far from the
// per-pixel median. Such outliers produce false edges where two channel
// borders meet away from a real corner. The alpha channel encodes a
// single true distance and needs no correction.
func (g *GlyphShape) correctChannelErrors(pix *floatBitmap) {
	threshold := g.errTh
	for y := 0; y < pix.height; y++ {
		for x := 0; x < pix.width; x++ {
			r, gr, b, a := pix.at(x, y)
			med := median3(r, gr, b)

			if math.Abs(r-med) > threshold {
				r = clampTo(med, r, threshold)
			}
			if math.Abs(gr-med) > threshold {
				gr = clampTo(med, gr, threshold)
			}
			if math.Abs(b-med) > threshold {
				b = clampTo(med, b, threshold)
			}
			pix.set(x, y, r, gr, b, a)
		}
	}
}

// clampTo moves an outlier channel back to the threshold band around the
// median, keeping its side.
func clampTo(med, val, threshold float64) float64 {
	if val > med {
		val = med + threshold
	} else {
		val = med - threshold
	}
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}

// median3 returns the median of three values.
func median3(a, b, c float64) float64 {
	return max(min(a, b), min(max(a, b), c))
}

// floatBitmap is the intermediate 4-channel float pixel buffer.
type floatBitmap struct {
	pix           []float64
	width, height int
}

func newFloatBitmap(width, height int) *floatBitmap {
	return &floatBitmap{
		pix:    make([]float64, width*height*4),
		width:  width,
		height: height,
	}
}

func (f *floatBitmap) at(x, y int) (r, g, b, a float64) {
	i := (y*f.width + x) * 4
	return f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]
}

func (f *floatBitmap) set(x, y int, r, g, b, a float64) {
	i := (y*f.width + x) * 4
	f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3] = r, g, b, a
}

// pack converts the float bitmap to a packed 8-bit-per-channel bitmap.
func (f *floatBitmap) pack() *GlyphBitmap {
	out := NewGlyphBitmap(f.width, f.height)
	for i, j := 0, 0; i < len(f.pix); i, j = i+4, j+1 {
		out.Data[j] = packChannel(f.pix[i])<<24 |
			packChannel(f.pix[i+1])<<16 |
			packChannel(f.pix[i+2])<<8 |
			packChannel(f.pix[i+3])
	}
	return out
}

// packChannel converts a [0, 1] channel value to 8 bits by rounding
// f*256 and saturating. An input of exactly 1.0 packs to 255.
func packChannel(f float64) uint32 {
	n := int(math.Round(f * 256))
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint32(n)
}
