package face

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("face: empty font data")

// Face is a parsed font face backed by golang.org/x/image/font/opentype.
//
// Face is safe for concurrent use: the underlying sfnt buffer is guarded
// by a mutex, so one Face may serve glyph extraction from multiple
// goroutines.
type Face struct {
	font *opentype.Font
	upem int

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Parse parses font data (TTF or OTF) into a Face.
func Parse(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}

	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		upem = 1000
	}

	return &Face{font: f, upem: upem}, nil
}

// Name returns the font family name, or "" if not available.
func (f *Face) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm returns the font's internal unit scale.
func (f *Face) UnitsPerEm() int {
	return f.upem
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex returns the glyph for a rune, or 0 (.notdef) if unmapped.
func (f *Face) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance returns the horizontal advance of a glyph in font units.
func (f *Face) GlyphAdvance(gid GlyphID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.advanceLocked(gid)
}

func (f *Face) advanceLocked(gid GlyphID) float64 {
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.unitPpem(), 0)
	if err != nil {
		return 0
	}
	return float64(adv) / 64.0
}

// unitPpem returns a ppem at which sfnt coordinates come out in font
// units: loading at ppem == unitsPerEm makes the scale factor exactly 1.
func (f *Face) unitPpem() fixed.Int26_6 {
	return fixed.I(f.upem)
}

// GlyphOutline extracts the vector outline for a glyph, in font units.
//
// A glyph that exists but has no outline (e.g. space) yields an Outline
// with nil Segments and a valid Advance. An unknown glyph id returns an
// error.
func (f *Face) GlyphOutline(gid GlyphID) (*Outline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.unitPpem(), nil)
	if err != nil {
		return nil, fmt.Errorf("face: failed to load glyph %d: %w", gid, err)
	}

	outline := &Outline{
		GID:     gid,
		Advance: f.advanceLocked(gid),
	}
	if len(segments) == 0 {
		return outline, nil
	}

	outline.Segments = make([]Segment, 0, len(segments))
	for _, seg := range segments {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Points[0] = fixedPoint(seg.Args[0]) // Control
			out.Points[1] = fixedPoint(seg.Args[1]) // Target
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Points[0] = fixedPoint(seg.Args[0]) // Control 1
			out.Points[1] = fixedPoint(seg.Args[1]) // Control 2
			out.Points[2] = fixedPoint(seg.Args[2]) // Target
		default:
			continue
		}
		outline.Segments = append(outline.Segments, out)
	}

	return outline, nil
}

// fixedPoint converts a fixed.Point26_6 to a Point2 in font units.
func fixedPoint(p fixed.Point26_6) Point2 {
	return Point2{
		X: float64(p.X) / 64.0,
		Y: float64(p.Y) / 64.0,
	}
}
