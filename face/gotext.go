package face

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// GoTextFace adapts a go-text/typesetting face to the same outline
// surface as Face. It lets callers that already hold a go-text face
// (e.g. from a HarfBuzz shaping pipeline) feed glyphs into distance
// field generation without re-parsing the font.
//
// GoTextFace is safe for concurrent use. The underlying font.Face is
// NOT, so access is serialized with a mutex; for heavy parallel
// workloads prefer one GoTextFace per goroutine over the same
// (thread-safe) *font.Font.
type GoTextFace struct {
	mu   sync.Mutex
	face *font.Face
}

// NewGoTextFace wraps an existing go-text face.
func NewGoTextFace(f *font.Face) *GoTextFace {
	return &GoTextFace{face: f}
}

// ParseGoText parses font data (TTF or OTF) using go-text/typesetting.
func ParseGoText(data []byte) (*GoTextFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}
	return &GoTextFace{face: f}, nil
}

// UnitsPerEm returns the font's internal unit scale.
func (f *GoTextFace) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex returns the glyph for a rune, or 0 (.notdef) if unmapped.
func (f *GoTextFace) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance returns the horizontal advance of a glyph in font units.
func (f *GoTextFace) GlyphAdvance(gid GlyphID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(f.face.HorizontalAdvance(font.GID(gid)))
}

// GlyphOutline extracts the vector outline for a glyph, in font units.
//
// Glyphs whose data is not a vector outline (bitmap or SVG glyphs) yield
// an Outline with nil Segments, the same shape a space glyph produces.
func (f *GoTextFace) GlyphOutline(gid GlyphID) (*Outline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	outline := &Outline{
		GID:     gid,
		Advance: float64(f.face.HorizontalAdvance(font.GID(gid))),
	}

	data := f.face.GlyphData(font.GID(gid))
	glyphOutline, ok := data.(font.GlyphOutline)
	if !ok {
		return outline, nil
	}

	outline.Segments = make([]Segment, 0, len(glyphOutline.Segments))
	for _, seg := range glyphOutline.Segments {
		out := Segment{}
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Points[0] = segPoint(seg.Args[0])
		case ot.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Points[0] = segPoint(seg.Args[0])
		case ot.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Points[0] = segPoint(seg.Args[0])
			out.Points[1] = segPoint(seg.Args[1])
		case ot.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Points[0] = segPoint(seg.Args[0])
			out.Points[1] = segPoint(seg.Args[1])
			out.Points[2] = segPoint(seg.Args[2])
		default:
			continue
		}
		outline.Segments = append(outline.Segments, out)
	}

	return outline, nil
}

// segPoint converts a go-text segment point to a Point2.
func segPoint(p font.SegmentPoint) Point2 {
	return Point2{X: float64(p.X), Y: float64(p.Y)}
}
