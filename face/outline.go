// Package face wraps parsed font faces and extracts glyph outlines in
// font units for distance field generation.
package face

// GlyphID identifies a glyph within a font face.
type GlyphID uint16

// Point2 is a 2D point in font units.
type Point2 struct {
	X, Y float64
}

// SegmentOp is the type of path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo moves to a new point, starting a new contour.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubicTo draws a cubic bezier curve.
	SegmentOpCubicTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one path segment of a glyph outline.
type Segment struct {
	// Op is the segment operation type.
	Op SegmentOp

	// Points contains the control and end points for this segment.
	//   - MoveTo:  Points[0] is the target point
	//   - LineTo:  Points[0] is the target point
	//   - QuadTo:  Points[0] is control, Points[1] is target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]Point2
}

// Outline is the vector outline of a glyph, in font units.
// An outline consists of zero or more closed contours.
type Outline struct {
	// Segments is the list of path segments that make up the outline.
	// A glyph with no renderable outline (e.g. space) has nil Segments.
	Segments []Segment

	// Advance is the horizontal advance width of the glyph, in font units.
	Advance float64

	// GID is the glyph this outline was extracted from.
	GID GlyphID
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *Outline) SegmentCount() int {
	if o == nil {
		return 0
	}
	return len(o.Segments)
}

// Clone creates a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	clone := &Outline{
		Segments: make([]Segment, len(o.Segments)),
		Advance:  o.Advance,
		GID:      o.GID,
	}
	copy(clone.Segments, o.Segments)
	return clone
}
