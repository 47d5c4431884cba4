package mtsdf

import (
	"math"

	"github.com/gogpu/mtsdf/face"
)

// Contour is a closed loop of edges.
// A glyph typically consists of one or more contours.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge

	// Winding is the signed area of the contour. The sign gives the
	// winding direction: positive = counter-clockwise.
	Winding float64
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}

	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// CalculateWinding computes and stores the contour's signed area via the
// shoelace formula over edge endpoints.
func (c *Contour) CalculateWinding() {
	var area float64
	for i := range c.Edges {
		p0 := c.Edges[i].StartPoint()
		p1 := c.Edges[i].EndPoint()
		area += p0.Cross(p1)
	}
	c.Winding = area / 2
}

// Shape is a complete glyph shape consisting of contours.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []*Contour

	// Bounds is the overall bounding box.
	Bounds Rect
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// CalculateBounds computes and stores the overall bounding box.
func (s *Shape) CalculateBounds() {
	if len(s.Contours) == 0 {
		s.Bounds = Rect{}
		return
	}

	s.Bounds = s.Contours[0].Bounds()
	for i := 1; i < len(s.Contours); i++ {
		s.Bounds = s.Bounds.Union(s.Contours[i].Bounds())
	}
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// Validate checks that every contour is properly closed.
func (s *Shape) Validate() bool {
	for _, contour := range s.Contours {
		if len(contour.Edges) == 0 {
			continue
		}

		first := contour.Edges[0].StartPoint()
		last := contour.Edges[len(contour.Edges)-1].EndPoint()
		if math.Abs(first.X-last.X) > 1e-6 || math.Abs(first.Y-last.Y) > 1e-6 {
			return false
		}
	}
	return true
}

// FromOutline converts a glyph outline into a Shape of typed edges with
// computed windings and bounds. Degenerate zero-length line segments are
// dropped.
func FromOutline(outline *face.Outline) *Shape {
	shape := &Shape{}
	if outline.IsEmpty() {
		return shape
	}

	var current *Contour
	var pos Point

	closeContour := func() {
		if current != nil && len(current.Edges) > 0 {
			current.CalculateWinding()
			shape.AddContour(current)
		}
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case face.SegmentOpMoveTo:
			closeContour()
			current = &Contour{}
			pos = outlinePoint(seg.Points[0])

		case face.SegmentOpLineTo:
			if current == nil {
				current = &Contour{}
			}
			end := outlinePoint(seg.Points[0])
			if end.Sub(pos).LengthSquared() > 1e-12 {
				current.AddEdge(NewLinearEdge(pos, end))
			}
			pos = end

		case face.SegmentOpQuadTo:
			if current == nil {
				current = &Contour{}
			}
			control := outlinePoint(seg.Points[0])
			end := outlinePoint(seg.Points[1])
			current.AddEdge(NewQuadraticEdge(pos, control, end))
			pos = end

		case face.SegmentOpCubicTo:
			if current == nil {
				current = &Contour{}
			}
			control1 := outlinePoint(seg.Points[0])
			control2 := outlinePoint(seg.Points[1])
			end := outlinePoint(seg.Points[2])
			current.AddEdge(NewCubicEdge(pos, control1, control2, end))
			pos = end
		}
	}
	closeContour()

	shape.CalculateBounds()
	return shape
}

// outlinePoint converts a face point to shape space.
func outlinePoint(p face.Point2) Point {
	return Point{X: p.X, Y: p.Y}
}

// AssignColors assigns edge colors so that sharp corners survive the
// median decode: edges meeting at an angle sharper than angleThreshold
// end up on different channel pairs.
func AssignColors(shape *Shape, angleThreshold float64) {
	for _, contour := range shape.Contours {
		assignContourColors(contour, angleThreshold)
	}
}

// assignContourColors colors the edges of a single contour.
func assignContourColors(contour *Contour, angleThreshold float64) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}
	if n == 1 {
		// Single edge gets all channels
		contour.Edges[0].Color = ColorWhite
		return
	}

	// Detect corners: sharp direction changes between consecutive edges
	var corners []int
	for i := 0; i < n; i++ {
		dirOut := contour.Edges[i].DirectionAt(1).Normalized()
		dirIn := contour.Edges[(i+1)%n].DirectionAt(0).Normalized()
		if AngleBetween(dirOut, dirIn) > angleThreshold {
			corners = append(corners, i)
		}
	}

	if len(corners) == 0 {
		// Smooth contour - every edge carries all channels
		for i := range contour.Edges {
			contour.Edges[i].Color = ColorWhite
		}
		return
	}

	// Cycle the palette across the runs between corners
	palette := []EdgeColor{ColorCyan, ColorMagenta, ColorYellow}
	colorIdx := 0
	for i := 0; i < len(corners); i++ {
		start := corners[i]
		end := corners[(i+1)%len(corners)]
		color := palette[colorIdx%len(palette)]
		colorIdx++

		if end <= start {
			end += n
		}
		for j := start + 1; j <= end; j++ {
			contour.Edges[j%n].Color = color
		}
	}

	// Corner edges carry the union of both adjacent colors so the corner
	// stays representable in at least two channels.
	for _, cornerIdx := range corners {
		prevColor := contour.Edges[cornerIdx].Color
		nextColor := contour.Edges[(cornerIdx+1)%n].Color
		if prevColor == nextColor {
			contour.Edges[cornerIdx].Color = ColorWhite
		} else {
			contour.Edges[cornerIdx].Color = prevColor | nextColor
		}
	}
}

// EdgeSelectorFunc selects edges based on color.
type EdgeSelectorFunc func(color EdgeColor) bool

// SelectRed reports whether the color includes red.
func SelectRed(color EdgeColor) bool { return color.HasRed() }

// SelectGreen reports whether the color includes green.
func SelectGreen(color EdgeColor) bool { return color.HasGreen() }

// SelectBlue reports whether the color includes blue.
func SelectBlue(color EdgeColor) bool { return color.HasBlue() }
