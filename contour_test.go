package mtsdf

import (
	"math"
	"testing"

	"github.com/gogpu/mtsdf/face"
)

// squareOutline builds a counter-clockwise square outline with the given
// side length, anchored at the origin.
func squareOutline(side float64) *face.Outline {
	return &face.Outline{
		Segments: []face.Segment{
			{Op: face.SegmentOpMoveTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: side, Y: 0}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: side, Y: side}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 0, Y: side}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
		},
		Advance: side,
	}
}

func TestFromOutlineSquare(t *testing.T) {
	shape := FromOutline(squareOutline(500))

	if len(shape.Contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(shape.Contours))
	}
	if got := shape.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount = %d, want 4", got)
	}
	if !shape.Validate() {
		t.Error("square contour should be closed")
	}

	want := Rect{MinX: 0, MinY: 0, MaxX: 500, MaxY: 500}
	if shape.Bounds != want {
		t.Errorf("Bounds = %v, want %v", shape.Bounds, want)
	}

	// Counter-clockwise winding is positive
	if w := shape.Contours[0].Winding; w <= 0 {
		t.Errorf("Winding = %v, want positive", w)
	}
	if w := shape.Contours[0].Winding; !almostEqual(w, 500*500) {
		t.Errorf("Winding = %v, want %v", w, 500*500)
	}
}

func TestFromOutlineEmpty(t *testing.T) {
	shape := FromOutline(&face.Outline{})
	if len(shape.Contours) != 0 {
		t.Errorf("contours = %d, want 0", len(shape.Contours))
	}
	if shape.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", shape.EdgeCount())
	}
}

func TestFromOutlineDropsDegenerateLines(t *testing.T) {
	outline := &face.Outline{
		Segments: []face.Segment{
			{Op: face.SegmentOpMoveTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 10, Y: 0}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 10, Y: 10}}},
			{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
		},
	}
	shape := FromOutline(outline)
	if got := shape.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3 (zero-length line dropped)", got)
	}
}

func TestFromOutlineCurves(t *testing.T) {
	outline := &face.Outline{
		Segments: []face.Segment{
			{Op: face.SegmentOpMoveTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
			{Op: face.SegmentOpQuadTo, Points: [3]face.Point2{{X: 5, Y: 10}, {X: 10, Y: 0}}},
			{Op: face.SegmentOpCubicTo, Points: [3]face.Point2{{X: 7, Y: -5}, {X: 3, Y: -5}, {X: 0, Y: 0}}},
		},
	}
	shape := FromOutline(outline)
	if len(shape.Contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(shape.Contours))
	}

	edges := shape.Contours[0].Edges
	if len(edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(edges))
	}
	if edges[0].Type != EdgeQuadratic {
		t.Errorf("edge 0 type = %v, want Quadratic", edges[0].Type)
	}
	if edges[1].Type != EdgeCubic {
		t.Errorf("edge 1 type = %v, want Cubic", edges[1].Type)
	}
	if !shape.Validate() {
		t.Error("curve contour should be closed")
	}
}

func TestFromOutlineMultipleContours(t *testing.T) {
	outer := squareOutline(500)
	inner := []face.Segment{
		// clockwise inner square = hole under nonzero winding
		{Op: face.SegmentOpMoveTo, Points: [3]face.Point2{{X: 100, Y: 100}}},
		{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 100, Y: 400}}},
		{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 400, Y: 400}}},
		{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 400, Y: 100}}},
		{Op: face.SegmentOpLineTo, Points: [3]face.Point2{{X: 100, Y: 100}}},
	}
	outline := &face.Outline{Segments: append(outer.Segments, inner...)}

	shape := FromOutline(outline)
	if len(shape.Contours) != 2 {
		t.Fatalf("contours = %d, want 2", len(shape.Contours))
	}
	if shape.Contours[0].Winding <= 0 {
		t.Error("outer contour should wind positive")
	}
	if shape.Contours[1].Winding >= 0 {
		t.Error("inner contour should wind negative")
	}
}

func TestAssignColorsSharpCorners(t *testing.T) {
	shape := FromOutline(squareOutline(500))
	AssignColors(shape, math.Pi/3)

	edges := shape.Contours[0].Edges
	for i := range edges {
		if edges[i].Color == ColorBlack {
			t.Errorf("edge %d uncolored", i)
		}
		// Corner preservation needs at least two channels per edge
		channels := 0
		if edges[i].Color.HasRed() {
			channels++
		}
		if edges[i].Color.HasGreen() {
			channels++
		}
		if edges[i].Color.HasBlue() {
			channels++
		}
		if channels < 2 {
			t.Errorf("edge %d color %v carries %d channels, want >= 2", i, edges[i].Color, channels)
		}
	}

	// Adjacent edges around a sharp corner must differ in at least one channel
	n := len(edges)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if edges[i].Color == edges[next].Color && edges[i].Color != ColorWhite {
			t.Errorf("edges %d and %d share color %v across a corner", i, next, edges[i].Color)
		}
	}
}

func TestAssignColorsSmoothContour(t *testing.T) {
	// Two gentle arcs approximating a closed lens; no angle exceeds the
	// threshold when it is set high enough.
	outline := &face.Outline{
		Segments: []face.Segment{
			{Op: face.SegmentOpMoveTo, Points: [3]face.Point2{{X: 0, Y: 0}}},
			{Op: face.SegmentOpQuadTo, Points: [3]face.Point2{{X: 50, Y: 30}, {X: 100, Y: 0}}},
			{Op: face.SegmentOpQuadTo, Points: [3]face.Point2{{X: 50, Y: -30}, {X: 0, Y: 0}}},
		},
	}
	shape := FromOutline(outline)
	AssignColors(shape, math.Pi-0.01)

	for i, e := range shape.Contours[0].Edges {
		if e.Color != ColorWhite {
			t.Errorf("edge %d color = %v, want ColorWhite on smooth contour", i, e.Color)
		}
	}
}

func TestEdgeSelectors(t *testing.T) {
	if !SelectRed(ColorMagenta) || SelectRed(ColorCyan) {
		t.Error("SelectRed wrong for magenta/cyan")
	}
	if !SelectGreen(ColorYellow) || SelectGreen(ColorMagenta) {
		t.Error("SelectGreen wrong for yellow/magenta")
	}
	if !SelectBlue(ColorCyan) || SelectBlue(ColorYellow) {
		t.Error("SelectBlue wrong for cyan/yellow")
	}
}
