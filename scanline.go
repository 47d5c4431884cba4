package mtsdf

import "sort"

// scanline holds the crossings of a shape with one horizontal line,
// sorted by x, for nonzero-winding fill queries.
type scanline struct {
	crossings []crossing
}

// newScanline intersects the shape with the horizontal line at y.
func newScanline(shape *Shape, y float64) *scanline {
	s := &scanline{}
	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			s.crossings = contour.Edges[i].Crossings(y, s.crossings)
		}
	}
	sort.Slice(s.crossings, func(i, j int) bool {
		return s.crossings[i].x < s.crossings[j].x
	})
	return s
}

// Filled reports whether the point at x on this line is inside the shape
// under the nonzero winding rule.
func (s *scanline) Filled(x float64) bool {
	winding := 0
	for _, c := range s.crossings {
		if c.x >= x {
			break
		}
		winding += c.dir
	}
	return winding != 0
}
