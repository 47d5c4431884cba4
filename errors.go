package mtsdf

import (
	"fmt"

	"github.com/gogpu/mtsdf/face"
)

// GlyphShapeError is returned when a face has no renderable outline for
// the requested glyph (e.g. a space or an undefined glyph id). Callers
// typically skip the glyph or substitute a fallback.
type GlyphShapeError struct {
	Glyph face.GlyphID
}

func (e *GlyphShapeError) Error() string {
	return fmt.Sprintf("mtsdf: glyph %d has no outline", e.Glyph)
}

// AutoFramingError is returned when the framing computation cannot fit
// the glyph bounds into the computed pixel grid.
type AutoFramingError struct {
	Glyph  face.GlyphID
	Width  int
	Height int
	Range  float64
}

func (e *AutoFramingError) Error() string {
	return fmt.Sprintf("mtsdf: failed to frame glyph %d into %dx%d (range %g)",
		e.Glyph, e.Width, e.Height, e.Range)
}
