package face

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := f.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", got)
	}
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs = 0, want > 0")
	}
	if name := f.Name(); name == "" {
		t.Error("Name is empty")
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("Parse of garbage succeeded")
	}
}

func TestGlyphIndex(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if gid := f.GlyphIndex('A'); gid == 0 {
		t.Error("GlyphIndex('A') = 0, want a mapped glyph")
	}

	// Unmapped rune falls back to .notdef
	if gid := f.GlyphIndex('￿'); gid != 0 {
		t.Errorf("GlyphIndex(unmapped) = %d, want 0", gid)
	}
}

func TestGlyphAdvance(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	adv := f.GlyphAdvance(f.GlyphIndex('M'))
	if adv <= 0 || adv > float64(f.UnitsPerEm()) {
		t.Errorf("advance = %v, want within (0, upem]", adv)
	}

	// 'i' is narrower than 'M' in any proportional font
	if narrow := f.GlyphAdvance(f.GlyphIndex('i')); narrow >= adv {
		t.Errorf("advance('i') = %v >= advance('M') = %v", narrow, adv)
	}
}

func TestGlyphOutline(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	outline, err := f.GlyphOutline(f.GlyphIndex('A'))
	if err != nil {
		t.Fatalf("GlyphOutline: %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("outline of 'A' is empty")
	}
	if outline.Advance <= 0 {
		t.Errorf("Advance = %v, want positive", outline.Advance)
	}
	if outline.Segments[0].Op != SegmentOpMoveTo {
		t.Errorf("first op = %v, want MoveTo", outline.Segments[0].Op)
	}

	// Coordinates come out in font units, not scaled pixels
	var maxCoord float64
	for _, seg := range outline.Segments {
		for _, p := range seg.Points {
			if p.X > maxCoord {
				maxCoord = p.X
			}
			if p.Y > maxCoord {
				maxCoord = p.Y
			}
		}
	}
	if maxCoord < 100 {
		t.Errorf("max coordinate = %v, want font-unit scale", maxCoord)
	}
	if maxCoord > float64(2*f.UnitsPerEm()) {
		t.Errorf("max coordinate = %v, want within 2*upem", maxCoord)
	}
}

func TestGlyphOutlineSpace(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	outline, err := f.GlyphOutline(f.GlyphIndex(' '))
	if err != nil {
		t.Fatalf("GlyphOutline: %v", err)
	}
	if !outline.IsEmpty() {
		t.Error("space outline should be empty")
	}
	if outline.Advance <= 0 {
		t.Errorf("space Advance = %v, want positive", outline.Advance)
	}
}

func TestGlyphOutlineInvalidGlyph(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if _, err := f.GlyphOutline(GlyphID(65000)); err == nil {
		t.Error("GlyphOutline of out-of-range glyph succeeded")
	}
}
