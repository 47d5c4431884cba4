package mtsdf

import "testing"

func TestNewGlyphBitmap(t *testing.T) {
	bm := NewGlyphBitmap(24, 16)
	if bm.Width != 24 || bm.Height != 16 {
		t.Errorf("size = %dx%d, want 24x16", bm.Width, bm.Height)
	}
	if len(bm.Data) != 24*16 {
		t.Errorf("len(Data) = %d, want %d", len(bm.Data), 24*16)
	}
	for i, p := range bm.Data {
		if p != 0 {
			t.Fatalf("Data[%d] = %#08x, want zero-initialized", i, p)
		}
	}
}

func TestNewGlyphBitmapZeroSize(t *testing.T) {
	bm := NewGlyphBitmap(0, 16)
	if len(bm.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(bm.Data))
	}
}

func TestNewGlyphBitmapNegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative size")
		}
	}()
	NewGlyphBitmap(-1, 16)
}

func TestPixelRoundTrip(t *testing.T) {
	bm := NewGlyphBitmap(8, 8)
	bm.SetPixel(3, 5, 0xAABBCCDD)

	if got := bm.Pixel(3, 5); got != 0xAABBCCDD {
		t.Errorf("Pixel = %#08x, want 0xAABBCCDD", got)
	}
	if got := bm.Pixel(5, 3); got != 0 {
		t.Errorf("transposed pixel = %#08x, want 0", got)
	}
}

func TestUnpack(t *testing.T) {
	r, g, b, a := Unpack(0x12345678)
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Errorf("Unpack = %#02x,%#02x,%#02x,%#02x, want 12,34,56,78", r, g, b, a)
	}
}

func TestClear(t *testing.T) {
	bm := NewGlyphBitmap(4, 4)
	for i := range bm.Data {
		bm.Data[i] = 0xFFFFFFFF
	}
	bm.Clear()
	for i, p := range bm.Data {
		if p != 0 {
			t.Fatalf("Data[%d] = %#08x after Clear, want 0", i, p)
		}
	}
}

func TestDataBytes(t *testing.T) {
	bm := NewGlyphBitmap(2, 1)
	bm.SetPixel(0, 0, 0x11223344)
	bm.SetPixel(1, 0, 0xAABBCCDD)

	got := bm.DataBytes()
	want := []byte{0x11, 0x22, 0x33, 0x44, 0xAA, 0xBB, 0xCC, 0xDD}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}

	// The returned slice is a copy
	got[0] = 0xFF
	if bm.Pixel(0, 0) != 0x11223344 {
		t.Error("mutating DataBytes result affected the bitmap")
	}
}

func TestPackChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint32
	}{
		{0, 0},
		{0.5, 128},
		{0.25, 64},
		{-0.5, 0},
		{2.0, 255},
	}
	for _, tt := range tests {
		if got := packChannel(tt.in); got != tt.want {
			t.Errorf("packChannel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPackChannelSaturates(t *testing.T) {
	// Full coverage must stay full: 1.0 saturates to 255, never wraps.
	if got := packChannel(1.0); got != 255 {
		t.Errorf("packChannel(1.0) = %d, want 255", got)
	}
	if got := packChannel(0.999); got != 255 {
		t.Errorf("packChannel(0.999) = %d, want 255", got)
	}
}

func TestCopyTo(t *testing.T) {
	src := NewGlyphBitmap(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetPixel(x, y, uint32(0x100+y*3+x))
		}
	}

	dst := NewGlyphBitmap(8, 8)
	for i := range dst.Data {
		dst.Data[i] = 0xDEADBEEF
	}

	src.CopyTo(dst, 2, 3)

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			got := dst.Pixel(x, y)
			inBlit := x >= 2 && x < 5 && y >= 3 && y < 5
			if inBlit {
				want := uint32(0x100 + (y-3)*3 + (x - 2))
				if got != want {
					t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
				}
			} else if got != 0xDEADBEEF {
				t.Errorf("pixel (%d,%d) = %#x, want untouched", x, y, got)
			}
		}
	}
}

func TestCopyToExactFit(t *testing.T) {
	src := NewGlyphBitmap(4, 4)
	dst := NewGlyphBitmap(4, 4)
	src.SetPixel(3, 3, 42)

	src.CopyTo(dst, 0, 0)
	if dst.Pixel(3, 3) != 42 {
		t.Error("exact-fit blit did not copy the last pixel")
	}
}

func TestCopyToOutOfBoundsPanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"overflow right", 6, 0},
		{"overflow bottom", 0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			src := NewGlyphBitmap(3, 3)
			dst := NewGlyphBitmap(8, 8)
			src.CopyTo(dst, tt.x, tt.y)
		})
	}
}
