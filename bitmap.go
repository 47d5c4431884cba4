package mtsdf

import "fmt"

// GlyphBitmap is a raw pixel buffer of packed 32-bit pixels, row-major,
// top to bottom. Each pixel packs four 8-bit channels as
// R<<24 | G<<16 | B<<8 | A.
type GlyphBitmap struct {
	// Data holds one packed value per pixel; len(Data) == Width*Height.
	Data []uint32

	// Width and Height are the buffer dimensions in pixels.
	Width, Height int
}

// NewGlyphBitmap allocates a zero-initialized bitmap. Zero dimensions
// are permitted and produce an empty buffer.
func NewGlyphBitmap(width, height int) *GlyphBitmap {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("mtsdf: negative bitmap size %dx%d", width, height))
	}
	return &GlyphBitmap{
		Data:   make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

// Pixel returns the packed pixel at (x, y).
func (b *GlyphBitmap) Pixel(x, y int) uint32 {
	return b.Data[y*b.Width+x]
}

// SetPixel sets the packed pixel at (x, y).
func (b *GlyphBitmap) SetPixel(x, y int, pixel uint32) {
	b.Data[y*b.Width+x] = pixel
}

// Unpack splits a packed pixel into its four channels.
func Unpack(pixel uint32) (r, g, bl, a uint8) {
	return uint8(pixel >> 24), uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}

// Clear resets every pixel to zero.
func (b *GlyphBitmap) Clear() {
	clear(b.Data)
}

// DataBytes returns the pixel buffer as a flat byte sequence of length
// 4*Width*Height for texture upload: four bytes per pixel in R, G, B, A
// order (high byte to low byte of the packed value), independent of host
// byte order. The returned slice is freshly allocated on each call.
func (b *GlyphBitmap) DataBytes() []byte {
	out := make([]byte, 0, 4*len(b.Data))
	for _, p := range b.Data {
		out = append(out, byte(p>>24), byte(p>>16), byte(p>>8), byte(p))
	}
	return out
}

// CopyTo blits this bitmap into dst with its top-left corner at (x, y),
// copying each row as one contiguous run.
//
// A destination rectangle that does not fit entirely inside dst is a
// caller-side packing bug: CopyTo panics rather than silently truncating
// and corrupting neighboring pixels.
func (b *GlyphBitmap) CopyTo(dst *GlyphBitmap, x, y int) {
	if x < 0 || y < 0 || x+b.Width > dst.Width || y+b.Height > dst.Height {
		panic(fmt.Sprintf("mtsdf: out-of-bounds blit of %dx%d into %dx%d at (%d, %d)",
			b.Width, b.Height, dst.Width, dst.Height, x, y))
	}

	srcOff := 0
	dstOff := y*dst.Width + x
	for row := 0; row < b.Height; row++ {
		copy(dst.Data[dstOff:dstOff+b.Width], b.Data[srcOff:srcOff+b.Width])
		srcOff += b.Width
		dstOff += dst.Width
	}
}
