// Package mtsdf converts single font glyph outlines into multi-channel
// true signed distance field (MTSDF) bitmaps for high-quality, scalable
// text rendering on GPU.
//
// An MTSDF encodes, per pixel, directional signed distances to the glyph
// edges in the R, G and B channels and the true signed distance in the A
// channel. The median of RGB recovers the accurate signed distance at
// sample time, which preserves sharp corners even when the bitmap is
// scaled significantly.
//
// # Pipeline
//
//  1. Extract the glyph outline from a parsed face (package face)
//  2. Build contours of typed edge segments (line, quadratic, cubic)
//  3. Assign channel colors to edges based on corner angles
//  4. Auto-frame the glyph bounds into a padded pixel grid
//  5. Render per-channel signed distances, correct signs against a
//     scanline fill, correct multi-channel artifacts
//  6. Pack into 8-bit RGBA pixels, one 32-bit word per pixel
//
// # Usage
//
//	f, err := face.Parse(fontData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gs, err := mtsdf.NewGlyphShape(f, f.GlyphIndex('A'), mtsdf.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err) // e.g. *GlyphShapeError for glyphs without outlines
//	}
//
//	bitmap := gs.Generate()
//	atlas := mtsdf.NewGlyphBitmap(1024, 1024)
//	bitmap.CopyTo(atlas, penX, penY) // position chosen by the caller
//	upload(atlas.DataBytes())        // 4 bytes per pixel, R,G,B,A
//
// Atlas layout, caching and GPU upload are the caller's responsibility;
// this package only produces the per-glyph pixels and the blit.
//
// # WGSL Shader Example
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
//	@fragment
//	fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
//	    let field = textureSample(glyph_tex, samp, uv);
//	    let sd = median3(field.rgb) - 0.5;
//	    let alpha = clamp(sd * px_range / length(fwidth(uv)) + 0.5, 0.0, 1.0);
//	    return vec4<f32>(color.rgb, color.a * alpha);
//	}
//
// # References
//
//   - msdf-atlas-gen: https://github.com/Chlumsky/msdf-atlas-gen
//   - MSDF paper: "Shape Decomposition for Multi-channel Distance Fields"
package mtsdf
