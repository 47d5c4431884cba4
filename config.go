package mtsdf

import "math"

// Config holds glyph distance field generation parameters.
type Config struct {
	// UnitsPerEm is the font's internal unit scale. When zero, the value
	// reported by the face is used.
	UnitsPerEm float64

	// PxPerEm is the target rendering resolution in pixels per em.
	// Default: 32
	PxPerEm float64

	// Range is the distance field range in font units: how far from an
	// edge the signed distance is measured before it saturates.
	// Default: 4.0
	Range float64

	// AngleThreshold is the minimum angle (in radians) to consider a
	// corner sharp. Corners sharper than this get different channel
	// colors to preserve them.
	// Default: pi/3 (60 degrees)
	AngleThreshold float64

	// Padding is the total number of margin pixels added to each bitmap
	// axis (half on each side) so the distance range does not clip at
	// the border. Default: 8
	Padding int

	// MinSize is the floor applied to bitmap width and height, keeping
	// degenerate glyphs usable for atlas packing and GPU sampling.
	// Default: 16
	MinSize int

	// ErrorThreshold is the maximum deviation of a single channel from
	// the per-pixel median, as a fraction of the [0,1] value range,
	// before multi-channel error correction flattens it.
	// Default: 0.35
	ErrorThreshold float64
}

// DefaultConfig returns the default generation configuration.
// These values work well for most text rendering scenarios.
func DefaultConfig() Config {
	return Config{
		PxPerEm:        32,
		Range:          4.0,
		AngleThreshold: math.Pi / 3, // 60 degrees
		Padding:        8,
		MinSize:        16,
		ErrorThreshold: 0.35,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.UnitsPerEm < 0 {
		return &ConfigError{Field: "UnitsPerEm", Reason: "must be non-negative"}
	}
	if c.PxPerEm <= 0 {
		return &ConfigError{Field: "PxPerEm", Reason: "must be positive"}
	}
	if c.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.MinSize < 1 {
		return &ConfigError{Field: "MinSize", Reason: "must be at least 1"}
	}
	if c.MinSize > 4096 {
		return &ConfigError{Field: "MinSize", Reason: "must be at most 4096"}
	}
	if c.ErrorThreshold <= 0 || c.ErrorThreshold >= 1 {
		return &ConfigError{Field: "ErrorThreshold", Reason: "must be in (0, 1)"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "mtsdf: invalid config." + e.Field + ": " + e.Reason
}
