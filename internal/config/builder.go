package config

import "github.com/superposition/board-chess-club/internal/view"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the position to display.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithOrientation sets which side is at the bottom.
func (b *ConfigBuilder) WithOrientation(o view.Orientation) *ConfigBuilder {
	b.cfg.Orientation = o.String()
	return b
}

// WithMode sets the label mode.
func (b *ConfigBuilder) WithMode(m view.Mode) *ConfigBuilder {
	b.cfg.Mode = m.String()
	return b
}

// WithSquareSize sets the square edge in pixels.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.SquareSize = size
	return b
}

// WithTheme sets both square colors.
func (b *ConfigBuilder) WithTheme(t view.Theme) *ConfigBuilder {
	b.cfg.DarkColor = t.Dark
	b.cfg.LightColor = t.Light
	return b
}

// WithIconBase serves piece images from base instead of Wikimedia.
func (b *ConfigBuilder) WithIconBase(base string) *ConfigBuilder {
	b.cfg.IconBase = base
	return b
}
