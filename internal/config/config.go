// Package config provides viewer configuration loaded from YAML files, with
// an embedded default as the final fallback.
package config

// ViewerConfig controls how the TUI viewer draws scenes.
type ViewerConfig struct {
	Glyphs           GlyphConfig `yaml:"glyphs"`
	IncludeEndpoints bool        `yaml:"include_endpoints"`
	Padding          float64     `yaml:"padding"`
}

// GlyphConfig holds the runes used for each plotted element. Each value is a
// string in YAML; only the first rune is used.
type GlyphConfig struct {
	Segment  string `yaml:"segment"`
	Rect     string `yaml:"rect"`
	Crossing string `yaml:"crossing"`
	Endpoint string `yaml:"endpoint"`
}

// Rune returns the first rune of s, or fallback if s is empty.
func Rune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// DefaultViewerConfig returns the hardcoded default configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		Glyphs: GlyphConfig{
			Segment:  "·",
			Rect:     "░",
			Crossing: "╳",
			Endpoint: "o",
		},
		IncludeEndpoints: false,
		Padding:          1,
	}
}
