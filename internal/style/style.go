// Package style loads border-glyph styles for the gridley CLI.
//
// A style file is a small YAML document naming any subset of the five
// border glyphs; unset glyphs keep their defaults. Example:
//
//	separator: "│"
//	fill: "─"
//	corner: "┼"
//	header_fill: "═"
//	header_corner: "╬"
package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wellmaintained/gridley/pkg/table"
)

// Style holds glyph overrides read from a style file. Empty fields mean
// "keep the default".
type Style struct {
	Separator    string `yaml:"separator"`
	Fill         string `yaml:"fill"`
	Corner       string `yaml:"corner"`
	HeaderFill   string `yaml:"header_fill"`
	HeaderCorner string `yaml:"header_corner"`
}

// Load reads and parses a style file.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style file: %w", err)
	}

	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse style file %s: %w", path, err)
	}
	return &s, nil
}

// Apply overlays the style's non-empty glyphs onto cfg and returns the
// result.
func (s *Style) Apply(cfg table.Config) table.Config {
	if s.Separator != "" {
		cfg.Separator = s.Separator
	}
	if s.Fill != "" {
		cfg.Fill = s.Fill
	}
	if s.Corner != "" {
		cfg.Corner = s.Corner
	}
	if s.HeaderFill != "" {
		cfg.HeaderFill = s.HeaderFill
	}
	if s.HeaderCorner != "" {
		cfg.HeaderCorner = s.HeaderCorner
	}
	return cfg
}
