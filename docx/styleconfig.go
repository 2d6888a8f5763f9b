package docx

import (
	"encoding/json"
	"fmt"
	"os"
)

// TextStyleConfig describes the formatting for one class of text. Zero
// values mean "inherit": an empty FontName keeps the document default and
// a zero FontSize keeps the base size.
type TextStyleConfig struct {
	FontName          string   `json:"font_name,omitempty"`
	FontSize          float64  `json:"font_size,omitempty"`
	Bold              bool     `json:"bold,omitempty"`
	Italic            bool     `json:"italic,omitempty"`
	ColorRGB          [3]uint8 `json:"color_rgb"`
	SpaceBeforePt     float64  `json:"space_before_pt,omitempty"`
	SpaceAfterPt      float64  `json:"space_after_pt,omitempty"`
	LineSpacing       float64  `json:"line_spacing,omitempty"`
	FirstLineIndentCm float64  `json:"first_line_indent_cm,omitempty"`
	BackgroundColor   string   `json:"background_color,omitempty"`
	FontSizeRatio     float64  `json:"font_size_ratio,omitempty"`
}

// StyleConfig maps each structural class to its formatting. It round-trips
// through JSON so a configuration can be saved, hand-edited and loaded back.
type StyleConfig struct {
	H1         TextStyleConfig `json:"H1"`
	H2         TextStyleConfig `json:"H2"`
	H3         TextStyleConfig `json:"H3"`
	H4         TextStyleConfig `json:"H4"`
	H5         TextStyleConfig `json:"H5"`
	H6         TextStyleConfig `json:"H6"`
	Paragraph  TextStyleConfig `json:"paragraph"`
	CodeBlock  TextStyleConfig `json:"code_block"`
	InlineCode TextStyleConfig `json:"inline_code"`
}

// DefaultStyleConfig returns the built-in style set: bold headings that
// shrink and fade with depth, 12pt body text at 1.5 line spacing, and
// Courier New code on a light gray field.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		H1: TextStyleConfig{FontSize: 24, Bold: true, SpaceBeforePt: 12, SpaceAfterPt: 6},
		H2: TextStyleConfig{FontSize: 20, Bold: true, SpaceBeforePt: 10, SpaceAfterPt: 5},
		H3: TextStyleConfig{FontSize: 18, Bold: true, SpaceBeforePt: 8, SpaceAfterPt: 4},
		H4: TextStyleConfig{FontSize: 16, Bold: true, ColorRGB: [3]uint8{50, 50, 50}, SpaceBeforePt: 6, SpaceAfterPt: 3},
		H5: TextStyleConfig{FontSize: 14, Bold: true, ColorRGB: [3]uint8{70, 70, 70}, SpaceBeforePt: 5, SpaceAfterPt: 2},
		H6: TextStyleConfig{FontSize: 12, Bold: true, ColorRGB: [3]uint8{90, 90, 90}, SpaceBeforePt: 4, SpaceAfterPt: 2},
		Paragraph: TextStyleConfig{
			FontSize:    12,
			LineSpacing: 1.5,
			SpaceAfterPt: 6,
		},
		CodeBlock: TextStyleConfig{
			FontName:        "Courier New",
			FontSize:        10,
			LineSpacing:     1.0,
			SpaceBeforePt:   6,
			SpaceAfterPt:    6,
			BackgroundColor: "F0F0F0",
		},
		InlineCode: TextStyleConfig{
			FontName:        "Courier New",
			ColorRGB:        [3]uint8{50, 50, 50},
			BackgroundColor: "F0F0F0",
			FontSizeRatio:   0.9,
		},
	}
}

// Heading returns the style for a heading level, clamping out-of-range
// levels to the nearest valid one.
func (c StyleConfig) Heading(level int) TextStyleConfig {
	switch {
	case level <= 1:
		return c.H1
	case level == 2:
		return c.H2
	case level == 3:
		return c.H3
	case level == 4:
		return c.H4
	case level == 5:
		return c.H5
	default:
		return c.H6
	}
}

// LoadStyleConfig reads a JSON style configuration from path. Keys absent
// from the file keep their default values.
func LoadStyleConfig(path string) (StyleConfig, error) {
	cfg := DefaultStyleConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading style config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing style config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path as indented JSON.
func (c StyleConfig) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding style config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing style config: %w", err)
	}
	return nil
}
