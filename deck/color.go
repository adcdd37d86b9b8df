package deck

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an sRGB color. In YAML it is written as a palette name
// ("coral"), a hex string ("#FF6B6B") or a three-element list.
type Color struct {
	R, G, B uint8
}

// Palette colors that manifests may refer to by name.
var Palette = map[string]Color{
	"navy":     {26, 26, 46},
	"coral":    {255, 107, 107},
	"amber":    {254, 202, 87},
	"mint":     {29, 209, 161},
	"cyan":     {72, 219, 251},
	"lavender": {167, 139, 250},
	"white":    {255, 255, 255},
}

// ParseColor parses a palette name or a #RRGGBB hex string.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := Palette[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var rgb []int
		if err := value.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("line %d: color needs 3 channels, got %d", value.Line, len(rgb))
		}
		for _, ch := range rgb {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("line %d: color channel %d out of range", value.Line, ch)
			}
		}
		*c = Color{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
		return nil
	}
	return fmt.Errorf("line %d: unsupported color value", value.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return "#" + c.Hex(), nil
}
