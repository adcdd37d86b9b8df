package export

import "fmt"

// Color is an sRGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Gray returns the neutral color with all channels set to v.
func Gray(v uint8) Color {
	return Color{v, v, v}
}

// argb formats c for GoPPT, which takes opaque ARGB hex strings.
func (c Color) argb() string {
	return "FF" + c.hex()
}

func (c Color) hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Deck palette
var (
	Navy     = Color{26, 26, 46}
	Coral    = Color{255, 107, 107}
	Amber    = Color{254, 202, 87}
	Mint     = Color{29, 209, 161}
	Cyan     = Color{72, 219, 251}
	Lavender = Color{167, 139, 250}

	panelFill   = Color{40, 40, 60}
	panelStroke = Color{80, 80, 100}
	chipFill    = Color{80, 40, 40}
	chipText    = Color{255, 150, 150}
	codeFill    = Color{20, 20, 30}
	codeStroke  = Color{60, 60, 80}
)

// FontFamily is one of the PDF core font families.
type FontFamily string

const (
	Helvetica FontFamily = "Helvetica"
	Courier   FontFamily = "Courier"
)

// Font selects a core font face and size in points.
type Font struct {
	Family FontFamily
	Bold   bool
	Size   float64
}

// style returns the gofpdf style string for f.
func (f Font) style() string {
	if f.Bold {
		return "B"
	}
	return ""
}

// TextStyle is the complete, immutable state needed to draw text.
type TextStyle struct {
	Font  Font
	Color Color
}

func textStyle(family FontFamily, bold bool, size float64, color Color) TextStyle {
	return TextStyle{Font: Font{Family: family, Bold: bold, Size: size}, Color: color}
}

// Paint describes how a shape is filled and outlined. A nil field skips
// that part.
type Paint struct {
	Fill   *Color
	Stroke *Color
}

func filled(c Color) Paint {
	return Paint{Fill: &c}
}

func framed(fill, stroke Color) Paint {
	return Paint{Fill: &fill, Stroke: &stroke}
}

// Align is horizontal text alignment inside a cell.
type Align string

const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// Rect is an axis-aligned box in millimeters, origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
