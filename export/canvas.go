package export

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Content column used by full-width lines.
const (
	contentX = 20.0
	contentW = 257.0
)

// Defaults for optional widget arguments.
const (
	DefaultTitleY       = 60.0
	DefaultTitleSize    = 40.0
	DefaultSubtitleY    = 85.0
	DefaultSubtitleSize = 18.0
	DefaultHeadingY     = 20.0
	DefaultBodyX        = 20.0
	DefaultBodyY        = 45.0
	DefaultBodySize     = 14.0
	DefaultBulletX      = 25.0
	DefaultCaptionSize  = 13.0
)

// Bullet and box geometry.
const (
	bulletLine    = 8.0
	bulletGap     = 2.0
	bulletDot     = 4.0
	bulletIndent  = 8.0
	boxItemsTop   = 18.0
	boxItemPitch  = 7.0
	boxItemHeight = 6.0
	boxDot        = 3.0
	chipHeight    = 10.0
	chipPadding   = 12.0
	chipGap       = 5.0
)

var (
	pageNumberStyle = textStyle(Helvetica, false, 10, Gray(150))
	headingStyle    = textStyle(Helvetica, true, 28, Coral)
	bulletStyle     = textStyle(Helvetica, false, 13, Gray(220))
	highlightStyle  = textStyle(Helvetica, true, 13, Amber)
	boxTitleStyle   = textStyle(Helvetica, true, 14, Cyan)
	boxItemStyle    = textStyle(Helvetica, false, 11, Gray(200))
	rowLabelStyle   = textStyle(Helvetica, false, 14, Gray(180))
	statValueStyle  = textStyle(Helvetica, true, 28, Coral)
	statLabelStyle  = textStyle(Helvetica, false, 11, Gray(150))
	chipStyle       = textStyle(Helvetica, false, 9, chipText)
	codeStyle       = textStyle(Courier, false, 12, Cyan)
	kickerStyle     = textStyle(Helvetica, false, 11, Amber)
	noteStyle       = textStyle(Helvetica, false, 11, Gray(200))
)

// Canvas composes slide widgets out of Surface primitives. It keeps a text
// cursor so that consecutive bullets flow down the page; everything else is
// placed at explicit coordinates.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	s     Surface
	x, y  float64
	pages int
}

// NewCanvas returns a Canvas drawing on s.
func NewCanvas(s Surface) *Canvas {
	return &Canvas{s: s}
}

// Surface returns the underlying surface.
func (c *Canvas) Surface() Surface {
	return c.s
}

// Pages returns the number of pages started.
func (c *Canvas) Pages() int {
	return c.pages
}

// Cursor returns the current text position.
func (c *Canvas) Cursor() (x, y float64) {
	return c.x, c.y
}

// MoveTo sets the text position.
func (c *Canvas) MoveTo(x, y float64) {
	c.x, c.y = x, y
}

// NewPage starts a slide filled with bg, or navy when bg is nil, and resets
// the cursor to the top margin.
func (c *Canvas) NewPage(bg *Color) {
	fill := Navy
	if bg != nil {
		fill = *bg
	}
	c.s.AddPage()
	c.pages++
	c.s.Rect(Rect{0, 0, PageWidth, PageHeight}, filled(fill))
	c.x, c.y = Margin, Margin
}

// PageNumber prints n in the bottom right corner. The cursor is left alone.
func (c *Canvas) PageNumber(n int) {
	c.s.Cell(Rect{280, 195, 10, 10}, strconv.Itoa(n), pageNumberStyle, AlignRight)
}

// Text draws a single line in r and moves the cursor to the cell's end.
func (c *Canvas) Text(r Rect, text string, st TextStyle, align Align) {
	c.s.Cell(r, text, st, align)
	c.x, c.y = r.Right(), r.Y
}

func (c *Canvas) Title(text string, y, size float64) {
	c.Text(Rect{contentX, y, contentW, 20}, text, textStyle(Helvetica, true, size, Coral), AlignCenter)
}

func (c *Canvas) Subtitle(text string, y, size float64) {
	c.Text(Rect{contentX, y, contentW, 10}, text, textStyle(Helvetica, false, size, Gray(200)), AlignCenter)
}

func (c *Canvas) Heading(text string, y float64) {
	c.Text(Rect{contentX, y, contentW, 15}, text, headingStyle, AlignLeft)
}

// Body draws a paragraph wrapped to the content width with 8mm lines. The
// cursor ends below the last line.
func (c *Canvas) Body(text string, x, y, size float64) {
	h := c.s.Block(x, y, contentW, 8, text, textStyle(Helvetica, false, size, Gray(230)), AlignLeft)
	c.x, c.y = Margin, y+h
}

// Kicker draws the small uppercase line that sits above a title.
func (c *Canvas) Kicker(text string, y float64) {
	c.Text(Rect{contentX, y, contentW, 10}, cases.Upper(language.Und).String(text), kickerStyle, AlignCenter)
}

// Caption draws a muted centered line across the content column.
func (c *Canvas) Caption(text string, y, size float64) {
	c.Text(Rect{contentX, y, contentW, 10}, text, textStyle(Helvetica, false, size, Gray(150)), AlignCenter)
}

// Label draws a short bold line in color.
func (c *Canvas) Label(text string, x, y float64, color Color) {
	c.Text(Rect{x, y, 100, 8}, text, textStyle(Helvetica, true, 12, color), AlignLeft)
}

// Note draws a small plain line running to the right margin.
func (c *Canvas) Note(text string, x, y float64) {
	c.Text(Rect{x, y, PageWidth - Margin - x, 6}, text, noteStyle, AlignLeft)
}

// Bullet draws a dot at x and the text to its right, on the cursor's line.
// When highlight occurs exactly once in text that span is drawn bold in
// amber; otherwise the text is drawn plain. The cursor moves to the margin
// of the next bullet line.
func (c *Canvas) Bullet(text string, x float64, highlight string) {
	y := c.y
	c.s.Ellipse(Rect{x, y + 3, bulletDot, bulletDot}, Coral)

	tx := x + bulletIndent
	if pre, hl, post, ok := SplitHighlight(text, highlight); ok {
		w := c.s.TextWidth(pre, bulletStyle.Font)
		c.s.Cell(Rect{tx, y, w, bulletLine}, pre, bulletStyle, AlignLeft)
		tx += w
		w = c.s.TextWidth(hl, highlightStyle.Font)
		c.s.Cell(Rect{tx, y, w, bulletLine}, hl, highlightStyle, AlignLeft)
		tx += w
		c.s.Cell(Rect{tx, y, PageWidth - Margin - tx, bulletLine}, post, bulletStyle, AlignLeft)
	} else {
		c.s.Cell(Rect{tx, y, PageWidth - Margin - tx, bulletLine}, text, bulletStyle, AlignLeft)
	}

	c.x, c.y = Margin, y+bulletLine+bulletGap
}

// BulletAt moves the cursor to (x, y) and draws a bullet there.
func (c *Canvas) BulletAt(text string, x, y float64, highlight string) {
	c.MoveTo(x, y)
	c.Bullet(text, x, highlight)
}

// SplitHighlight splits text around highlight. ok is false unless highlight
// is non-empty and occurs exactly once.
func SplitHighlight(text, highlight string) (prefix, match, suffix string, ok bool) {
	if highlight == "" || strings.Count(text, highlight) != 1 {
		return "", "", "", false
	}
	prefix, suffix, _ = strings.Cut(text, highlight)
	return prefix, highlight, suffix, true
}

// Box draws a framed panel with a title and a dotted item list. Items are
// not clipped to the panel.
func (c *Canvas) Box(x, y, w, h float64, title string, items []string) {
	c.s.Rect(Rect{x, y, w, h}, framed(panelFill, panelStroke))
	c.s.Cell(Rect{x + 5, y + 5, w - 10, 8}, title, boxTitleStyle, AlignLeft)

	row := y + boxItemsTop
	c.x, c.y = x+8, row
	for _, item := range items {
		c.s.Ellipse(Rect{x + 8, row + 2, boxDot, boxDot}, Coral)
		c.s.Cell(Rect{x + 14, row, w - 20, boxItemHeight}, item, boxItemStyle, AlignLeft)
		row += boxItemPitch
		c.x, c.y = Margin, row
	}
}

// ValueRow draws a full-width bar with a label and a right-aligned value.
func (c *Canvas) ValueRow(label, value string, color Color, y float64) {
	c.s.Rect(Rect{30, y, 237, 18}, filled(panelFill))
	c.s.Cell(Rect{35, y + 4, 100, 10}, label, rowLabelStyle, AlignLeft)
	c.Text(Rect{200, y + 3, 60, 10}, value, textStyle(Helvetica, true, 18, color), AlignRight)
}

// Stat draws a 70x50 tile with a large value over a small label.
func (c *Canvas) Stat(x, y float64, value, label string) {
	c.s.Rect(Rect{x, y, 70, 50}, filled(panelFill))
	c.s.Cell(Rect{x, y + 8, 70, 15}, value, statValueStyle, AlignCenter)
	c.Text(Rect{x, y + 30, 70, 10}, label, statLabelStyle, AlignCenter)
}

// Chip draws a tag at (x, y) sized to its text and returns the horizontal
// advance for the next chip, gap included.
func (c *Canvas) Chip(text string, x, y float64) float64 {
	w := c.s.TextWidth(text, chipStyle.Font) + chipPadding
	c.s.Rect(Rect{x, y, w, chipHeight}, framed(chipFill, Coral))
	c.Text(Rect{x, y + 2, w, 6}, text, chipStyle, AlignCenter)
	return w + chipGap
}

// Chips lays out items left to right from (x, y) and returns the x where a
// following chip would start.
func (c *Canvas) Chips(items []string, x, y float64) float64 {
	for _, item := range items {
		x += c.Chip(item, x, y)
	}
	return x
}

// Code draws a monospace line in a dark strip.
func (c *Canvas) Code(text string, y float64) {
	c.s.Rect(Rect{40, y, 217, 14}, framed(codeFill, codeStroke))
	c.Text(Rect{40, y + 3, 217, 8}, text, codeStyle, AlignCenter)
}
