package export

// Page geometry of a slide, in millimeters (A4 landscape).
const (
	PageWidth  = 297.0
	PageHeight = 210.0

	// Margin is the right page margin; cells that run "to the margin" end
	// at PageWidth - Margin. It is also where the cursor returns after a
	// line break.
	Margin = 10.0
)

// Surface is the page-drawing primitive the Canvas composes slides on.
//
// Drawing is immediate: each call paints onto the current page at once and
// nothing is retained. Calls stack in the order they are made, so a later
// shape covers an earlier one where they overlap. There is no z-order other
// than call order.
//
// Every call carries its complete style. Implementations must not let the
// style of one call leak into another.
type Surface interface {
	// AddPage starts a new page; subsequent calls draw on it.
	AddPage()
	// Rect draws a rectangle.
	Rect(r Rect, p Paint)
	// Ellipse fills the ellipse inscribed in r.
	Ellipse(r Rect, fill Color)
	// Cell draws a single line of text inside r.
	Cell(r Rect, text string, st TextStyle, align Align)
	// Block draws text wrapped to width w starting at (x, y) and returns
	// the height it used.
	Block(x, y, w, lineHeight float64, text string, st TextStyle, align Align) float64
	// TextWidth measures text set in f.
	TextWidth(text string, f Font) float64
}
