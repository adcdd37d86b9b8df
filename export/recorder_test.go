package export

import (
	"math"
	"unicode/utf8"
)

// drawOp is one recorded Surface call.
type drawOp struct {
	Op    string
	Rect  Rect
	Text  string
	Style TextStyle
	Align Align
	Paint Paint
}

// recorder is a Surface that keeps every call so tests can inspect layout
// without rendering. Text width is a fixed fraction of the font size per
// rune, bold a little wider.
type recorder struct {
	ops []drawOp
}

func (r *recorder) AddPage() {
	r.ops = append(r.ops, drawOp{Op: "page"})
}

func (r *recorder) Rect(rect Rect, p Paint) {
	r.ops = append(r.ops, drawOp{Op: "rect", Rect: rect, Paint: p})
}

func (r *recorder) Ellipse(rect Rect, fill Color) {
	r.ops = append(r.ops, drawOp{Op: "ellipse", Rect: rect, Paint: filled(fill)})
}

func (r *recorder) Cell(rect Rect, text string, st TextStyle, align Align) {
	r.ops = append(r.ops, drawOp{Op: "cell", Rect: rect, Text: text, Style: st, Align: align})
}

func (r *recorder) Block(x, y, w, lineHeight float64, text string, st TextStyle, align Align) float64 {
	lines := math.Max(1, math.Ceil(r.TextWidth(text, st.Font)/w))
	h := lines * lineHeight
	r.ops = append(r.ops, drawOp{Op: "block", Rect: Rect{x, y, w, h}, Text: text, Style: st, Align: align})
	return h
}

func (r *recorder) TextWidth(text string, f Font) float64 {
	w := float64(utf8.RuneCountInString(text)) * f.Size * 0.2
	if f.Bold {
		w *= 1.1
	}
	return w
}

func (r *recorder) only(op string) []drawOp {
	var out []drawOp
	for _, o := range r.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.ops = nil
}
