package export

import (
	"bytes"
	"fmt"
	"math"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/phpdave11/gofpdf"
)

// 16:9 slide, in EMU
const (
	emuPerInch     = 914400
	emuPerMM       = 36000
	pptSlideWidth  = 10.0 * emuPerInch
	pptSlideHeight = 5.625 * emuPerInch
)

// pptScale maps the A4 page onto the slide, keeping the aspect ratio, and
// pptOffsetX centers the result horizontally.
var (
	pptScale   = math.Min(pptSlideWidth/(PageWidth*emuPerMM), pptSlideHeight/(PageHeight*emuPerMM))
	pptOffsetX = (pptSlideWidth - PageWidth*emuPerMM*pptScale) / 2
	pptOffsetY = (pptSlideHeight - PageHeight*emuPerMM*pptScale) / 2
)

func solidFill(c Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.argb()))
}

// PPTSurface draws slides into a GoPPT presentation. Page coordinates are
// scaled into the widescreen slide and letterboxed; the bands on either side
// take the page background. Outlines are not drawn and ellipses become
// filled squares.
type PPTSurface struct {
	p       *ppt.Presentation
	slide   *ppt.Slide
	pages   int
	metrics *fontMetrics
}

// NewPPTSurface creates an empty presentation.
func NewPPTSurface(title, creator string) *PPTSurface {
	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = creator
	return &PPTSurface{p: p, metrics: newFontMetrics()}
}

func (s *PPTSurface) AddPage() {
	if s.pages == 0 {
		s.slide = s.p.GetActiveSlide()
	} else {
		s.slide = s.p.CreateSlide()
	}
	s.pages++

	band := s.slide.CreateRichTextShape()
	band.SetOffsetX(0).SetOffsetY(0)
	band.SetWidth(int64(pptSlideWidth)).SetHeight(int64(pptSlideHeight))
	band.SetFill(solidFill(Navy))
}

func (s *PPTSurface) Rect(r Rect, p Paint) {
	if p.Fill == nil {
		return
	}
	s.shape(r).SetFill(solidFill(*p.Fill))
}

func (s *PPTSurface) Ellipse(r Rect, fill Color) {
	s.shape(r).SetFill(solidFill(fill))
}

func (s *PPTSurface) Cell(r Rect, text string, st TextStyle, align Align) {
	if text == "" {
		return
	}
	shape := s.shape(r)
	s.run(shape, text, st)
	setAlignment(shape.GetActiveParagraph(), align)
}

func (s *PPTSurface) Block(x, y, w, lineHeight float64, text string, st TextStyle, align Align) float64 {
	h := float64(s.metrics.lines(text, st.Font, w)) * lineHeight
	shape := s.shape(Rect{x, y, w, h})
	s.run(shape, text, st)
	setAlignment(shape.GetActiveParagraph(), align)
	return h
}

func (s *PPTSurface) TextWidth(text string, f Font) float64 {
	return s.metrics.width(text, f)
}

// Pages returns the number of slides added so far.
func (s *PPTSurface) Pages() int {
	return s.pages
}

// Bytes serializes the presentation as PPTX.
func (s *PPTSurface) Bytes() ([]byte, error) {
	w, err := ppt.NewWriter(s.p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *PPTSurface) shape(r Rect) *ppt.RichTextShape {
	shape := s.slide.CreateRichTextShape()
	shape.SetOffsetX(emuX(r.X)).SetOffsetY(emuY(r.Y))
	shape.SetWidth(emuLen(r.W)).SetHeight(emuLen(r.H))
	return shape
}

func (s *PPTSurface) run(shape *ppt.RichTextShape, text string, st TextStyle) {
	tr := shape.CreateTextRun(text)
	tr.GetFont().SetSize(pptFontSize(st.Font.Size)).SetBold(st.Font.Bold).SetColor(ppt.NewColor(st.Color.argb()))
}

func setAlignment(p *ppt.Paragraph, align Align) {
	switch align {
	case AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

func emuX(mm float64) int64   { return int64(math.Round(pptOffsetX + mm*emuPerMM*pptScale)) }
func emuY(mm float64) int64   { return int64(math.Round(pptOffsetY + mm*emuPerMM*pptScale)) }
func emuLen(mm float64) int64 { return int64(math.Round(mm * emuPerMM * pptScale)) }

// pptFontSize scales a page font size to the slide, never below 1pt.
func pptFontSize(pt float64) int {
	return max(1, int(math.Round(pt*pptScale)))
}

// fontMetrics measures text with gofpdf's core font tables, so layouts that
// depend on text width match the PDF.
type fontMetrics struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newFontMetrics() *fontMetrics {
	pdf := gofpdf.New("L", "mm", "A4", "")
	return &fontMetrics{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (m *fontMetrics) width(text string, f Font) float64 {
	m.pdf.SetFont(string(f.Family), f.style(), f.Size)
	return m.pdf.GetStringWidth(m.tr(text))
}

func (m *fontMetrics) lines(text string, f Font, w float64) int {
	m.pdf.SetFont(string(f.Family), f.style(), f.Size)
	return max(1, len(m.pdf.SplitLines([]byte(m.tr(text)), w)))
}
