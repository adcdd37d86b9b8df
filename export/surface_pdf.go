package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// DocumentInfo is written to the PDF information dictionary.
type DocumentInfo struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Keywords string
	// Created is stamped as the creation date. It should be fixed for
	// reproducible output.
	Created time.Time
}

// PDFSurface draws onto a gofpdf document using the core fonts. Text is
// translated to Windows-1252, the encoding of the core fonts.
type PDFSurface struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDFSurface creates an empty landscape A4 document. Automatic page
// breaks are off; pages are only added by AddPage.
func NewPDFSurface(info DocumentInfo) *PDFSurface {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(info.Created)

	pdf.SetTitle(info.Title, true)
	pdf.SetAuthor(info.Author, true)
	pdf.SetSubject(info.Subject, true)
	pdf.SetCreator(info.Creator, true)
	pdf.SetKeywords(info.Keywords, true)

	return &PDFSurface{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *PDFSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *PDFSurface) Rect(r Rect, p Paint) {
	style := s.paint(p)
	if style == "" {
		return
	}
	s.pdf.Rect(r.X, r.Y, r.W, r.H, style)
}

func (s *PDFSurface) Ellipse(r Rect, fill Color) {
	s.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	s.pdf.Ellipse(r.X+r.W/2, r.Y+r.H/2, r.W/2, r.H/2, 0, "F")
}

func (s *PDFSurface) Cell(r Rect, text string, st TextStyle, align Align) {
	if text == "" {
		return
	}
	s.text(st)
	s.pdf.SetXY(r.X, r.Y)
	s.pdf.CellFormat(r.W, r.H, s.tr(text), "", 0, string(align), false, 0, "")
}

func (s *PDFSurface) Block(x, y, w, lineHeight float64, text string, st TextStyle, align Align) float64 {
	s.text(st)
	encoded := s.tr(text)
	lines := s.pdf.SplitLines([]byte(encoded), w)
	s.pdf.SetXY(x, y)
	s.pdf.MultiCell(w, lineHeight, encoded, "", string(align), false)
	return float64(len(lines)) * lineHeight
}

func (s *PDFSurface) TextWidth(text string, f Font) float64 {
	s.pdf.SetFont(string(f.Family), f.style(), f.Size)
	return s.pdf.GetStringWidth(s.tr(text))
}

// Pages returns the number of pages added so far.
func (s *PDFSurface) Pages() int {
	return s.pdf.PageCount()
}

// Output serializes the document to w. Errors recorded by earlier drawing
// calls are reported here.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("PDF generation error: %w", err)
	}
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to output PDF: %w", err)
	}
	return nil
}

// Bytes serializes the document.
func (s *PDFSurface) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PDFSurface) text(st TextStyle) {
	s.pdf.SetFont(string(st.Font.Family), st.Font.style(), st.Font.Size)
	s.pdf.SetTextColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
}

func (s *PDFSurface) paint(p Paint) string {
	style := ""
	if p.Stroke != nil {
		s.pdf.SetDrawColor(int(p.Stroke.R), int(p.Stroke.G), int(p.Stroke.B))
		style += "D"
	}
	if p.Fill != nil {
		s.pdf.SetFillColor(int(p.Fill.R), int(p.Fill.G), int(p.Fill.B))
		style += "F"
	}
	return style
}
