package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func init() {
	// pdfcpu would otherwise create a user config directory on first use.
	api.DisableConfigDir()
}

// PageSpec is the page layout a rendered PDF is expected to have.
type PageSpec struct {
	// Count is the required number of pages; zero accepts any count.
	Count int
	// Width and Height are in points.
	Width, Height float64
	Tolerance     float64
}

// LandscapeA4 matches every page of a rendered deck.
var LandscapeA4 = PageSpec{Width: 841.89, Height: 595.28, Tolerance: 0.5}

// PDFReport summarizes a verified PDF.
type PDFReport struct {
	Pages int
	Dims  []types.Dim
}

// VerifyPDF validates data with pdfcpu and checks its page count and page
// sizes against want.
func VerifyPDF(data []byte, want PageSpec) (*PDFReport, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}

	pages, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}
	dims, err := api.PageDims(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read page sizes: %w", err)
	}
	report := &PDFReport{Pages: pages, Dims: dims}

	if want.Count > 0 && pages != want.Count {
		return report, fmt.Errorf("PDF has %d pages, want %d", pages, want.Count)
	}
	for i, d := range dims {
		if math.Abs(d.Width-want.Width) > want.Tolerance || math.Abs(d.Height-want.Height) > want.Tolerance {
			return report, fmt.Errorf("page %d is %.2fx%.2f pt, want %.2fx%.2f", i+1, d.Width, d.Height, want.Width, want.Height)
		}
	}
	return report, nil
}
