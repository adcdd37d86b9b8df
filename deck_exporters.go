package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Leihyn/Sentiment/config"
	"github.com/Leihyn/Sentiment/deck"
	"github.com/Leihyn/Sentiment/export"
)

// Exporter is a registered service that renders a deck into one format.
type Exporter interface {
	Service
	// Format is the config name of the output format.
	Format() string
	// ArtifactPath derives this format's file from the PDF output path.
	ArtifactPath(output string) string
	Export(d *deck.Deck, issues []deck.Issue) ([]byte, error)
}

// deckExporter adapts one export service to the Exporter interface.
type deckExporter struct {
	name   string
	format string
	suffix string
	newFn  func() func(*deck.Deck, []deck.Issue) ([]byte, error)
	export func(*deck.Deck, []deck.Issue) ([]byte, error)
}

func (e *deckExporter) Name() string   { return e.name }
func (e *deckExporter) Format() string { return e.format }

func (e *deckExporter) Initialize(ctx context.Context) error {
	e.export = e.newFn()
	return nil
}

func (e *deckExporter) Shutdown() error {
	e.export = nil
	return nil
}

func (e *deckExporter) ArtifactPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + e.suffix
}

func (e *deckExporter) Export(d *deck.Deck, issues []deck.Issue) ([]byte, error) {
	if e.export == nil {
		return nil, WrapError(e.name, "Export", fmt.Errorf("service not initialized"))
	}
	data, err := e.export(d, issues)
	if err != nil {
		return nil, WrapError(e.name, "Export", err)
	}
	return data, nil
}

// newExporters returns one exporter per supported format, in build order.
func newExporters() []Exporter {
	return []Exporter{
		&deckExporter{
			name:   "DeckPDFService",
			format: config.FormatPDF,
			suffix: ".pdf",
			newFn: func() func(*deck.Deck, []deck.Issue) ([]byte, error) {
				svc := export.NewDeckPDFService()
				return func(d *deck.Deck, _ []deck.Issue) ([]byte, error) { return svc.ExportDeckToPDF(d) }
			},
		},
		&deckExporter{
			name:   "DeckPPTService",
			format: config.FormatPPTX,
			suffix: ".pptx",
			newFn: func() func(*deck.Deck, []deck.Issue) ([]byte, error) {
				svc := export.NewDeckPPTService()
				return func(d *deck.Deck, _ []deck.Issue) ([]byte, error) { return svc.ExportDeckToPPT(d) }
			},
		},
		&deckExporter{
			name:   "HandoutService",
			format: config.FormatHandout,
			suffix: "-handout.pdf",
			newFn: func() func(*deck.Deck, []deck.Issue) ([]byte, error) {
				svc := export.NewHandoutService()
				return func(d *deck.Deck, _ []deck.Issue) ([]byte, error) { return svc.ExportDeckToHandout(d) }
			},
		},
		&deckExporter{
			name:   "OutlineWordService",
			format: config.FormatDOCX,
			suffix: ".docx",
			newFn: func() func(*deck.Deck, []deck.Issue) ([]byte, error) {
				svc := export.NewOutlineWordService()
				return func(d *deck.Deck, _ []deck.Issue) ([]byte, error) { return svc.ExportDeckToWord(d) }
			},
		},
		&deckExporter{
			name:   "InventoryExcelService",
			format: config.FormatXLSX,
			suffix: ".xlsx",
			newFn: func() func(*deck.Deck, []deck.Issue) ([]byte, error) {
				return export.NewInventoryExcelService().ExportDeckToExcel
			},
		},
	}
}
