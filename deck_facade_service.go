package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Leihyn/Sentiment/config"
	"github.com/Leihyn/Sentiment/deck"
	"github.com/Leihyn/Sentiment/export"
	"github.com/Leihyn/Sentiment/logger"
)

// Artifact is one file written by a build.
type Artifact struct {
	Format string
	Path   string
	Bytes  int
}

// BuildResult describes a finished (or failed) build.
type BuildResult struct {
	DeckID    string
	Slides    int
	Issues    []deck.Issue
	Artifacts []Artifact
	// Report is set when the PDF was verified.
	Report *export.PDFReport
}

// DeckFacadeService loads a deck, validates it and writes every requested
// format.
type DeckFacadeService struct {
	ctx       context.Context
	cfg       config.Config
	log       *logger.Logger
	exporters []Exporter
}

// NewDeckFacadeService creates a facade over all known exporters.
func NewDeckFacadeService(cfg config.Config, log *logger.Logger) *DeckFacadeService {
	return &DeckFacadeService{
		cfg:       cfg,
		log:       log,
		exporters: newExporters(),
	}
}

func (s *DeckFacadeService) Name() string {
	return "deck"
}

func (s *DeckFacadeService) Initialize(ctx context.Context) error {
	s.ctx = ctx
	return s.cfg.Validate()
}

func (s *DeckFacadeService) Shutdown() error {
	return nil
}

// LoadDeck returns the configured manifest, or the embedded deck when none
// is configured.
func (s *DeckFacadeService) LoadDeck() (*deck.Deck, error) {
	if s.cfg.Manifest == "" {
		return deck.Default()
	}
	return deck.LoadFile(s.cfg.Manifest)
}

// Build renders the deck into every configured format. Each artifact is
// written atomically; a failure leaves earlier artifacts in place and never
// a partial file. Cancelling ctx stops the build between artifacts.
func (s *DeckFacadeService) Build(ctx context.Context) (*BuildResult, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, WrapError("DeckFacadeService", "Build", err)
	}

	d, err := s.LoadDeck()
	if err != nil {
		return nil, WrapError("DeckFacadeService", "LoadDeck", err)
	}
	result := &BuildResult{DeckID: d.ID, Slides: len(d.Slides)}
	s.log.WithFields(logger.Fields{"deck": d.ID, "slides": len(d.Slides)}).Infof("Loaded deck %q", d.Title)

	opts := deck.ValidateOptions{Strict: s.cfg.Strict}
	if s.cfg.Manifest == "" {
		opts.Order = deck.StandardOrder
	}
	issues, err := deck.Validate(d, opts)
	result.Issues = issues
	for _, issue := range issues {
		if issue.Severity == deck.SeverityWarning {
			s.log.Warnf("%s", issue)
		}
	}
	if err != nil {
		return result, WrapError("DeckFacadeService", "Validate", err)
	}

	registry := NewServiceRegistry(ctx, s.log.Log)
	for _, exp := range s.exporters {
		if !s.cfg.Wants(exp.Format()) {
			continue
		}
		if err := registry.RegisterCritical(exp); err != nil {
			return result, err
		}
	}
	if err := registry.InitializeAll(); err != nil {
		return result, err
	}
	defer registry.ShutdownAll()

	for _, svc := range registry.Services() {
		if err := ctx.Err(); err != nil {
			return result, WrapError("DeckFacadeService", "Build", err)
		}
		exp := svc.(Exporter)
		artifact, report, err := s.buildOne(exp, d, issues)
		if err != nil {
			return result, err
		}
		if report != nil {
			result.Report = report
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}
	return result, nil
}

func (s *DeckFacadeService) buildOne(exp Exporter, d *deck.Deck, issues []deck.Issue) (Artifact, *export.PDFReport, error) {
	format := exp.Format()
	data, err := exp.Export(d, issues)
	if err != nil {
		return Artifact{}, nil, WrapOperationErrorf("export %s", err, format)
	}

	var report *export.PDFReport
	if format == config.FormatPDF && s.cfg.Verify {
		layout := export.LandscapeA4
		layout.Count = len(d.Slides)
		report, err = export.VerifyPDF(data, layout)
		if err != nil {
			return Artifact{}, nil, WrapOperationError("verify pdf", err)
		}
		s.log.Debugf("Verified %d pages", report.Pages)
	}

	path := exp.ArtifactPath(s.cfg.Output)
	if err := writeFileAtomic(path, data); err != nil {
		return Artifact{}, nil, WrapOperationErrorf("write %s", err, path)
	}
	s.log.WithFields(logger.Fields{"format": format, "bytes": len(data), "path": path}).Info("Artifact written")
	return Artifact{Format: format, Path: path, Bytes: len(data)}, report, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place. On failure the temporary file is removed and path is left
// untouched.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		return err
	}
	return nil
}

// IsValidationError reports whether err came from deck validation.
func IsValidationError(err error) bool {
	var verr *deck.ValidationError
	return errors.As(err, &verr)
}

func (r *BuildResult) String() string {
	return fmt.Sprintf("deck %s: %d slides, %d artifacts, %d issues", r.DeckID, r.Slides, len(r.Artifacts), len(r.Issues))
}
