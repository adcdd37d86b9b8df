package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Output formats
const (
	FormatPDF     = "pdf"
	FormatPPTX    = "pptx"
	FormatHandout = "handout"
	FormatDOCX    = "docx"
	FormatXLSX    = "xlsx"
)

// Formats lists every supported output format in build order.
var Formats = []string{FormatPDF, FormatPPTX, FormatHandout, FormatDOCX, FormatXLSX}

// Config structure
type Config struct {
	Output      string   `json:"output"`             // PDF path; other formats are written next to it
	Manifest    string   `json:"manifest,omitempty"` // Empty selects the embedded deck
	Formats     []string `json:"formats"`
	Strict      bool     `json:"strict"`           // Highlight mismatches fail the build
	Verify      bool     `json:"verify"`           // Check the PDF with pdfcpu after rendering
	LogDir      string   `json:"logDir,omitempty"` // Also log to a file here
	DetailedLog bool     `json:"detailedLog"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:  "presentation.pdf",
		Formats: []string{FormatPDF},
		Verify:  true,
	}
}

// Load reads a JSON config file over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseFormats splits a comma separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the configuration for values the build cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path is empty")
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("no output formats selected")
	}
	for _, f := range c.Formats {
		if !slices.Contains(Formats, f) {
			return fmt.Errorf("unknown format %q (supported: %s)", f, strings.Join(Formats, ", "))
		}
	}
	return nil
}

// Wants reports whether format is selected.
func (c Config) Wants(format string) bool {
	return slices.Contains(c.Formats, format)
}
