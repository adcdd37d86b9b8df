package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Leihyn/Sentiment/config"
	"github.com/Leihyn/Sentiment/deck"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(config.Default(), opts.cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if opts.printManifest {
		t.Error("printManifest set by default")
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	src := `{"output": "from-file.pdf", "formats": ["pdf", "docx"], "strict": true}`
	if err := os.WriteFile(cfgPath, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := parseFlags([]string{"-config", cfgPath, "-o", "from-flag.pdf", "-verify=false"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	want := config.Config{
		Output:  "from-flag.pdf",
		Formats: []string{"pdf", "docx"},
		Strict:  true,
		Verify:  false,
	}
	if diff := cmp.Diff(want, opts.cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"-formats", "pdf,key"}, "unknown format"},
		{"extra argument", []string{"deck.yaml"}, "unexpected arguments"},
		{"empty output", []string{"-o", " "}, "output path is empty"},
		{"missing config", []string{"-config", "/nonexistent/config.json"}, "failed to read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &stderr)
	if err != flag.ErrHelp {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(stderr.String(), "-formats") {
		t.Errorf("usage missing flags:\n%s", stderr.String())
	}
}

func TestRunPrintManifest(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), options{printManifest: true}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stdout.Bytes(), deck.DefaultManifest()) {
		t.Error("printed manifest differs from the embedded one")
	}
}

func TestRunWritesPDF(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseFlags([]string{"-o", filepath.Join(dir, "presentation.pdf"), "-log-dir", filepath.Join(dir, "logs")}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), opts, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "pdf: "+filepath.Join(dir, "presentation.pdf")) {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
	logs, _ := filepath.Glob(filepath.Join(dir, "logs", "sentiment_*.log"))
	if len(logs) != 1 {
		t.Errorf("expected one log file, got %v", logs)
	}
}
