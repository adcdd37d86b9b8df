package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Leihyn/Sentiment/config"
	"github.com/Leihyn/Sentiment/deck"
	"github.com/Leihyn/Sentiment/logger"
)

type options struct {
	cfg           config.Config
	printManifest bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "sentiment-deck: %v\n", err)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sentiment-deck: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags builds the run configuration: defaults, then the -config file,
// then any flag given explicitly.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("sentiment-deck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: sentiment-deck [flags]\n")
		fs.PrintDefaults()
	}

	def := config.Default()
	output := fs.String("o", def.Output, "Output PDF path; other formats are written next to it")
	manifest := fs.String("manifest", "", "Deck manifest (YAML); the built-in deck when empty")
	formats := fs.String("formats", "pdf", "Comma separated formats: pdf, pptx, handout, docx, xlsx")
	configPath := fs.String("config", "", "JSON config file")
	strict := fs.Bool("strict", def.Strict, "Treat highlight mismatches as errors")
	verify := fs.Bool("verify", def.Verify, "Verify the PDF page count and size")
	logDir := fs.String("log-dir", "", "Also write a log file to this directory")
	verbose := fs.Bool("v", false, "Verbose logging")
	printManifest := fs.Bool("print-manifest", false, "Print the built-in manifest and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "manifest":
			cfg.Manifest = *manifest
		case "formats":
			cfg.Formats = config.ParseFormats(*formats)
		case "strict":
			cfg.Strict = *strict
		case "verify":
			cfg.Verify = *verify
		case "log-dir":
			cfg.LogDir = *logDir
		case "v":
			cfg.DetailedLog = *verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, printManifest: *printManifest}, nil
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if opts.printManifest {
		_, err := stdout.Write(deck.DefaultManifest())
		return err
	}

	log := logger.NewLoggerTo(stderr)
	log.SetVerbose(opts.cfg.DetailedLog)
	if opts.cfg.LogDir != "" {
		if err := log.Init(opts.cfg.LogDir); err != nil {
			return err
		}
		defer log.Close()
	}

	facade := NewDeckFacadeService(opts.cfg, log)
	registry := NewServiceRegistry(ctx, log.Log)
	if err := registry.RegisterCritical(facade); err != nil {
		return err
	}
	if err := registry.InitializeAll(); err != nil {
		return err
	}
	defer registry.ShutdownAll()

	result, err := facade.Build(ctx)
	if err != nil {
		return err
	}
	for _, a := range result.Artifacts {
		fmt.Fprintf(stdout, "%s: %s (%d bytes)\n", a.Format, a.Path, a.Bytes)
	}
	log.Logf("Build finished: %s", result)
	return nil
}
