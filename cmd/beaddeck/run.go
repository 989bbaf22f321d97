package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-beaddeck"
	"github.com/alnah/go-beaddeck/internal/beads"
	"github.com/alnah/go-beaddeck/internal/config"
	"github.com/alnah/go-beaddeck/internal/dateutil"
	"github.com/alnah/go-beaddeck/internal/deck"
	"github.com/alnah/go-beaddeck/internal/fileutil"
	"github.com/alnah/go-beaddeck/internal/hints"
	"github.com/alnah/go-beaddeck/internal/inspect"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage     = errors.New("invalid usage")
	ErrReadCSS   = errors.New("failed to read CSS file")
	ErrWritePDF  = errors.New("failed to write PDF file")
	ErrWriteHTML = errors.New("failed to write HTML file")
	ErrVerify    = errors.New("PDF verification failed")
)

// runDeck loads descriptions, assembles the deck, renders it and writes
// the PDF. The output directory is never created.
func runDeck(ctx context.Context, flags *cliFlags, env *Environment, rep *reporter) error {
	start := env.Now()

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	date, err := dateutil.Resolve(cfg.Deck.Date, env.Now())
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}

	descriptions, sources := beads.LoadDirWithSources(cfg.Input.Root)
	for _, name := range beads.Names() {
		rep.Detail("description %s: %s", name, sources[name])
	}

	blocks := deck.Assemble(descriptions,
		deck.WithRoot(cfg.Input.Root),
		deck.WithGraphDir(cfg.Graphs.Dir),
		deck.WithDate(date),
	)
	reportMissingGraphs(blocks, rep)

	opts := []beaddeck.Option{
		beaddeck.WithTimeout(timeout),
		beaddeck.WithBaseDir(cfg.Input.Root),
		beaddeck.WithPage(&beaddeck.PageSettings{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
			Margin:      cfg.Page.Margin,
		}),
	}
	if cfg.Render.Style != "" {
		css, err := os.ReadFile(cfg.Render.Style) // #nosec G304 -- user-provided stylesheet
		if err != nil {
			return fmt.Errorf("%w: %w%s", ErrReadCSS, err, hints.ForStyleFile())
		}
		opts = append(opts, beaddeck.WithStyle(string(css)))
	}

	conv, err := env.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer conv.Close()

	result, err := conv.Convert(ctx, beaddeck.Input{
		Title:  deck.Title,
		Blocks: blocks,
	})
	if err != nil {
		return withRenderHint(err)
	}
	for _, s := range result.Substitutions {
		rep.Warn("graph %s could not be decoded: %v", s.Src, s.Err)
	}

	outPath := cfg.Output.Path
	if flags.outputMode.html {
		htmlPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".html"
		if err := fileutil.WriteFile(htmlPath, result.HTML); err != nil {
			return fmt.Errorf("%w: %w%s", ErrWriteHTML, err, hints.ForOutputDirectory(filepath.Dir(htmlPath)))
		}
		rep.Detail("HTML written: %s", htmlPath)
	}

	if err := fileutil.WriteFile(outPath, result.PDF); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWritePDF, err, hints.ForOutputDirectory(filepath.Dir(outPath)))
	}

	if flags.outputMode.verify {
		pages, err := inspect.Verify(outPath, deck.SectionCount(blocks))
		if err != nil {
			return fmt.Errorf("%w: %w%s", ErrVerify, err, hints.ForVerify())
		}
		rep.Detail("pages: %d", pages)
	}

	rep.Detail("done in %v", env.Now().Sub(start).Round(time.Millisecond))
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "PDF presentation created: %s\n", outPath)
	}
	return nil
}

// loadConfig returns defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.paths.output != "" {
		cfg.Output.Path = flags.paths.output
	}
	if flags.paths.root != "" {
		cfg.Input.Root = flags.paths.root
	}
	if flags.paths.graphs != "" {
		cfg.Graphs.Dir = flags.paths.graphs
	}
	if flags.date != "" {
		cfg.Deck.Date = flags.date
	}
	if flags.timeout != "" {
		cfg.Render.Timeout = flags.timeout
	}
}

// reportMissingGraphs lists, in verbose mode, the graphs replaced by their
// "not found" notice.
func reportMissingGraphs(blocks []beaddeck.Block, rep *reporter) {
	notices := make(map[string]bool)
	for _, g := range deck.Graphs() {
		notices[g.NotFound()] = true
	}
	for _, b := range blocks {
		if b.Kind == beaddeck.KindParagraph && notices[b.Text] {
			rep.Detail("%s", b.Text)
		}
	}
}

// withRenderHint appends a hint to browser failures.
func withRenderHint(err error) error {
	switch {
	case errors.Is(err, beaddeck.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, beaddeck.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}
