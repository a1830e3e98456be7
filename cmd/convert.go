package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"rd2qmd/internal/config"
	"rd2qmd/internal/convert"
	"rd2qmd/internal/theme"
)

// ConvertCmd converts one or more .Rd sources (files or directories) to
// Markdown/Quarto Markdown.
type ConvertCmd struct {
	Paths []string `arg:"" help:"Rd files or directories to convert" type:"path" name:"path"`

	Output    string `help:"Write every rendered file into this directory instead of alongside its source" name:"output" short:"o"`
	Format    string `help:"Output format" enum:"md,qmd" name:"format"`
	Recursive bool   `help:"Recurse into subdirectories" name:"recursive" short:"r"`

	RLibPaths []string `help:"R library search paths for external link resolution" name:"r-lib-path"`
	CacheDir  string   `help:"Disk cache directory for resolved package indexes" name:"cache-dir"`

	Theme   string `help:"Color theme for the run summary" enum:"default,dark,light" name:"theme"`
	Jobs    int    `help:"Maximum concurrent file conversions (0 = unbounded)" name:"jobs" short:"j"`
	Verbose bool   `help:"Enable verbose logging" name:"verbose" short:"v"`
}

// Run discovers, converts, and writes every source under Paths, then
// prints a colorized summary to stderr.
func (c *ConvertCmd) Run() error {
	startDir := "."
	if len(c.Paths) > 0 {
		startDir = c.Paths[0]
	}
	cfg, err := config.Load(startDir)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	c.applyOverrides(cfg)

	if err := theme.Load(cfg.Theme); err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	logger, err := newLogger(c.Verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	report, err := convert.Run(afero.NewOsFs(), cfg, c.Paths, convert.Options{
		OutputDir: c.Output,
		Jobs:      c.Jobs,
		Logger:    logger.Sugar(),
	})
	if err != nil {
		return err
	}

	printSummary(report)

	if report.Summarize().Failed > 0 {
		return fmt.Errorf("%d file(s) failed to convert", report.Summarize().Failed)
	}
	return nil
}

func (c *ConvertCmd) applyOverrides(cfg *config.Config) {
	if c.Format != "" {
		cfg.OutputFormat = c.Format
	}
	if c.Recursive {
		cfg.Recursive = true
	}
	if len(c.RLibPaths) > 0 {
		cfg.RLibPaths = c.RLibPaths
	}
	if c.CacheDir != "" {
		cfg.CacheDir = c.CacheDir
	}
	if c.Theme != "" {
		cfg.Theme = c.Theme
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func printSummary(report *convert.Report) {
	t := theme.Current()
	colorized := isatty.IsTerminal(os.Stderr.Fd())

	style := func(c lipgloss.Color) lipgloss.Style {
		if !colorized {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(c)
	}

	for _, f := range report.Files {
		switch {
		case f.Err != nil:
			fmt.Fprintln(os.Stderr, style(t.Error).Render("✗ "+f.SourcePath)+": "+f.Err.Error())
		case len(f.Diagnostics) > 0:
			fmt.Fprintln(os.Stderr, style(t.Warning).Render("! "+f.SourcePath+" -> "+f.OutputPath)+
				" ("+strconv.Itoa(len(f.Diagnostics))+" diagnostic(s))")
		default:
			fmt.Fprintln(os.Stderr, style(t.Success).Render("✓ "+f.SourcePath+" -> "+f.OutputPath))
		}
	}

	for _, d := range report.AliasDiagnostics {
		fmt.Fprintln(os.Stderr, style(t.Warning).Render("! "+d.Error()))
	}

	s := report.Summarize()
	fmt.Fprintln(os.Stderr, style(t.Muted).Render(
		fmt.Sprintf("%d converted, %d failed, %d diagnostic(s)", s.Converted, s.Failed, s.Warnings)))
}
