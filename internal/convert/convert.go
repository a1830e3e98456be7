// Package convert orchestrates a batch conversion of .Rd sources into
// Markdown/Quarto Markdown: discovery, parsing, alias-index construction,
// external link resolution, lowering, and rendering.
package convert

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rd2qmd/internal/aliasindex"
	"rd2qmd/internal/config"
	"rd2qmd/internal/lower"
	"rd2qmd/internal/mdwrite"
	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rdparser"
	"rd2qmd/internal/resolver"
)

// Options carries the driver-level overrides layered on top of a loaded
// config.Config for a single batch run.
type Options struct {
	// OutputDir, if non-empty, collects every rendered file there instead
	// of writing alongside its source.
	OutputDir string
	// Jobs bounds concurrent file conversions; <= 0 means unlimited.
	Jobs int
	// Logger receives structured per-file progress; nil means silent.
	Logger *zap.SugaredLogger
}

// FileResult is the outcome of converting a single source file.
type FileResult struct {
	SourcePath  string
	OutputPath  string
	Diagnostics []error
	Err         error
}

// Report is the outcome of a full batch run.
type Report struct {
	Files            []FileResult
	AliasDiagnostics []error
}

// Run discovers, parses, resolves, lowers, and renders every .Rd source
// under paths, writing each result next to its source (or under
// opts.OutputDir). It never returns early on a single file's failure; a
// per-file error lands on that file's FileResult instead.
func Run(fs afero.Fs, cfg *config.Config, paths []string, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	files, err := Discover(fs, paths, cfg.Recursive)
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}
	if len(files) == 0 {
		return &Report{}, nil
	}
	log.Infow("discovered sources", "count", len(files))

	docs := make([]*rdast.RdDocument, len(files))
	parseErrs := make([][]error, len(files))
	for i, path := range files {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			parseErrs[i] = []error{fmt.Errorf("read %s: %w", path, err)}
			continue
		}
		doc, errs := rdparser.Parse(data)
		docs[i] = doc
		parseErrs[i] = errs
	}

	aliasDocs := make([]aliasindex.Document, 0, len(files))
	for i, path := range files {
		if docs[i] != nil {
			aliasDocs = append(aliasDocs, aliasindex.Document{Stem: stem(path), Doc: docs[i]})
		}
	}
	aliases := aliasindex.Build(aliasDocs)

	res := resolver.New(fs, cfg.RLibPaths, cfg.CachePath(), 0)
	pkgs := newResolverAdapter(res)
	lowerOpts := cfg.LowerOptions()

	results := make([]FileResult, len(files))
	g := &errgroup.Group{}
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = convertOne(path, docs[i], parseErrs[i], aliases, pkgs, lowerOpts, cfg, opts, fs, log)
			return nil
		})
	}
	_ = g.Wait()

	return &Report{Files: results, AliasDiagnostics: aliases.Diagnostics()}, nil
}

func convertOne(
	path string,
	doc *rdast.RdDocument,
	parseErrs []error,
	aliases lower.AliasIndex,
	pkgs lower.PackageResolver,
	lowerOpts lower.Options,
	cfg *config.Config,
	opts Options,
	fs afero.Fs,
	log *zap.SugaredLogger,
) FileResult {
	start := time.Now()
	result := FileResult{SourcePath: path}

	if doc == nil {
		result.Err = firstErr(parseErrs, fmt.Errorf("parse %s: no document produced", path))
		result.Diagnostics = parseErrs
		return result
	}

	lowered := lower.Lower(doc, aliases, pkgs, lowerOpts)

	tableStyle := mdwrite.GridTable
	if cfg.ArgumentsTable == "pipe" {
		tableStyle = mdwrite.PipeTable
	}
	rendered, err := mdwrite.Render(lowered.Frontmatter, lowered.Body, mdwrite.Options{TableStyle: tableStyle})
	if err != nil {
		result.Err = fmt.Errorf("render %s: %w", path, err)
		result.Diagnostics = append(parseErrs, lowered.Diagnostics...)
		return result
	}

	outPath := outputPath(path, cfg.OutputFormat, opts.OutputDir)
	if err := afero.WriteFile(fs, outPath, []byte(rendered), 0o644); err != nil {
		result.Err = fmt.Errorf("write %s: %w", outPath, err)
		result.Diagnostics = append(parseErrs, lowered.Diagnostics...)
		return result
	}

	result.OutputPath = outPath
	result.Diagnostics = append(parseErrs, lowered.Diagnostics...)
	log.Debugw("converted", "source", path, "output", outPath, "elapsed", time.Since(start))
	return result
}

func outputPath(sourcePath, format, outputDir string) string {
	ext := ".qmd"
	if format == "md" {
		ext = ".md"
	}
	base := stem(sourcePath) + ext
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(sourcePath), base)
}

func firstErr(errs []error, fallback error) error {
	if len(errs) > 0 {
		return errs[0]
	}
	return fallback
}

// Summary tallies a Report for the driver's terminal output.
type Summary struct {
	Converted int
	Failed    int
	Warnings  int
}

// Summarize reduces a Report to counts, sorting Files by SourcePath so
// terminal output is deterministic across goroutine scheduling.
func (r *Report) Summarize() Summary {
	sort.Slice(r.Files, func(i, j int) bool { return r.Files[i].SourcePath < r.Files[j].SourcePath })

	var s Summary
	for _, f := range r.Files {
		if f.Err != nil {
			s.Failed++
			continue
		}
		s.Converted++
		s.Warnings += len(f.Diagnostics)
	}
	s.Warnings += len(r.AliasDiagnostics)
	return s
}
