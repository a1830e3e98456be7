// Package config loads the rd2qmd.yaml project configuration, the
// on-disk form of internal/lower.Options plus the driver's own
// discovery/caching/theme settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"rd2qmd/internal/lower"
	"rd2qmd/internal/theme"
)

const (
	// ConfigFileName is the project configuration file rd2qmd looks for.
	ConfigFileName = "rd2qmd.yaml"
	// DefaultCacheDir is the disk cache directory when unset.
	DefaultCacheDir = ".rd2qmd-cache"
)

// ErrInvalidRootDir is wrapped into the error returned when cache_dir
// names an unsafe path.
var ErrInvalidRootDir = errors.New("invalid cache_dir")

var validate = validator.New()

// Config is the on-disk project configuration. Zero value is not
// meaningful; use Load or Defaults.
type Config struct {
	OutputFormat string `yaml:"output_format" validate:"omitempty,oneof=md qmd"`
	Recursive    bool   `yaml:"recursive"`

	FrontmatterOn    bool   `yaml:"frontmatter_on"`
	PagetitleOn      bool   `yaml:"pagetitle_on"`
	QuartoCodeBlocks bool   `yaml:"quarto_code_blocks"`
	ArgumentsTable   string `yaml:"arguments_table" validate:"omitempty,oneof=grid pipe"`
	ExecDontrun      bool   `yaml:"exec_dontrun"`
	ExecDonttest     bool   `yaml:"exec_donttest"`

	UnresolvedLinkURLTemplate       string `yaml:"unresolved_link_url_template"`
	ExternalLinksEnabled            bool   `yaml:"external_links_enabled"`
	ExternalPackageFallbackTemplate string `yaml:"external_package_fallback_template"`

	RLibPaths []string `yaml:"r_lib_paths"`
	CacheDir  string   `yaml:"cache_dir"`

	Theme string `yaml:"theme" validate:"omitempty,oneof=default dark light"`

	// ProjectRoot is the directory ConfigPath was found in (or the
	// search start path, if no config file was found).
	ProjectRoot string `yaml:"-"`
	// ConfigPath is the absolute path to the rd2qmd.yaml that was
	// loaded, empty when defaults were used.
	ConfigPath string `yaml:"-"`
}

// Defaults returns the configuration used when no rd2qmd.yaml is found.
func Defaults() *Config {
	lowerDefaults := lower.Defaults(lower.FormatQmd)
	return &Config{
		OutputFormat:                    "qmd",
		FrontmatterOn:                   lowerDefaults.FrontmatterOn,
		PagetitleOn:                     lowerDefaults.PagetitleOn,
		QuartoCodeBlocks:                lowerDefaults.QuartoCodeBlocks,
		ArgumentsTable:                  "grid",
		ExecDontrun:                     lowerDefaults.ExecDontrun,
		ExecDonttest:                    lowerDefaults.ExecDonttest,
		UnresolvedLinkURLTemplate:       lowerDefaults.UnresolvedLinkURLTemplate,
		ExternalLinksEnabled:            lowerDefaults.ExternalLinksEnabled,
		ExternalPackageFallbackTemplate: lowerDefaults.ExternalPackageFallbackTemplate,
		CacheDir:                        DefaultCacheDir,
		Theme:                           "default",
	}
}

// Load searches for rd2qmd.yaml starting at startPath and walking up the
// directory tree; the nearest config file found wins. If none is found,
// Defaults() is returned with ProjectRoot set to startPath.
func Load(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path for %q: %w", startPath, err)
	}

	for currentPath := absPath; ; {
		configPath := filepath.Join(currentPath, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			cfg.ProjectRoot = currentPath
			cfg.ConfigPath = configPath

			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
			}
			return cfg, nil
		}

		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}

	cfg := Defaults()
	cfg.ProjectRoot = absPath
	return cfg, nil
}

func parseConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", typeErr.Errors)
		}
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "qmd"
	}
	if cfg.ArgumentsTable == "" {
		cfg.ArgumentsTable = "grid"
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if err := validateRootDir(c.CacheDir); err != nil {
		return err
	}
	if _, err := theme.Get(c.Theme); err != nil {
		return fmt.Errorf(
			"invalid theme %q, available themes: %s",
			c.Theme, strings.Join(theme.Available(), ", "),
		)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation: %w", err)
	}
	return nil
}

// validateRootDir rejects a directory name that isn't safely joinable
// under ProjectRoot: no path separators, no "..", no glob characters.
func validateRootDir(name string) error {
	if name == "" {
		return nil
	}
	var found []string
	for _, bad := range []string{"/", "\\", "..", "*", "?"} {
		if strings.Contains(name, bad) {
			found = append(found, bad)
		}
	}
	if len(found) > 0 {
		return fmt.Errorf("%w: must be a simple directory name (found invalid characters: %s)",
			ErrInvalidRootDir, strings.Join(found, ", "))
	}
	return nil
}

// LowerOptions converts the on-disk configuration into internal/lower's
// runtime Options.
func (c *Config) LowerOptions() lower.Options {
	format := lower.FormatQmd
	if c.OutputFormat == "md" {
		format = lower.FormatMd
	}
	table := lower.ArgumentsTableGrid
	if c.ArgumentsTable == "pipe" {
		table = lower.ArgumentsTablePipe
	}
	return lower.Options{
		OutputFormat:                    format,
		FrontmatterOn:                   c.FrontmatterOn,
		PagetitleOn:                     c.PagetitleOn,
		QuartoCodeBlocks:                c.QuartoCodeBlocks,
		ArgumentsTable:                  table,
		ExecDontrun:                     c.ExecDontrun,
		ExecDonttest:                    c.ExecDonttest,
		UnresolvedLinkURLTemplate:       c.UnresolvedLinkURLTemplate,
		ExternalLinksEnabled:            c.ExternalLinksEnabled,
		ExternalPackageFallbackTemplate: c.ExternalPackageFallbackTemplate,
	}
}

// CachePath returns the absolute path to the disk cache directory.
func (c *Config) CachePath() string {
	if filepath.IsAbs(c.CacheDir) {
		return c.CacheDir
	}
	return filepath.Join(c.ProjectRoot, c.CacheDir)
}
