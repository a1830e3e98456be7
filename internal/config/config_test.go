package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rd2qmd/internal/lower"
)

func TestLoad_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OutputFormat != "qmd" {
		t.Errorf("OutputFormat = %q, want qmd", cfg.OutputFormat)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("expected empty ConfigPath for default config, got %q", cfg.ConfigPath)
	}

	absPath, _ := filepath.Abs(tmpDir)
	if cfg.ProjectRoot != absPath {
		t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, absPath)
	}
}

func TestLoad_CustomOutputFormat(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("output_format: md\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.OutputFormat != "md" {
		t.Errorf("OutputFormat = %q, want md", cfg.OutputFormat)
	}
	if cfg.ConfigPath != configPath {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, configPath)
	}
}

func TestLoad_DiscoveryFromNestedDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedDir := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nestedDir, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("cache_dir: custom-cache\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(nestedDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CacheDir != "custom-cache" {
		t.Errorf("CacheDir = %q, want custom-cache", cfg.CacheDir)
	}
	if cfg.ProjectRoot != tmpDir {
		t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, tmpDir)
	}
}

func TestLoad_NearestConfigWins(t *testing.T) {
	tmpDir := t.TempDir()
	nestedDir := filepath.Join(tmpDir, "subdir")
	if err := os.MkdirAll(nestedDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("cache_dir: root-cache\n"), 0o644); err != nil {
		t.Fatalf("write root config: %v", err)
	}
	nestedConfig := filepath.Join(nestedDir, ConfigFileName)
	if err := os.WriteFile(nestedConfig, []byte("cache_dir: nested-cache\n"), 0o644); err != nil {
		t.Fatalf("write nested config: %v", err)
	}

	cfg, err := Load(nestedDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CacheDir != "nested-cache" {
		t.Errorf("CacheDir = %q, want nested-cache (nearest should win)", cfg.CacheDir)
	}
	if cfg.ProjectRoot != nestedDir {
		t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, nestedDir)
	}
}

func TestLoad_InvalidCacheDir(t *testing.T) {
	tests := []string{"path/to/cache", "path\\to\\cache", "../cache", "cache*", "cache?"}

	for _, bad := range tests {
		t.Run(bad, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, ConfigFileName)
			if err := os.WriteFile(configPath, []byte("cache_dir: "+bad+"\n"), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			_, err := Load(tmpDir)
			if err == nil {
				t.Fatalf("expected error for invalid cache_dir %q", bad)
			}
			if !strings.Contains(err.Error(), ErrInvalidRootDir.Error()) {
				t.Errorf("error %q does not mention %q", err.Error(), ErrInvalidRootDir.Error())
			}
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("output_format: [\nbroken\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "yaml") && !strings.Contains(msg, "syntax") {
		t.Errorf("expected YAML/syntax error, got: %v", err)
	}
}

func TestLoad_InvalidOutputFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("output_format: html\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("expected validation error for output_format: html")
	}
}

func TestValidateRootDir(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"valid simple name", "rd2qmd-cache", false},
		{"valid with underscore", "rd2qmd_cache", false},
		{"empty uses default", "", false},
		{"invalid forward slash", "path/to", true},
		{"invalid backward slash", "path\\to", true},
		{"invalid double dots", "../cache", true},
		{"invalid asterisk", "cache*", true},
		{"invalid question mark", "cache?", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRootDir(tt.dir)
			if tt.wantErr && err == nil {
				t.Errorf("validateRootDir(%q) expected error, got nil", tt.dir)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateRootDir(%q) unexpected error: %v", tt.dir, err)
			}
		})
	}
}

func TestConfig_LowerOptionsMapping(t *testing.T) {
	cfg := Defaults()
	cfg.OutputFormat = "md"
	cfg.ArgumentsTable = "pipe"

	opts := cfg.LowerOptions()
	if opts.OutputFormat != lower.FormatMd {
		t.Errorf("OutputFormat = %v, want FormatMd", opts.OutputFormat)
	}
	if opts.ArgumentsTable != lower.ArgumentsTablePipe {
		t.Errorf("ArgumentsTable = %v, want ArgumentsTablePipe", opts.ArgumentsTable)
	}
}

func TestConfig_CachePath(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Defaults()
	cfg.ProjectRoot = tmpDir
	cfg.CacheDir = "my-cache"

	want := filepath.Join(tmpDir, "my-cache")
	if got := cfg.CachePath(); got != want {
		t.Errorf("CachePath() = %q, want %q", got, want)
	}

	cfg.CacheDir = filepath.Join(tmpDir, "abs-cache")
	if got := cfg.CachePath(); got != cfg.CacheDir {
		t.Errorf("CachePath() with absolute dir = %q, want %q", got, cfg.CacheDir)
	}
}
