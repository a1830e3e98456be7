package resolver

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// CacheEntry is the on-disk (and in-memory) representation of one
// package's pkgdown topic index. Topics == nil (JSON null) marks a
// negative cache entry: the package is known to lack a pkgdown site.
type CacheEntry struct {
	BaseURL string            `json:"base_url"`
	Topics  map[string]string `json:"topics"`
}

func (e *CacheEntry) negative() bool {
	return e == nil || e.Topics == nil
}

// diskCache persists CacheEntry values under cache_dir/<package>-<version>.json
// using the supplied afero filesystem, so tests can run against an
// in-memory filesystem without touching disk.
type diskCache struct {
	fs  afero.Fs
	dir string
}

func newDiskCache(fs afero.Fs, dir string) *diskCache {
	return &diskCache{fs: fs, dir: dir}
}

func (c *diskCache) path(pkg, version string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s-%s.json", pkg, version))
}

func (c *diskCache) load(pkg, version string) (*CacheEntry, bool) {
	if c.fs == nil {
		return nil, false
	}
	data, err := afero.ReadFile(c.fs, c.path(pkg, version))
	if err != nil {
		return nil, false
	}
	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func (c *diskCache) store(pkg, version string, entry *CacheEntry) error {
	if c.fs == nil {
		return nil
	}
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(c.fs, c.path(pkg, version), data, 0o644)
}
