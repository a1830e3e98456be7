// Package resolver implements the External Resolver: discovery of
// installed R packages on disk, retrieval (local or remote) of their
// pkgdown topic index, and a disk-backed cache shared across a batch.
package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"

	"rd2qmd/internal/rderrs"
)

// DefaultTimeout bounds a single package's remote pkgdown.yml fetch.
const DefaultTimeout = 30 * time.Second

// Resolver locates installed R packages and resolves their pkgdown topic
// indexes, memoizing results for the lifetime of the batch and
// persisting them to disk. The zero value is not usable; construct with
// New.
type Resolver struct {
	fs       afero.Fs
	libPaths []string
	cache    *diskCache
	client   *http.Client
	timeout  time.Duration

	group singleflight.Group

	mu  sync.Mutex
	mem map[string]*CacheEntry // keyed by package name
}

// New constructs a Resolver. fs is the filesystem used for both package
// discovery (DESCRIPTION, local pkgdown.yml) and the disk cache; pass
// afero.NewOsFs() in production and an in-memory filesystem in tests.
func New(fs afero.Fs, libPaths []string, cacheDir string, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		fs:       fs,
		libPaths: libPaths,
		cache:    newDiskCache(fs, cacheDir),
		client:   &http.Client{Timeout: timeout},
		timeout:  timeout,
		mem:      make(map[string]*CacheEntry),
	}
}

// Resolve returns the cached or freshly fetched pkgdown index for pkg.
// A non-nil error is always accompanied by a best-effort entry (possibly
// with Topics == nil); callers degrade to the fallback URL template
// rather than treating the error as fatal, per the non-fatal ResolverError
// contract.
func (r *Resolver) Resolve(pkg string) (*CacheEntry, error) {
	v, err, _ := r.group.Do(pkg, func() (any, error) {
		return r.resolveUncached(pkg)
	})
	if v == nil {
		return nil, err
	}
	return v.(*CacheEntry), err
}

func (r *Resolver) resolveUncached(pkg string) (*CacheEntry, error) {
	if entry, ok := r.memLoad(pkg); ok {
		return entry, negativeErr(pkg, entry)
	}
	dir, descRaw, ok := r.findPackage(pkg)
	if !ok {
		return &CacheEntry{Topics: nil}, &rderrs.PackageNotFoundError{Package: pkg}
	}

	fields := parseDescription(descRaw)
	version := fields.Version
	if version == "" {
		version = "0"
	}

	if entry, ok := r.cache.load(pkg, version); ok {
		r.memStore(pkg, entry)
		return entry, negativeErr(pkg, entry)
	}

	entry, err := r.fetchPkgdown(dir, fields)
	r.memStore(pkg, entry)
	_ = r.cache.store(pkg, version, entry)
	if err != nil {
		return entry, err
	}
	return entry, nil
}

// memLoad and memStore guard mem: singleflight.Group only serializes calls
// sharing the same key, so two goroutines resolving distinct packages can
// reach these concurrently.
func (r *Resolver) memLoad(key string) (*CacheEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.mem[key]
	return entry, ok
}

func (r *Resolver) memStore(key string, entry *CacheEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mem[key] = entry
}

func negativeErr(pkg string, entry *CacheEntry) error {
	if entry.negative() {
		return &rderrs.NoPkgdownSiteError{Package: pkg}
	}
	return nil
}

// findPackage searches libPaths in order for a directory named pkg
// containing a DESCRIPTION file, returning that directory and the raw
// DESCRIPTION contents.
func (r *Resolver) findPackage(pkg string) (dir, description string, ok bool) {
	for _, lib := range r.libPaths {
		candidate := filepath.Join(lib, pkg)
		data, err := afero.ReadFile(r.fs, filepath.Join(candidate, "DESCRIPTION"))
		if err != nil {
			continue
		}
		return candidate, string(data), true
	}
	return "", "", false
}

func (r *Resolver) fetchPkgdown(dir string, fields descriptionFields) (*CacheEntry, error) {
	for _, local := range []string{
		filepath.Join(dir, "pkgdown.yml"),
		filepath.Join(dir, "doc", "pkgdown.yml"),
	} {
		if data, err := afero.ReadFile(r.fs, local); err == nil {
			return r.entryFromYAML(fields.Package, data)
		}
	}

	if base, ok := firstHTTPSURL(fields.URLs); ok {
		data, err := r.fetchRemote(base)
		if err != nil {
			return &CacheEntry{Topics: nil}, &rderrs.FetchFailedError{Package: fields.Package, Reason: err}
		}
		return r.entryFromYAML(fields.Package, data)
	}

	return &CacheEntry{Topics: nil}, &rderrs.NoPkgdownSiteError{Package: fields.Package}
}

func (r *Resolver) entryFromYAML(pkg string, data []byte) (*CacheEntry, error) {
	base, topics, err := parsePkgdownYAML(data)
	if err != nil {
		return &CacheEntry{Topics: nil}, &rderrs.FetchFailedError{Package: pkg, Reason: err}
	}
	return &CacheEntry{BaseURL: base, Topics: topics}, nil
}

func (r *Resolver) fetchRemote(baseURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	url := baseURL + "/pkgdown.yml"
	op := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, backoff.Permanent(fmt.Errorf("pkgdown fetch: %s not found", url))
		}
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("pkgdown fetch: server error %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	return backoff.Retry(ctx, op, backoff.WithMaxTries(3), backoff.WithBackOff(backoff.NewExponentialBackOff()))
}
