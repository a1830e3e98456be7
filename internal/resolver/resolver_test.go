package resolver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(parentDir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

func TestResolveLocalPkgdown(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/lib/dplyr/DESCRIPTION", "Package: dplyr\nVersion: 1.1.0\n")
	writeFile(t, fs, "/lib/dplyr/pkgdown.yml", `
url: https://dplyr.tidyverse.org
topics:
  - name: mutate
    href: reference/mutate.html
`)

	r := New(fs, []string{"/lib"}, "/cache", time.Second)
	entry, err := r.Resolve("dplyr")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if entry.BaseURL != "https://dplyr.tidyverse.org" {
		t.Fatalf("base url = %q", entry.BaseURL)
	}
	if entry.Topics["mutate"] != "reference/mutate.html" {
		t.Fatalf("topics = %#v", entry.Topics)
	}

	if _, err := fs.Stat("/cache/dplyr-1.1.0.json"); err != nil {
		t.Fatalf("expected cache file written: %v", err)
	}
}

func TestResolvePackageNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := New(fs, []string{"/lib"}, "/cache", time.Second)
	entry, err := r.Resolve("nosuch")
	if err == nil {
		t.Fatalf("expected PackageNotFoundError")
	}
	if !entry.negative() {
		t.Fatalf("expected negative entry, got %#v", entry)
	}
}

func TestResolveMemoizesWithinBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/lib/pkgA/DESCRIPTION", "Package: pkgA\nVersion: 2.0\n")
	writeFile(t, fs, "/lib/pkgA/pkgdown.yml", "url: https://example.test\ntopics:\n  - name: f\n    href: f.html\n")

	r := New(fs, []string{"/lib"}, "/cache", time.Second)
	first, err := r.Resolve("pkgA")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// Remove the on-disk source; a memoized resolve must not need it again.
	_ = fs.RemoveAll("/lib/pkgA")
	second, err := r.Resolve("pkgA")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if second.BaseURL != first.BaseURL {
		t.Fatalf("memoized result changed: %#v vs %#v", first, second)
	}
}

func TestResolveRemoteFetch(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("url: https://example.test\ntopics:\n  - topic: g\n    href: g.html\n"))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/lib/pkgB/DESCRIPTION", "Package: pkgB\nVersion: 1.0\nURL: "+srv.URL+"\n")

	r := New(fs, []string{"/lib"}, "/cache", 2*time.Second)
	r.client = srv.Client()
	entry, err := r.Resolve("pkgB")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if entry.Topics["g"] != "g.html" {
		t.Fatalf("topics = %#v", entry.Topics)
	}
}
