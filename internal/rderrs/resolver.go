package rderrs

import "fmt"

// PackageNotFoundError indicates none of the configured R library paths
// contain a directory for the requested package. Resolution falls back to
// the external-package link template; this error is informational.
type PackageNotFoundError struct {
	Package string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package %q not found in any r_lib_paths entry", e.Package)
}

// NoPkgdownSiteError indicates a package was located on disk but has no
// pkgdown.yml (locally or via its DESCRIPTION's URL field) and is recorded
// as a negative cache entry.
type NoPkgdownSiteError struct {
	Package string
}

func (e *NoPkgdownSiteError) Error() string {
	return fmt.Sprintf("package %q has no known pkgdown site", e.Package)
}

// FetchFailedError wraps a failure to read or download a pkgdown.yml.
type FetchFailedError struct {
	Package string
	Reason  error
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("fetching pkgdown site for %q failed: %v", e.Package, e.Reason)
}

func (e *FetchFailedError) Unwrap() error {
	return e.Reason
}
