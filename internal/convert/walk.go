package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Discover resolves paths (a mix of individual .Rd files and directories)
// into a sorted, de-duplicated list of .Rd source files. A directory is
// walked one level deep unless recursive is true, in which case every
// nested .Rd file is included.
func Discover(fs afero.Fs, paths []string, recursive bool) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, p := range paths {
		info, err := fs.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			if isRdSource(p) && !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			continue
		}
		if err := walkDir(fs, p, recursive, func(path string) {
			if !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
		}); err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	sort.Strings(out)
	return out, nil
}

func isRdSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".rd")
}

func walkDir(fs afero.Fs, root string, recursive bool, visit func(string)) error {
	return afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if isRdSource(path) {
			visit(path)
		}
		return nil
	})
}

// stem returns the source file's name without its .Rd extension, the unit
// internal/aliasindex keys alias claims by and the base name derived
// output files share.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
