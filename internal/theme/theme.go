// Package theme provides the color palette the CLI uses to print
// per-file conversion summaries and diagnostics to a terminal.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette used to colorize one run's terminal output:
// file paths, diagnostic severities, and the final summary line.
type Theme struct {
	Heading lipgloss.Color // Section headings in the run summary
	Path    lipgloss.Color // Source/output file paths
	Success lipgloss.Color // Converted-cleanly status
	Warning lipgloss.Color // Diagnostics: unresolved link, duplicate alias, bad tabular spec
	Error   lipgloss.Color // Diagnostics: parse/lower failure
	Muted   lipgloss.Color // Counts, elapsed time
}

var defaultTheme = &Theme{
	Heading: lipgloss.Color("99"),
	Path:    lipgloss.Color("117"),
	Success: lipgloss.Color("42"),
	Warning: lipgloss.Color("3"),
	Error:   lipgloss.Color("196"),
	Muted:   lipgloss.Color("240"),
}

var darkTheme = &Theme{
	Heading: lipgloss.Color("141"),
	Path:    lipgloss.Color("153"),
	Success: lipgloss.Color("46"),
	Warning: lipgloss.Color("226"),
	Error:   lipgloss.Color("196"),
	Muted:   lipgloss.Color("243"),
}

var lightTheme = &Theme{
	Heading: lipgloss.Color("55"),
	Path:    lipgloss.Color("25"),
	Success: lipgloss.Color("28"),
	Warning: lipgloss.Color("136"),
	Error:   lipgloss.Color("160"),
	Muted:   lipgloss.Color("246"),
}

var themes = map[string]*Theme{
	"default": defaultTheme,
	"dark":    darkTheme,
	"light":   lightTheme,
}

var current *Theme

// Get returns the named theme, or an error if it does not exist.
func Get(name string) (*Theme, error) {
	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return t, nil
}

// Load sets the current theme by name.
func Load(name string) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	current = t
	return nil
}

// Current returns the active theme, defaultTheme if none was loaded.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}
	return current
}

// Available returns the sorted list of theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
