package cmd

import (
	"fmt"

	"rd2qmd/internal/version"
)

// VersionCmd prints build information.
//
// Output formats:
//   - Default: multi-line version/commit/date
//   - --short: version number only
//   - --json: machine-readable JSON
type VersionCmd struct {
	JSON  bool `kong:"help='Output in JSON format for scripting'"`
	Short bool `kong:"help='Output version number only'"`
}

// Run executes the version command. JSON takes precedence over Short when
// both are set.
func (c *VersionCmd) Run() error {
	info := version.GetBuildInfo()

	switch {
	case c.JSON:
		jsonBytes, err := info.JSON()
		if err != nil {
			return fmt.Errorf("marshal version JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case c.Short:
		fmt.Println(info.Short())
	default:
		fmt.Println(info.String())
	}

	return nil
}
