// Package cmd provides the command-line interface for rd2qmd.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI is the root command structure parsed by Kong.
type CLI struct {
	Verbose bool `help:"Enable verbose logging" name:"verbose" short:"v"`

	Convert    ConvertCmd                `cmd:"" help:"Convert .Rd sources to Markdown/Quarto Markdown"`
	Version    VersionCmd                `cmd:"" help:"Show version info"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`
}
