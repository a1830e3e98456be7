package main

import (
	"github.com/alecthomas/kong"

	"rd2qmd/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("rd2qmd"),
		kong.Description("Convert R documentation (.Rd) sources to Markdown/Quarto Markdown"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
