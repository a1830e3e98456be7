package lower

// OutputFormat selects the target dialect; it affects link extensions,
// code-fence flavor, and \if/\ifelse format gating.
type OutputFormat uint8

const (
	// FormatQmd targets Quarto Markdown: executable {r} fences, .qmd
	// link extensions.
	FormatQmd OutputFormat = iota
	// FormatMd targets plain Markdown: plain r fences, .md link
	// extensions, no executable distinction.
	FormatMd
)

// ArgumentsTableStyle selects how an Arguments section is rendered.
type ArgumentsTableStyle uint8

const (
	ArgumentsTableGrid ArgumentsTableStyle = iota
	ArgumentsTablePipe
)

// Options configures lowering from an Rd document to mdast. Its fields
// mirror the CLI/config surface the driver exposes; zero value is not a
// meaningful configuration, use Defaults().
type Options struct {
	OutputFormat OutputFormat

	FrontmatterOn bool
	PagetitleOn   bool

	// QuartoCodeBlocks chooses "{r}" executable fences over plain "r"
	// fences for executable Examples code; Usage code is always a plain
	// "r" fence. Defaults true for qmd, false for md.
	QuartoCodeBlocks bool

	ArgumentsTable ArgumentsTableStyle

	// ExecDontrun/ExecDonttest decide whether \dontrun / \donttest
	// blocks render as executable fences.
	ExecDontrun  bool
	ExecDonttest bool

	// UnresolvedLinkURLTemplate substitutes {topic} for a \link target
	// that resolves via neither the external resolver nor the alias
	// index. Empty means such links render as plain text.
	UnresolvedLinkURLTemplate string

	// ExternalLinksEnabled gates whether \link[pkg]{...} even attempts
	// external resolution; when false, external links fall straight to
	// ExternalPackageFallbackTemplate.
	ExternalLinksEnabled bool

	// ExternalPackageFallbackTemplate substitutes {package} and {topic}
	// when a package is referenced but the resolver cannot locate it.
	ExternalPackageFallbackTemplate string
}

// Defaults returns the documented default Options for the given format.
func Defaults(format OutputFormat) Options {
	return Options{
		OutputFormat:                    format,
		FrontmatterOn:                   true,
		PagetitleOn:                     true,
		QuartoCodeBlocks:                format == FormatQmd,
		ArgumentsTable:                  ArgumentsTableGrid,
		ExecDontrun:                     false,
		ExecDonttest:                    true,
		UnresolvedLinkURLTemplate:       "https://rdrr.io/r/base/{topic}.html",
		ExternalLinksEnabled:            true,
		ExternalPackageFallbackTemplate: "https://rdrr.io/pkg/{package}/man/{topic}.html",
	}
}

// extension returns the link file extension for the configured format.
func (o Options) extension() string {
	if o.OutputFormat == FormatMd {
		return "md"
	}
	return "qmd"
}
