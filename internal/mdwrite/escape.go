package mdwrite

import "strings"

// escapeText backslash-escapes the ASCII punctuation Markdown assigns
// meaning to, so literal Rd prose round-trips instead of being read back
// as emphasis, links, headings or lists.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
