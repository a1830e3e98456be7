package lower

import (
	"strings"

	"rd2qmd/internal/mdast"
	"rd2qmd/internal/rdast"
)

func (c *ctx) lowerInlines(nodes []rdast.Inline) []mdast.Node {
	var out []mdast.Node
	for _, n := range nodes {
		out = append(out, c.lowerInline(n)...)
	}
	return out
}

// lowerInline converts one inline node into its mdast equivalent(s). It
// never flushes a paragraph; callers that need block boundaries
// (Itemize, Describe, Tabular, Preformatted, paragraph breaks inside
// Text) go through lowerBody instead.
func (c *ctx) lowerInline(n rdast.Inline) []mdast.Node {
	switch v := n.(type) {
	case rdast.Text:
		return []mdast.Node{mdast.Text{Value: collapseWhitespace(v.Value)}}
	case rdast.Code:
		return []mdast.Node{mdast.InlineCode{Value: flattenPlain(v.Children)}}
	case rdast.Verb:
		return []mdast.Node{mdast.InlineCode{Value: v.Raw}}
	case rdast.Emph:
		return []mdast.Node{mdast.Emphasis{Children: c.lowerInlines(v.Children)}}
	case rdast.Strong:
		return []mdast.Node{mdast.Strong{Children: c.lowerInlines(v.Children)}}
	case rdast.Bold:
		return []mdast.Node{mdast.Strong{Children: c.lowerInlines(v.Children)}}
	case rdast.Cite:
		return []mdast.Node{mdast.Emphasis{Children: c.lowerInlines(v.Children)}}
	case rdast.Abbr:
		return []mdast.Node{mdast.Emphasis{Children: c.lowerInlines(v.Children)}}
	case rdast.Url:
		return []mdast.Node{mdast.Link{URL: v.Value, Children: []mdast.Node{mdast.Text{Value: v.Value}}}}
	case rdast.Href:
		return []mdast.Node{mdast.Link{URL: v.URL, Children: c.lowerInlines(v.Text)}}
	case rdast.Email:
		return []mdast.Node{mdast.Link{URL: "mailto:" + v.Value, Children: []mdast.Node{mdast.Text{Value: v.Value}}}}
	case rdast.Doi:
		return []mdast.Node{mdast.Link{URL: "https://doi.org/" + v.Value, Children: []mdast.Node{mdast.Text{Value: v.Value}}}}
	case rdast.Link:
		return c.resolveLink(v.Target, v.Package, v.Text)
	case rdast.LinkS4class:
		return c.resolveLink(v.Class, v.Package, v.Text)
	case rdast.Eqn:
		return []mdast.Node{mdast.InlineMath{Value: v.Latex}}
	case rdast.Deqn:
		return []mdast.Node{mdast.Math{Value: v.Latex}}
	case rdast.R:
		return []mdast.Node{mdast.Text{Value: "R"}}
	case rdast.Dots:
		return []mdast.Node{mdast.Text{Value: "..."}}
	case rdast.Ldots:
		return []mdast.Node{mdast.Text{Value: "..."}}
	case rdast.Cr:
		return []mdast.Node{mdast.Break{}}
	case rdast.Tab:
		if c.preformatted {
			return []mdast.Node{mdast.Text{Value: "\t"}}
		}
		return []mdast.Node{mdast.Text{Value: " "}}
	case rdast.Sexpr:
		return []mdast.Node{mdast.InlineCode{Value: v.Raw}}
	case rdast.If:
		if formatAllowed(v.Format) {
			return c.lowerInlines(v.Then)
		}
		return nil
	case rdast.Ifelse:
		if formatAllowed(v.Format) {
			return c.lowerInlines(v.Then)
		}
		return c.lowerInlines(v.Else)
	case rdast.Method:
		return []mdast.Node{mdast.InlineCode{Value: v.Generic + "." + v.Class}}
	case rdast.ExampleBlock:
		return c.lowerInlines(v.Children)
	default:
		// Itemize/Enumerate/Describe/Tabular/Preformatted/ArgumentItem
		// are block-level constructs that lowerBody intercepts before
		// reaching here in well-formed input; fall back to plain text
		// rather than dropping content silently.
		return []mdast.Node{mdast.Text{Value: flattenPlainInline(n)}}
	}
}

// resolveLink implements the External Resolver > Alias Index >
// unresolved-template > plain-text precedence for \link/\linkS4class.
func (c *ctx) resolveLink(target string, pkg *string, text []rdast.Inline) []mdast.Node {
	children := c.lowerInlines(text)

	if pkg != nil {
		if c.opts.ExternalLinksEnabled && c.pkgs != nil {
			if idx, err := c.pkgs.Resolve(*pkg); err == nil && idx != nil {
				if href, ok := idx.Topics[target]; ok {
					return []mdast.Node{mdast.Link{URL: joinURL(idx.BaseURL, href), Children: children}}
				}
			}
		}

		// A package-qualified link that the external resolver couldn't
		// place degrades to the external-package fallback template; it
		// must not fall through to the alias index and match a
		// same-named local topic.
		if tmpl := c.opts.ExternalPackageFallbackTemplate; tmpl != "" {
			url := strings.NewReplacer("{package}", *pkg, "{topic}", target).Replace(tmpl)
			return []mdast.Node{mdast.Link{URL: url, Children: children}}
		}
		return children
	}

	if c.aliases != nil {
		if stem, ok := c.aliases.Resolve(target); ok {
			return []mdast.Node{mdast.Link{URL: stem + "." + c.opts.extension(), Children: children}}
		}
	}

	if tmpl := c.opts.UnresolvedLinkURLTemplate; tmpl != "" {
		url := strings.ReplaceAll(tmpl, "{topic}", target)
		return []mdast.Node{mdast.Link{URL: url, Children: children}}
	}
	return children
}

func joinURL(base, href string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(href, "/")
}

// formatAllowed implements the \if/\ifelse format-gating decision:
// retain content for "markdown" and "text" targets, drop it otherwise.
func formatAllowed(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "markdown", "text":
		return true
	default:
		return false
	}
}

func flattenPlainInline(n rdast.Inline) string {
	return flattenPlain([]rdast.Inline{n})
}

// collapseWhitespace collapses any run of space/tab/newline to a single
// space, per the inline mapping rule for Text outside verbatim contexts.
func collapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
