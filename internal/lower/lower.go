// Package lower lowers an internal/rdast.RdDocument into the
// internal/mdast subset, resolving \link{} references via an AliasIndex
// and a PackageResolver along the way.
package lower

import (
	"strings"

	"rd2qmd/internal/mdast"
	"rd2qmd/internal/rdast"
)

// Result is everything internal/mdwrite needs to render one document.
type Result struct {
	Frontmatter map[string]any
	Body        []mdast.Node
	Diagnostics []error
}

type ctx struct {
	opts         Options
	aliases      AliasIndex
	pkgs         PackageResolver
	preformatted bool
	diags        []error
}

// Lower converts doc to a Result. aliases and pkgs may be nil, in which
// case intra-batch and external link resolution degrade straight to the
// unresolved/fallback templates.
func Lower(doc *rdast.RdDocument, aliases AliasIndex, pkgs PackageResolver, opts Options) *Result {
	c := &ctx{opts: opts, aliases: aliases, pkgs: pkgs}

	fm := c.buildFrontmatter(doc)

	var body []mdast.Node
	if title, ok := doc.First(rdast.TagTitle); ok {
		body = append(body, mdast.Heading{Depth: 1, Children: c.lowerInlines(title.Body)})
	}

	for _, sec := range doc.Sections {
		switch sec.Tag {
		case rdast.TagName, rdast.TagTitle, rdast.TagAlias, rdast.TagKeyword, rdast.TagConcept:
			// Consumed into frontmatter/alias index, or dropped.
			continue
		case rdast.TagUsage:
			body = append(body, mdast.Heading{Depth: 2, Children: textNode("Usage")})
			body = append(body, mdast.Code{Lang: c.fenceLang(false), Value: flattenRawText(sec.Body)})
		case rdast.TagArguments:
			body = append(body, mdast.Heading{Depth: 2, Children: textNode("Arguments")})
			body = append(body, c.lowerArguments(sec.Body))
		case rdast.TagExamples:
			body = append(body, mdast.Heading{Depth: 2, Children: textNode("Examples")})
			body = append(body, c.lowerExamples(sec.Body)...)
		case rdast.TagValue:
			body = append(body, c.titledSection("Value", sec.Body)...)
		case rdast.TagDetails:
			body = append(body, c.titledSection("Details", sec.Body)...)
		case rdast.TagNote:
			body = append(body, c.titledSection("Note", sec.Body)...)
		case rdast.TagReferences:
			body = append(body, c.titledSection("References", sec.Body)...)
		case rdast.TagSource:
			body = append(body, c.titledSection("Source", sec.Body)...)
		case rdast.TagFormat:
			body = append(body, c.titledSection("Format", sec.Body)...)
		case rdast.TagAuthor:
			body = append(body, c.titledSection("Author(s)", sec.Body)...)
		case rdast.TagSeeAlso:
			body = append(body, c.titledSection("See Also", sec.Body)...)
		case rdast.TagDescription:
			body = append(body, c.titledSection("Description", sec.Body)...)
		case rdast.TagCustom:
			body = append(body, c.titledSection(sec.Custom, sec.Body)...)
		}
	}

	return &Result{Frontmatter: fm, Body: body, Diagnostics: c.diags}
}

func (c *ctx) titledSection(title string, content []rdast.Inline) []mdast.Node {
	out := []mdast.Node{mdast.Heading{Depth: 2, Children: textNode(title)}}
	return append(out, c.lowerBody(content)...)
}

func (c *ctx) buildFrontmatter(doc *rdast.RdDocument) map[string]any {
	fm := map[string]any{}
	if !c.opts.FrontmatterOn {
		return fm
	}

	name, hasName := doc.First(rdast.TagName)
	title, hasTitle := doc.First(rdast.TagTitle)

	nameText := ""
	if hasName {
		nameText = flattenPlain(name.Body)
	}
	titleText := ""
	if hasTitle {
		titleText = flattenPlain(title.Body)
	}

	if hasTitle {
		fm["title"] = titleText
	}
	if c.opts.PagetitleOn && hasTitle && hasName {
		fm["pagetitle"] = titleText + " — " + nameText
	}

	return fm
}

func (c *ctx) fenceLang(executable bool) string {
	if c.opts.OutputFormat == FormatMd || !c.opts.QuartoCodeBlocks {
		return "r"
	}
	if executable {
		return "{r}"
	}
	return "r"
}

func (c *ctx) lowerExamples(body []rdast.Inline) []mdast.Node {
	var out []mdast.Node
	for _, n := range body {
		switch v := n.(type) {
		case rdast.Text:
			if s := strings.TrimSpace(v.Value); s != "" {
				out = append(out, mdast.Code{Lang: c.fenceLang(true), Value: s})
			}
		case rdast.ExampleBlock:
			switch v.Kind {
			case rdast.ExampleDontshow, rdast.ExampleTestonly:
				continue
			case rdast.ExampleDontrun:
				out = append(out, mdast.Code{Lang: c.fenceLang(c.opts.ExecDontrun), Value: flattenRawText(v.Children)})
			case rdast.ExampleDonttest:
				out = append(out, mdast.Code{Lang: c.fenceLang(c.opts.ExecDonttest), Value: flattenRawText(v.Children)})
			case rdast.ExampleDontdiff:
				out = append(out, mdast.Code{Lang: c.fenceLang(false), Value: flattenRawText(v.Children)})
			}
		}
	}
	return out
}

func (c *ctx) lowerArguments(body []rdast.Inline) mdast.Node {
	rows := [][][]mdast.Node{
		{textNode("Argument"), textNode("Description")},
	}
	for _, n := range body {
		item, ok := n.(rdast.ArgumentItem)
		if !ok {
			continue
		}
		names := []mdast.Node{mdast.InlineCode{Value: strings.Join(item.Names, ", ")}}
		rows = append(rows, [][]mdast.Node{names, c.lowerBody(item.Description)})
	}
	return mdast.Table{Align: []mdast.Align{mdast.AlignLeft, mdast.AlignLeft}, Rows: rows}
}

func textNode(s string) []mdast.Node {
	return []mdast.Node{mdast.Text{Value: s}}
}

func flattenRawText(nodes []rdast.Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		if t, ok := n.(rdast.Text); ok {
			b.WriteString(t.Value)
		}
	}
	return strings.TrimSpace(b.String())
}

func flattenPlain(nodes []rdast.Inline) string {
	var b strings.Builder
	var walk func([]rdast.Inline)
	walk = func(ns []rdast.Inline) {
		for _, n := range ns {
			switch v := n.(type) {
			case rdast.Text:
				b.WriteString(v.Value)
			case rdast.Code:
				walk(v.Children)
			case rdast.Emph:
				walk(v.Children)
			case rdast.Strong:
				walk(v.Children)
			case rdast.Bold:
				walk(v.Children)
			case rdast.R:
				b.WriteString("R")
			case rdast.Dots, rdast.Ldots:
				b.WriteString("...")
			}
		}
	}
	walk(nodes)
	return collapseWhitespace(b.String())
}

func (c *ctx) fail(err error) {
	c.diags = append(c.diags, err)
}
