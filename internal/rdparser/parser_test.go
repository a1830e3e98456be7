package rdparser

import (
	"testing"

	"rd2qmd/internal/rdast"
)

func mustSection(t *testing.T, doc *rdast.RdDocument, tag rdast.SectionTag) rdast.Section {
	t.Helper()
	s, ok := doc.First(tag)
	if !ok {
		t.Fatalf("missing section %v", tag)
	}
	return s
}

func TestParseBasicDocument(t *testing.T) {
	src := `\name{foo}
\title{The Foo Function}
\description{Does \emph{foo} things.}
\arguments{
  \item{x}{an \code{integer}}
}
\examples{
1 + 1
\dontrun{
stop("no")
}
}
`
	doc, errs := Parse([]byte(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	name := mustSection(t, doc, rdast.TagName)
	if got := flattenText(name.Body); got != "foo" {
		t.Fatalf("name = %q, want foo", got)
	}

	args := mustSection(t, doc, rdast.TagArguments)
	if len(args.Body) != 1 {
		t.Fatalf("arguments body = %#v, want one ArgumentItem", args.Body)
	}
	item, ok := args.Body[0].(rdast.ArgumentItem)
	if !ok {
		t.Fatalf("arguments body[0] is %T, want ArgumentItem", args.Body[0])
	}
	if len(item.Names) != 1 || item.Names[0] != "x" {
		t.Fatalf("item names = %v, want [x]", item.Names)
	}

	ex := mustSection(t, doc, rdast.TagExamples)
	if len(ex.Body) < 2 {
		t.Fatalf("examples body = %#v, want plain text then ExampleBlock", ex.Body)
	}
	found := false
	for _, n := range ex.Body {
		if blk, ok := n.(rdast.ExampleBlock); ok {
			found = true
			if blk.Kind != rdast.ExampleDontrun {
				t.Fatalf("block kind = %v, want ExampleDontrun", blk.Kind)
			}
			txt, ok := blk.Children[0].(rdast.Text)
			if !ok || txt.Value != "\nstop(\"no\")\n" {
				t.Fatalf("block children = %#v", blk.Children)
			}
		}
	}
	if !found {
		t.Fatalf("did not find dontrun ExampleBlock in %#v", ex.Body)
	}
}

func TestParseCustomSection(t *testing.T) {
	doc, errs := Parse([]byte(`\section{Extra Notes}{Some \bold{content}.}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	custom := mustSection(t, doc, rdast.TagCustom)
	if custom.Custom != "Extra Notes" {
		t.Fatalf("custom title = %q", custom.Custom)
	}
}

func TestParseLinkForms(t *testing.T) {
	doc, errs := Parse([]byte(`\description{\link{plot} \link[grid]{grid.rect} \link[grid:grid.rect]{rectangles}}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	desc := mustSection(t, doc, rdast.TagDescription)

	var links []rdast.Link
	for _, n := range desc.Body {
		if l, ok := n.(rdast.Link); ok {
			links = append(links, l)
		}
	}
	if len(links) != 3 {
		t.Fatalf("got %d links, want 3: %#v", len(links), links)
	}
	if links[0].Target != "plot" || links[0].Package != nil {
		t.Fatalf("link0 = %#v", links[0])
	}
	if links[1].Target != "grid.rect" || links[1].Package == nil || *links[1].Package != "grid" {
		t.Fatalf("link1 = %#v", links[1])
	}
	if links[2].Target != "grid.rect" || links[2].Package == nil || *links[2].Package != "grid" {
		t.Fatalf("link2 = %#v", links[2])
	}
}

func TestParseItemizeDiscardsLeadingText(t *testing.T) {
	doc, errs := Parse([]byte(`\details{\itemize{leading text \item one \item two}}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	details := mustSection(t, doc, rdast.TagDetails)
	if len(details.Body) != 1 {
		t.Fatalf("details body = %#v", details.Body)
	}
	itemize, ok := details.Body[0].(rdast.Itemize)
	if !ok {
		t.Fatalf("details body[0] is %T, want Itemize", details.Body[0])
	}
	if len(itemize.Items) != 2 {
		t.Fatalf("got %d items, want 2: %#v", len(itemize.Items), itemize.Items)
	}
}

func TestParseTabularSplitsOnCrAndTab(t *testing.T) {
	doc, errs := Parse([]byte(`\format{\tabular{ll}{a \tab b \cr c \tab d}}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	format := mustSection(t, doc, rdast.TagFormat)
	tab, ok := format.Body[0].(rdast.Tabular)
	if !ok {
		t.Fatalf("format body[0] is %T, want Tabular", format.Body[0])
	}
	if tab.Spec != "ll" {
		t.Fatalf("spec = %q", tab.Spec)
	}
	if len(tab.Rows) != 2 || len(tab.Rows[0]) != 2 || len(tab.Rows[1]) != 2 {
		t.Fatalf("rows = %#v", tab.Rows)
	}
	if flattenText(tab.Rows[0][0]) != "a " || flattenText(tab.Rows[0][1]) != " b " {
		t.Fatalf("row0 = %#v", tab.Rows[0])
	}
}

func TestParseUnclosedGroupReportsError(t *testing.T) {
	_, errs := Parse([]byte(`\description{unterminated`))
	if len(errs) == 0 {
		t.Fatalf("expected an UnclosedGroupError")
	}
}

func TestParseUnexpectedCloseReportsError(t *testing.T) {
	_, errs := Parse([]byte(`\name{foo} } stray`))
	if len(errs) == 0 {
		t.Fatalf("expected an UnexpectedCloseError")
	}
}

func TestParseMethodTag(t *testing.T) {
	doc, errs := Parse([]byte(`\usage{\method{print}{myclass}(x, ...)}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	usage := mustSection(t, doc, rdast.TagUsage)
	txt, ok := usage.Body[0].(rdast.Text)
	if !ok {
		t.Fatalf("usage body[0] is %T, want Text (verbatim capture)", usage.Body[0])
	}
	if txt.Value != `\method{print}{myclass}(x, ...)` {
		t.Fatalf("usage raw = %q", txt.Value)
	}
}

func TestParseUnknownCommandFallsBackToCode(t *testing.T) {
	doc, errs := Parse([]byte(`\description{\encoding{UTF-8}ok}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	desc := mustSection(t, doc, rdast.TagDescription)
	if len(desc.Body) == 0 {
		t.Fatalf("expected at least one node")
	}
	if _, ok := desc.Body[0].(rdast.Code); !ok {
		t.Fatalf("body[0] = %T, want Code fallback", desc.Body[0])
	}
}
