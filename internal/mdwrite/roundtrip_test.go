package mdwrite

import (
	"strings"
	"testing"

	"github.com/gomarkdown/markdown"

	"rd2qmd/internal/mdast"
)

// parsesAsMarkdown runs rendered through an independent Markdown->HTML
// pipeline, catching cases where our writer emits something so malformed a
// reader gets nothing meaningful back.
func parsesAsMarkdown(t *testing.T, rendered string) {
	t.Helper()
	html := markdown.ToHTML([]byte(rendered), nil, nil)
	if len(strings.TrimSpace(string(html))) == 0 {
		t.Fatalf("gomarkdown produced no HTML for:\n%s", rendered)
	}
}

func TestRenderedDocumentsParseAsMarkdown(t *testing.T) {
	body := []mdast.Node{
		mdast.Heading{Depth: 1, Children: []mdast.Node{mdast.Text{Value: "Square a number"}}},
		mdast.Paragraph{Children: []mdast.Node{mdast.Text{Value: "Computes the square of "}, mdast.InlineCode{Value: "x"}, mdast.Text{Value: "."}}},
		mdast.List{Ordered: false, Items: []mdast.ListItem{
			{Children: []mdast.Node{mdast.Paragraph{Children: []mdast.Node{mdast.Text{Value: "first"}}}}},
			{Children: []mdast.Node{mdast.Paragraph{Children: []mdast.Node{mdast.Text{Value: "second"}}}}},
		}},
		mdast.Code{Lang: "r", Value: "square(4)\n#> 16"},
		mdast.Table{
			Align: []mdast.Align{mdast.AlignLeft, mdast.AlignLeft},
			Rows: [][][]mdast.Node{
				{{mdast.Text{Value: "Argument"}}, {mdast.Text{Value: "Description"}}},
				{{mdast.InlineCode{Value: "x"}}, {mdast.Text{Value: "a numeric vector"}}},
			},
		},
	}

	rendered, err := Render(map[string]any{"title": "square"}, body, Options{TableStyle: PipeTable})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	parsesAsMarkdown(t, rendered)
}

func TestGridTableRendersParseableMarkdown(t *testing.T) {
	body := []mdast.Node{
		mdast.Table{
			Align: []mdast.Align{mdast.AlignLeft, mdast.AlignCenter},
			Rows: [][][]mdast.Node{
				{{mdast.Text{Value: "Name"}}, {mdast.Text{Value: "Type"}}},
				{{mdast.Text{Value: "x"}}, {mdast.Text{Value: "numeric"}}},
			},
		},
	}
	rendered, err := RenderNodes(body, Options{TableStyle: GridTable})
	if err != nil {
		t.Fatalf("RenderNodes: %v", err)
	}
	parsesAsMarkdown(t, rendered)
}
