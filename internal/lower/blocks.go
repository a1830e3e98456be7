package lower

import (
	"strings"

	"rd2qmd/internal/mdast"
	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rderrs"
)

// lowerBody converts a section (or item/cell) body into a sequence of
// block-level mdast nodes, splitting on blank-line paragraph breaks and
// flushing a paragraph whenever a block-level construct (list, table,
// definition list, preformatted block) is encountered.
func (c *ctx) lowerBody(nodes []rdast.Inline) []mdast.Node {
	var blocks []mdast.Node
	var para []mdast.Node

	flush := func() {
		trimmed := trimEdgeWhitespace(para)
		if len(trimmed) > 0 {
			blocks = append(blocks, mdast.Paragraph{Children: trimmed})
		}
		para = nil
	}

	for _, n := range nodes {
		switch v := n.(type) {
		case rdast.Text:
			for i, part := range splitParagraphs(v.Value) {
				if i > 0 {
					flush()
				}
				if s := collapseWhitespace(part); s != "" {
					para = append(para, mdast.Text{Value: s})
				}
			}
		case rdast.Itemize:
			flush()
			blocks = append(blocks, c.lowerList(v.Items, false))
		case rdast.Enumerate:
			flush()
			blocks = append(blocks, c.lowerList(v.Items, true))
		case rdast.Describe:
			flush()
			blocks = append(blocks, c.lowerDescribe(v))
		case rdast.Tabular:
			flush()
			blocks = append(blocks, c.lowerTabular(v))
		case rdast.Preformatted:
			flush()
			blocks = append(blocks, mdast.Code{Value: v.Raw})
		default:
			para = append(para, c.lowerInline(n)...)
		}
	}
	flush()
	return blocks
}

func (c *ctx) lowerList(items [][]rdast.Inline, ordered bool) mdast.Node {
	li := make([]mdast.ListItem, 0, len(items))
	for _, it := range items {
		li = append(li, mdast.ListItem{Children: c.lowerBody(it)})
	}
	return mdast.List{Ordered: ordered, Items: li}
}

func (c *ctx) lowerDescribe(d rdast.Describe) mdast.Node {
	items := make([]mdast.DefinitionItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, mdast.DefinitionItem{
			Term:        c.lowerInlines(it.Term),
			Description: c.lowerBody(it.Description),
		})
	}
	return mdast.DefinitionList{Items: items}
}

func (c *ctx) lowerTabular(t rdast.Tabular) mdast.Node {
	align := c.parseTabularAlign(t.Spec)
	rows := make([][][]mdast.Node, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([][]mdast.Node, 0, len(row))
		for _, cell := range row {
			cells = append(cells, c.lowerBody(cell))
		}
		rows = append(rows, cells)
	}
	return mdast.Table{Align: align, Rows: rows}
}

func (c *ctx) parseTabularAlign(spec string) []mdast.Align {
	aligns := make([]mdast.Align, 0, len(spec))
	valid := true
	for _, r := range spec {
		switch r {
		case 'l':
			aligns = append(aligns, mdast.AlignLeft)
		case 'c':
			aligns = append(aligns, mdast.AlignCenter)
		case 'r':
			aligns = append(aligns, mdast.AlignRight)
		default:
			aligns = append(aligns, mdast.AlignNone)
			valid = false
		}
	}
	if !valid {
		c.fail(&rderrs.InvalidTabularSpecWarning{Spec: spec})
	}
	return aligns
}

// splitParagraphs splits s on runs of two or more newlines (a blank
// line in the source), the paragraph-break rule for Text outside
// verbatim contexts.
func splitParagraphs(s string) []string {
	var parts []string
	start := 0
	i := 0
	for i < len(s) {
		if s[i] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			if j-i >= 2 {
				parts = append(parts, s[start:i])
				start = j
				i = j
				continue
			}
			i = j
			continue
		}
		i++
	}
	parts = append(parts, s[start:])
	return parts
}

// trimEdgeWhitespace drops leading/trailing pure-whitespace Text nodes
// so a flushed paragraph never starts or ends with a bare space.
func trimEdgeWhitespace(nodes []mdast.Node) []mdast.Node {
	start, end := 0, len(nodes)
	for start < end {
		if t, ok := nodes[start].(mdast.Text); ok && strings.TrimSpace(t.Value) == "" {
			start++
			continue
		}
		break
	}
	for end > start {
		if t, ok := nodes[end-1].(mdast.Text); ok && strings.TrimSpace(t.Value) == "" {
			end--
			continue
		}
		break
	}
	return nodes[start:end]
}
