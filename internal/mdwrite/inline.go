package mdwrite

import "rd2qmd/internal/mdast"

func (w *writer) printInlines(nodes []mdast.Node) {
	for _, n := range nodes {
		w.printInline(n)
	}
}

func (w *writer) printInline(n mdast.Node) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case mdast.Text:
		w.writeString(escapeText(v.Value))
	case mdast.InlineCode:
		w.printInlineCode(v)
	case mdast.Emphasis:
		w.writeByte('*')
		w.printInlines(v.Children)
		w.writeByte('*')
	case mdast.Strong:
		w.writeString("**")
		w.printInlines(v.Children)
		w.writeString("**")
	case mdast.Break:
		w.writeString("\\\n")
		w.writeIndent()
	case mdast.Link:
		w.writeByte('[')
		w.printInlines(v.Children)
		w.writeString("](")
		w.writeString(v.URL)
		w.writeByte(')')
	case mdast.Image:
		w.writeString("![")
		w.writeString(escapeText(v.Alt))
		w.writeString("](")
		w.writeString(v.URL)
		w.writeByte(')')
	case mdast.Html:
		w.writeString(v.Value)
	case mdast.InlineMath:
		w.writeByte('$')
		w.writeString(v.Value)
		w.writeByte('$')
	case mdast.Paragraph:
		// A paragraph reached inline position (e.g. inside a table
		// cell) renders as its bare inline content.
		w.printInlines(v.Children)
	default:
		w.printBlock(n, true)
	}
}

func (w *writer) printInlineCode(n mdast.InlineCode) {
	fence := "`"
	if longestBacktickRun(n.Value) > 0 {
		fence = "``"
		w.writeString(fence)
		w.writeByte(' ')
		w.writeString(n.Value)
		w.writeByte(' ')
		w.writeString(fence)
		return
	}
	w.writeString(fence)
	w.writeString(n.Value)
	w.writeString(fence)
}
