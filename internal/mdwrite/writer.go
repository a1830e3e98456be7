// Package mdwrite renders the internal/mdast subset to Markdown/Quarto
// Markdown text. Rendering is a pure function of (tree, Options); the
// writer never inspects Rd- or lowering-specific state.
package mdwrite

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rd2qmd/internal/frontmatter"
	"rd2qmd/internal/mdast"
)

// Render renders body as Markdown, preceded by a YAML frontmatter block
// built from fm (which may be nil or empty — Render still emits the
// fence pair in that case, matching internal/frontmatter.Render).
func Render(fm map[string]any, body []mdast.Node, opts Options) (string, error) {
	head, err := frontmatter.Render(fm, "")
	if err != nil {
		return "", fmt.Errorf("mdwrite: render frontmatter: %w", err)
	}
	head = strings.TrimSuffix(head, "\n")

	rest, err := RenderNodes(body, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteByte('\n')
	if rest != "" {
		b.WriteByte('\n')
		b.WriteString(rest)
	}
	return b.String(), nil
}

// RenderNodes renders a bare sequence of block nodes with no frontmatter.
func RenderNodes(nodes []mdast.Node, opts Options) (string, error) {
	var buf bytes.Buffer
	w := &writer{w: &buf, opts: opts}
	for i, n := range nodes {
		w.printBlock(n, i == 0)
	}
	if w.err != nil {
		return "", fmt.Errorf("mdwrite: %w", w.err)
	}
	s := buf.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s, nil
}

// writer mirrors the streaming printer pattern: state threaded through a
// struct, errors accumulated rather than returned from every write.
type writer struct {
	w          io.Writer
	opts       Options
	indent     int
	listDepth  int
	ordered    []int
	err        error
	needsBlank bool
}

func (w *writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) writeByte(b byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write([]byte{b})
}

func (w *writer) writeIndent() {
	if w.indent > 0 {
		w.writeString(strings.Repeat(" ", w.indent))
	}
}

func (w *writer) writeBlankLine() {
	if w.needsBlank {
		w.writeByte('\n')
	}
	w.needsBlank = true
}

func (w *writer) printBlock(n mdast.Node, isFirst bool) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case mdast.Root:
		for i, c := range v.Children {
			w.printBlock(c, i == 0)
		}
	case mdast.Paragraph:
		if !isFirst {
			w.writeBlankLine()
		}
		w.writeIndent()
		w.printInlines(v.Children)
		w.writeByte('\n')
	case mdast.Heading:
		if !isFirst {
			w.writeBlankLine()
		}
		depth := v.Depth
		if depth < 1 {
			depth = 1
		}
		if depth > 6 {
			depth = 6
		}
		w.writeString(strings.Repeat("#", depth))
		w.writeByte(' ')
		w.printInlines(v.Children)
		w.writeByte('\n')
	case mdast.ThematicBreak:
		if !isFirst {
			w.writeBlankLine()
		}
		w.writeString("---\n")
	case mdast.Blockquote:
		if !isFirst {
			w.writeBlankLine()
		}
		w.printBlockquote(v)
	case mdast.List:
		if !isFirst && w.listDepth == 0 {
			w.writeBlankLine()
		}
		w.printList(v)
	case mdast.Code:
		if !isFirst {
			w.writeBlankLine()
		}
		w.printCodeBlock(v)
	case mdast.Table:
		if !isFirst {
			w.writeBlankLine()
		}
		w.printTable(v)
	case mdast.DefinitionList:
		if !isFirst {
			w.writeBlankLine()
		}
		w.printDefinitionList(v)
	case mdast.Math:
		if !isFirst {
			w.writeBlankLine()
		}
		w.writeString("$$\n")
		w.writeString(v.Value)
		w.writeString("\n$$\n")
	default:
		// Any inline node reaching block position (e.g. a bare Text
		// section body) is rendered as its own paragraph.
		if !isFirst {
			w.writeBlankLine()
		}
		w.writeIndent()
		w.printInline(n)
		w.writeByte('\n')
	}
}

func (w *writer) printList(n mdast.List) {
	w.listDepth++
	if n.Ordered {
		w.ordered = append(w.ordered, 1)
	}
	for _, item := range n.Items {
		w.printListItem(item, n.Ordered)
		if n.Ordered {
			w.ordered[len(w.ordered)-1]++
		}
	}
	if n.Ordered {
		w.ordered = w.ordered[:len(w.ordered)-1]
	}
	w.listDepth--
}

func (w *writer) printListItem(item mdast.ListItem, ordered bool) {
	w.writeIndent()
	if ordered && len(w.ordered) > 0 {
		w.writeString(strconv.Itoa(w.ordered[len(w.ordered)-1]))
		w.writeString(". ")
	} else {
		w.writeString("- ")
	}

	oldIndent := w.indent
	w.indent += 2

	for i, c := range item.Children {
		switch c.(type) {
		case mdast.List:
			if i > 0 {
				w.writeByte('\n')
			}
			w.printBlock(c, true)
		default:
			w.printInline(c)
		}
	}
	w.indent = oldIndent
	w.writeByte('\n')
}

func (w *writer) printCodeBlock(n mdast.Code) {
	w.writeIndent()
	fence := longestBacktickRun(n.Value) + 3
	ticks := strings.Repeat("`", fence)
	w.writeString(ticks)
	w.writeString(n.Lang)
	w.writeByte('\n')

	content := n.Value
	if content != "" {
		if w.indent > 0 {
			lines := strings.Split(content, "\n")
			for i, line := range lines {
				if i > 0 {
					w.writeByte('\n')
				}
				w.writeIndent()
				w.writeString(line)
			}
		} else {
			w.writeString(content)
		}
		if !strings.HasSuffix(content, "\n") {
			w.writeByte('\n')
		}
	}
	w.writeIndent()
	w.writeString(ticks)
	w.writeByte('\n')
}

// longestBacktickRun returns the length of the longest run of backticks
// inside s, so the fence never collides with code content.
func longestBacktickRun(s string) int {
	longest, cur := 0, 0
	for _, r := range s {
		if r == '`' {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}

func (w *writer) printBlockquote(n mdast.Blockquote) {
	for i, c := range n.Children {
		oldIndent := w.indent
		w.writeIndent()
		w.writeString("> ")
		w.indent = 0
		w.printBlock(c, i == 0)
		w.indent = oldIndent
	}
}

func (w *writer) printDefinitionList(n mdast.DefinitionList) {
	for i, item := range n.Items {
		if i > 0 {
			w.writeByte('\n')
		}
		w.writeIndent()
		w.printInlines(item.Term)
		w.writeByte('\n')
		w.writeIndent()
		w.writeString(":   ")
		oldIndent := w.indent
		w.indent = oldIndent + 4
		for j, c := range item.Description {
			if j > 0 {
				w.writeByte('\n')
				w.printBlock(c, true)
				continue
			}
			// The first block continues the ":   " line already
			// written, so its own indent would be redundant.
			if p, ok := c.(mdast.Paragraph); ok {
				w.printInlines(p.Children)
				w.writeByte('\n')
			} else {
				w.printBlock(c, true)
			}
		}
		w.indent = oldIndent
	}
}
