package mdwrite

import (
	"strings"
	"unicode/utf8"

	"rd2qmd/internal/mdast"
)

func (w *writer) printTable(t mdast.Table) {
	if w.opts.TableStyle == PipeTable {
		w.printPipeTable(t)
		return
	}
	w.printGridTable(t)
}

// cellText renders one table cell to a single escaped string, joining
// any block-level content (usually just one paragraph) with newlines.
func (w *writer) cellText(cell []mdast.Node, pipe bool) string {
	var parts []string
	for _, n := range cell {
		s, err := RenderNodes([]mdast.Node{n}, w.opts)
		if err != nil {
			continue
		}
		parts = append(parts, strings.TrimRight(s, "\n"))
	}
	joined := strings.Join(parts, "\n")
	if pipe {
		return strings.ReplaceAll(joined, "\n", "<br>")
	}
	return joined
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if i >= len(widths) {
				continue
			}
			lines := strings.Split(c, "\n")
			for _, line := range lines {
				if n := utf8.RuneCountInString(line); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	return widths
}

func (w *writer) printPipeTable(t mdast.Table) {
	if len(t.Rows) == 0 {
		return
	}
	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = make([]string, len(row))
		for j, c := range row {
			cells[i][j] = w.cellText(c, true)
		}
	}

	widths := columnWidths(cells[0], cells[1:])

	w.writeIndent()
	writePipeRow(w, cells[0], widths)
	w.writeIndent()
	w.writeByte('|')
	for i, width := range widths {
		w.writeByte(' ')
		w.writeString(strings.Repeat("-", maxInt(width, 3)))
		w.writeByte(' ')
		w.writeByte('|')
		_ = i
	}
	w.writeByte('\n')
	for _, row := range cells[1:] {
		w.writeIndent()
		writePipeRow(w, row, widths)
	}
}

func writePipeRow(w *writer, row []string, widths []int) {
	w.writeByte('|')
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		w.writeByte(' ')
		w.writeString(cell)
		w.writeString(strings.Repeat(" ", width-utf8.RuneCountInString(cell)))
		w.writeByte(' ')
		w.writeByte('|')
	}
	w.writeByte('\n')
}

func (w *writer) printGridTable(t mdast.Table) {
	if len(t.Rows) == 0 {
		return
	}
	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = make([]string, len(row))
		for j, c := range row {
			cells[i][j] = w.cellText(c, false)
		}
	}

	widths := columnWidths(cells[0], cells[1:])

	border := func(sep byte) string {
		var b strings.Builder
		b.WriteByte('+')
		for _, width := range widths {
			b.WriteString(strings.Repeat(string(sep), width+2))
			b.WriteByte('+')
		}
		return b.String()
	}

	writeRow := func(row []string) {
		lineCounts := make([][]string, len(widths))
		maxLines := 1
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			lineCounts[i] = strings.Split(cell, "\n")
			if len(lineCounts[i]) > maxLines {
				maxLines = len(lineCounts[i])
			}
		}
		for line := 0; line < maxLines; line++ {
			w.writeIndent()
			w.writeByte('|')
			for i, width := range widths {
				text := ""
				if line < len(lineCounts[i]) {
					text = lineCounts[i][line]
				}
				w.writeByte(' ')
				w.writeString(text)
				w.writeString(strings.Repeat(" ", width-utf8.RuneCountInString(text)))
				w.writeByte(' ')
				w.writeByte('|')
			}
			w.writeByte('\n')
		}
	}

	w.writeIndent()
	w.writeString(border('-'))
	w.writeByte('\n')
	writeRow(cells[0])
	w.writeIndent()
	w.writeString(border('='))
	w.writeByte('\n')
	for _, row := range cells[1:] {
		writeRow(row)
		w.writeIndent()
		w.writeString(border('-'))
		w.writeByte('\n')
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
