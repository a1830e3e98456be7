package rdparser

import (
	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rdlex"
)

// parseTabular parses \tabular{spec}{rows}. The spec group is verbatim
// (column alignment letters, e.g. "llr"); the rows group is parsed as
// ordinary inline content and then split on the \cr and \tab specials it
// contains, since row/cell boundaries are themselves Rd commands rather
// than lexical punctuation.
func (p *Parser) parseTabular() (rdast.Inline, bool) {
	spec, _ := p.readVerbatimGroup()
	if p.cur.Type != rdlex.TokenLBrace {
		return rdast.Tabular{Spec: spec}, true
	}
	flat := p.parseGroupInlines()
	return rdast.Tabular{Spec: spec, Rows: splitTabularRows(flat)}, true
}

func splitTabularRows(flat []rdast.Inline) [][][]rdast.Inline {
	var rows [][][]rdast.Inline
	var row [][]rdast.Inline
	var cell []rdast.Inline

	flushCell := func() {
		row = append(row, cell)
		cell = nil
	}
	flushRow := func() {
		flushCell()
		rows = append(rows, row)
		row = nil
	}

	for _, n := range flat {
		switch n.(type) {
		case rdast.Cr:
			flushRow()
		case rdast.Tab:
			flushCell()
		default:
			cell = append(cell, n)
		}
	}
	if len(cell) > 0 || len(row) > 0 {
		flushRow()
	}
	return rows
}
