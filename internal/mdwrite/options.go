package mdwrite

// TableStyle selects how an mdast.Table is rendered.
type TableStyle uint8

const (
	// GridTable renders the Pandoc/Quarto grid-table form: computed
	// column widths, +/-/=/| borders. Survives multi-line cells.
	GridTable TableStyle = iota
	// PipeTable renders the GFM pipe-table form. Embedded newlines in a
	// cell are rendered as "<br>".
	PipeTable
)

// Options configures rendering. Zero value renders grid tables.
type Options struct {
	TableStyle TableStyle
}
