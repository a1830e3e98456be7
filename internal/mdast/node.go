// Package mdast defines the small, curated Markdown AST subset that
// internal/lower produces and internal/mdwrite renders. Every node is a
// pure value; there are no parent back-pointers, so a tree is always
// owned top-down and safe to share.
package mdast

// Node is the sealed union of every mdast node this project supports.
// The unexported marker method restricts implementors to this package,
// the same closed-sum-type discipline used by rdast.Inline.
type Node interface {
	mdastNode()
}

// Root is the top of a document tree.
type Root struct{ Children []Node }

func (Root) mdastNode() {}

// Paragraph is a block of inline content.
type Paragraph struct{ Children []Node }

func (Paragraph) mdastNode() {}

// Heading is an ATX heading of the given Depth (1-6).
type Heading struct {
	Depth    int
	Children []Node
}

func (Heading) mdastNode() {}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

func (ThematicBreak) mdastNode() {}

// Blockquote wraps block content.
type Blockquote struct{ Children []Node }

func (Blockquote) mdastNode() {}

// List is an ordered or unordered list of Items.
type List struct {
	Ordered bool
	Items   []ListItem
}

func (List) mdastNode() {}

// ListItem is one entry of a List; Children are block-level nodes.
type ListItem struct{ Children []Node }

func (ListItem) mdastNode() {}

// Code is a fenced block of source text; Lang is empty for a plain
// fence.
type Code struct {
	Lang  string
	Value string
}

func (Code) mdastNode() {}

// InlineCode is a `code span`.
type InlineCode struct{ Value string }

func (InlineCode) mdastNode() {}

// Text is literal inline text (escaped by the writer on output).
type Text struct{ Value string }

func (Text) mdastNode() {}

// Emphasis is *italic* content.
type Emphasis struct{ Children []Node }

func (Emphasis) mdastNode() {}

// Strong is **bold** content.
type Strong struct{ Children []Node }

func (Strong) mdastNode() {}

// Break is a hard line break.
type Break struct{}

func (Break) mdastNode() {}

// Link is [text](url).
type Link struct {
	URL      string
	Children []Node
}

func (Link) mdastNode() {}

// Image is ![alt](url).
type Image struct {
	URL string
	Alt string
}

func (Image) mdastNode() {}

// Html is a raw HTML passthrough fragment.
type Html struct{ Value string }

func (Html) mdastNode() {}

// Align is a column alignment hint for Table.
type Align uint8

const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table is a grid of rows; Rows[0] is the header row. Align has one
// entry per column.
type Table struct {
	Align []Align
	Rows  [][][]Node
}

func (Table) mdastNode() {}

// DefinitionList is a sequence of Term/Description pairs, the extension
// this project adds for \describe.
type DefinitionList struct{ Items []DefinitionItem }

func (DefinitionList) mdastNode() {}

// DefinitionItem pairs one term with its description.
type DefinitionItem struct {
	Term        []Node
	Description []Node
}

// Math is a block-level LaTeX expression.
type Math struct{ Value string }

func (Math) mdastNode() {}

// InlineMath is an inline LaTeX expression.
type InlineMath struct{ Value string }

func (InlineMath) mdastNode() {}
