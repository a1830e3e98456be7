package rdast

// Inline is the sealed union of every inline Rd construct. The unexported
// rdInline method means only types declared in this file satisfy the
// interface, so a type switch over Inline in internal/lower can be
// reviewed for exhaustiveness without an "unknown implementor" escape
// hatch.
type Inline interface {
	rdInline()
}

// Text is literal text with Rd escapes (\%, \\, \{, \}) already decoded.
type Text struct{ Value string }

func (Text) rdInline() {}

// Code is \code{...}.
type Code struct{ Children []Inline }

func (Code) rdInline() {}

// Emph is \emph{...}.
type Emph struct{ Children []Inline }

func (Emph) rdInline() {}

// Strong is \strong{...}.
type Strong struct{ Children []Inline }

func (Strong) rdInline() {}

// Bold is \bold{...} (a historical alias for \strong).
type Bold struct{ Children []Inline }

func (Bold) rdInline() {}

// Verb is \verb{...}; Raw carries uninterpreted bytes (no escape applied).
type Verb struct{ Raw string }

func (Verb) rdInline() {}

// Preformatted is \preformatted{...}; Raw is uninterpreted.
type Preformatted struct{ Raw string }

func (Preformatted) rdInline() {}

// Cite is \cite{...}.
type Cite struct{ Children []Inline }

func (Cite) rdInline() {}

// Abbr is \abbr{...}.
type Abbr struct{ Children []Inline }

func (Abbr) rdInline() {}

// Link is \link{target} or \link[package]{target} or
// \link[package:target]{text}.
type Link struct {
	Target  string
	Package *string // nil for an intra-package link
	Text    []Inline
}

func (Link) rdInline() {}

// LinkS4class is \linkS4class{class} or \linkS4class[package]{class}.
type LinkS4class struct {
	Class   string
	Package *string
	Text    []Inline
}

func (LinkS4class) rdInline() {}

// Href is \href{url}{text}.
type Href struct {
	URL  string
	Text []Inline
}

func (Href) rdInline() {}

// Url is \url{...}.
type Url struct{ Value string }

func (Url) rdInline() {}

// Email is \email{...}.
type Email struct{ Value string }

func (Email) rdInline() {}

// Doi is \doi{...}.
type Doi struct{ Value string }

func (Doi) rdInline() {}

// Eqn is \eqn{latex} or \eqn{latex}{ascii}.
type Eqn struct {
	Latex string
	ASCII *string
}

func (Eqn) rdInline() {}

// Deqn is \deqn{latex} or \deqn{latex}{ascii}.
type Deqn struct {
	Latex string
	ASCII *string
}

func (Deqn) rdInline() {}

// Itemize is \itemize{\item ... \item ...}. Each entry is the body
// following one \item; text before the first \item is discarded.
type Itemize struct{ Items [][]Inline }

func (Itemize) rdInline() {}

// Enumerate is \enumerate{\item ... \item ...}.
type Enumerate struct{ Items [][]Inline }

func (Enumerate) rdInline() {}

// DescribeItem is one \item{term}{description} inside \describe.
type DescribeItem struct {
	Term        []Inline
	Description []Inline
}

// Describe is \describe{\item{term}{desc} ...}.
type Describe struct{ Items []DescribeItem }

func (Describe) rdInline() {}

// Tabular is \tabular{spec}{rows}. Spec is verbatim (e.g. "llr"); rows are
// split on unescaped \cr, cells on unescaped \tab.
type Tabular struct {
	Spec string
	Rows [][][]Inline
}

func (Tabular) rdInline() {}

// R is the \R special, rendered literally as "R".
type R struct{}

func (R) rdInline() {}

// Dots is the \dots special, rendered as "...".
type Dots struct{}

func (Dots) rdInline() {}

// Ldots is the \ldots special, rendered as "...".
type Ldots struct{}

func (Ldots) rdInline() {}

// Cr is the \cr special: a hard line break outside of \tabular.
type Cr struct{}

func (Cr) rdInline() {}

// Tab is the \tab special: a literal tab inside preformatted text, a
// space elsewhere.
type Tab struct{}

func (Tab) rdInline() {}

// If is \if{format}{body}. Format is a verbatim token (e.g. "latex").
type If struct {
	Format string
	Then   []Inline
}

func (If) rdInline() {}

// Ifelse is \ifelse{format}{then}{else}.
type Ifelse struct {
	Format string
	Then   []Inline
	Else   []Inline
}

func (Ifelse) rdInline() {}

// Sexpr is \Sexpr{...}; Raw is preserved verbatim and never evaluated.
type Sexpr struct{ Raw string }

func (Sexpr) rdInline() {}

// MethodKind distinguishes the three \method-family spellings.
type MethodKind uint8

const (
	MethodGeneric MethodKind = iota
	MethodS3
	MethodS4
)

// Method is \method{generic}{class}, \S3method{generic}{class}, or
// \S4method{generic}{class}. Both groups are verbatim.
type Method struct {
	Kind    MethodKind
	Generic string
	Class   string
}

func (Method) rdInline() {}

// ExampleKind distinguishes the \dontrun-family example-control blocks.
type ExampleKind uint8

const (
	ExampleDontrun ExampleKind = iota
	ExampleDonttest
	ExampleDontshow
	ExampleTestonly
	ExampleDontdiff
)

// ExampleBlock is \dontrun{...}, \donttest{...}, \dontshow{...},
// \testonly{...}, or \dontdiff{...} found inside \examples.
type ExampleBlock struct {
	Kind     ExampleKind
	Children []Inline
}

func (ExampleBlock) rdInline() {}

// ArgumentItem is \item{name[,name]*}{description}, valid only inside an
// Arguments section body.
type ArgumentItem struct {
	Names       []string
	Description []Inline
}

func (ArgumentItem) rdInline() {}
