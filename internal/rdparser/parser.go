// Package rdparser is a single-pass, recursive-descent parser that turns a
// token stream from internal/rdlex into an internal/rdast.RdDocument.
//
// The parser never backtracks beyond the one-token lookahead held in
// Parser.cur, and it never panics: unknown commands fall back to an
// opaque rdast.Code node (per the grammar's Command rule), and brace
// imbalance is reported as a rderrs.UnclosedGroupError or
// rderrs.UnexpectedCloseError rather than a silent truncation.
package rdparser

import (
	"strings"

	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rderrs"
	"rd2qmd/internal/rdlex"
)

// DefaultMaxErrors bounds how many parse errors accumulate before the
// parser gives up on the current document, mirroring the "halt that
// document" propagation rule for ParseError.
const DefaultMaxErrors = 1

// Parser holds state for a single parse of one Rd source buffer. It is
// not exported as reusable across sources; use Parse.
type Parser struct {
	lx        *rdlex.Lexer
	cur       rdlex.Token
	errs      []error
	maxErrors int
}

// Parse tokenizes and parses src, returning the resulting document and any
// parse errors encountered. Per the error-propagation rules, the first
// UnclosedGroupError or UnexpectedCloseError halts parsing of this
// document (DefaultMaxErrors == 1); the partially built document (sections
// parsed up to that point) is still returned.
func Parse(src []byte) (*rdast.RdDocument, []error) {
	p := &Parser{lx: rdlex.New(src), maxErrors: DefaultMaxErrors}
	p.advance()

	doc := &rdast.RdDocument{}
	for p.cur.Type != rdlex.TokenEOF && len(p.errs) < p.maxErrors {
		switch p.cur.Type {
		case rdlex.TokenText, rdlex.TokenNewline, rdlex.TokenComment,
			rdlex.TokenLBracket, rdlex.TokenRBracket:
			// Whitespace (and any other top-level noise) between
			// sections is discarded.
			p.advance()
		case rdlex.TokenRBrace:
			p.fail(&rderrs.UnexpectedCloseError{At: p.cur.Start})
		case rdlex.TokenLBrace:
			// A bare brace group with no preceding command at
			// document level; discard its content as whitespace
			// but still enforce balance.
			p.skipGroup()
		case rdlex.TokenBackslash:
			p.advance()
			ident := p.cur
			if ident.Type != rdlex.TokenIdentifier {
				// Lone backslash with nothing sensible following;
				// never reached via the lexer's own rules, but
				// guard defensively.
				continue
			}
			p.advance()
			if sec, ok := p.parseSection(ident.Literal); ok {
				doc.Sections = append(doc.Sections, sec)
			}
		default:
			p.advance()
		}
	}

	return doc, p.errs
}

func (p *Parser) advance() {
	p.cur = p.lx.Next()
}

func (p *Parser) fail(err error) {
	p.errs = append(p.errs, err)
}

// skipGroup consumes a balanced {...} group (current token must be
// TokenLBrace) and discards its content, used for bare top-level groups
// and unrecognised top-level commands.
func (p *Parser) skipGroup() {
	if p.cur.Type != rdlex.TokenLBrace {
		return
	}
	openPos := p.cur.Start
	depth := 1
	p.advance()
	for {
		switch p.cur.Type {
		case rdlex.TokenEOF:
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: openPos})
			return
		case rdlex.TokenLBrace:
			depth++
			p.advance()
		case rdlex.TokenRBrace:
			depth--
			p.advance()
			if depth == 0 {
				return
			}
		default:
			p.advance()
		}
	}
}

var knownSectionTags = map[string]rdast.SectionTag{
	"name":        rdast.TagName,
	"title":       rdast.TagTitle,
	"description": rdast.TagDescription,
	"alias":       rdast.TagAlias,
	"usage":       rdast.TagUsage,
	"arguments":   rdast.TagArguments,
	"value":       rdast.TagValue,
	"details":     rdast.TagDetails,
	"note":        rdast.TagNote,
	"author":      rdast.TagAuthor,
	"references":  rdast.TagReferences,
	"seealso":     rdast.TagSeeAlso,
	"examples":    rdast.TagExamples,
	"keyword":     rdast.TagKeyword,
	"concept":     rdast.TagConcept,
	"format":      rdast.TagFormat,
	"source":      rdast.TagSource,
}

// parseSection parses the body following a top-level "\ident" command. It
// returns ok=false for commands that are not sections (e.g. \encoding),
// whose single trailing brace group, if any, is discarded.
func (p *Parser) parseSection(ident string) (rdast.Section, bool) {
	if ident == "section" {
		return p.parseCustomSection()
	}

	tag, ok := knownSectionTags[ident]
	if !ok {
		// Not a recognised section: consume a trailing group (if
		// present) to keep brace balance and drop it.
		if p.cur.Type == rdlex.TokenLBrace {
			p.skipGroup()
		}
		return rdast.Section{}, false
	}

	if p.cur.Type != rdlex.TokenLBrace {
		p.fail(&rderrs.ExpectedGroupError{AfterCommand: ident, At: p.cur.Start})
		return rdast.Section{}, false
	}

	var body []rdast.Inline
	switch tag {
	case rdast.TagUsage:
		body = p.parseUsageBody()
	case rdast.TagExamples:
		body = p.parseExamplesBody()
	case rdast.TagArguments:
		body = p.parseArgumentsBody()
	default:
		body = p.parseGroupInlines()
	}

	return rdast.Section{Tag: tag, Body: body}, true
}

func (p *Parser) parseCustomSection() (rdast.Section, bool) {
	if p.cur.Type != rdlex.TokenLBrace {
		p.fail(&rderrs.ExpectedGroupError{AfterCommand: "section", At: p.cur.Start})
		return rdast.Section{}, false
	}
	titleNodes := p.parseGroupInlines()
	title := flattenText(titleNodes)

	if p.cur.Type != rdlex.TokenLBrace {
		p.fail(&rderrs.BadArityError{Command: "section", Expected: 2, Got: 1})
		return rdast.Section{}, false
	}
	body := p.parseGroupInlines()

	return rdast.Section{Tag: rdast.TagCustom, Custom: title, Body: body}, true
}

// parseGroupInlines requires the current token to be TokenLBrace, consumes
// the group, and returns its parsed inline content.
func (p *Parser) parseGroupInlines() []rdast.Inline {
	if p.cur.Type != rdlex.TokenLBrace {
		return nil
	}
	p.advance()
	body := p.parseInlines()
	p.expectCloseOrFail()
	return body
}

// expectCloseOrFail consumes a trailing TokenRBrace, or records
// UnclosedGroupError if the stream ran out first.
func (p *Parser) expectCloseOrFail() {
	if p.cur.Type == rdlex.TokenRBrace {
		p.advance()
		return
	}
	if p.cur.Type == rdlex.TokenEOF {
		p.fail(&rderrs.UnclosedGroupError{OpenedAt: p.cur.Start})
	}
}

// readVerbatimGroup requires the current token to be TokenLBrace, and
// returns the group's raw, unescaped byte content.
func (p *Parser) readVerbatimGroup() (string, bool) {
	if p.cur.Type != rdlex.TokenLBrace {
		return "", false
	}
	openPos := p.cur.Start
	p.lx.PushMode(rdlex.ModeVerbatim)
	p.advance()

	var buf strings.Builder
	depth := 1
	for {
		switch p.cur.Type {
		case rdlex.TokenEOF:
			p.lx.PopMode()
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: openPos})
			return buf.String(), true
		case rdlex.TokenLBrace:
			depth++
			buf.WriteByte('{')
			p.advance()
		case rdlex.TokenRBrace:
			depth--
			if depth == 0 {
				p.lx.PopMode()
				p.advance()
				return buf.String(), true
			}
			buf.WriteByte('}')
			p.advance()
		default:
			buf.WriteString(p.cur.Literal)
			p.advance()
		}
	}
}

// readOptionalBracket reads a leading "[...]" optional argument, if
// present, returning its raw text. ok is false if no '[' is present.
func (p *Parser) readOptionalBracket() (string, bool) {
	if p.cur.Type != rdlex.TokenLBracket {
		return "", false
	}
	start := p.cur.Start
	p.advance()
	var buf strings.Builder
	for {
		switch p.cur.Type {
		case rdlex.TokenRBracket:
			p.advance()
			return buf.String(), true
		case rdlex.TokenEOF, rdlex.TokenRBrace:
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: start})
			return buf.String(), true
		default:
			buf.WriteString(tokenText(p.cur))
			p.advance()
		}
	}
}

func tokenText(t rdlex.Token) string {
	if t.Literal != "" {
		return t.Literal
	}
	switch t.Type {
	case rdlex.TokenLBrace:
		return "{"
	case rdlex.TokenRBrace:
		return "}"
	case rdlex.TokenLBracket:
		return "["
	case rdlex.TokenRBracket:
		return "]"
	case rdlex.TokenNewline:
		return "\n"
	default:
		return ""
	}
}

// flattenText concatenates the literal text of a parsed inline sequence,
// used where the grammar calls for a plain string (link targets, URLs,
// custom section titles).
func flattenText(nodes []rdast.Inline) string {
	var b strings.Builder
	var walk func([]rdast.Inline)
	walk = func(ns []rdast.Inline) {
		for _, n := range ns {
			switch v := n.(type) {
			case rdast.Text:
				b.WriteString(v.Value)
			case rdast.Code:
				walk(v.Children)
			case rdast.Emph:
				walk(v.Children)
			case rdast.Strong:
				walk(v.Children)
			case rdast.Bold:
				walk(v.Children)
			case rdast.R:
				b.WriteString("R")
			case rdast.Dots:
				b.WriteString("...")
			case rdast.Ldots:
				b.WriteString("...")
			}
		}
	}
	walk(nodes)
	return b.String()
}
