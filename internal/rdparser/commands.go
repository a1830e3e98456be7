package rdparser

import (
	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rdlex"
)

// parseInlines consumes a run of inline content, stopping (without
// consuming) at a TokenRBrace that closes the caller's group, or at EOF.
// It is the general-purpose content parser used for section bodies,
// command argument groups, list items, and describe descriptions.
func (p *Parser) parseInlines() []rdast.Inline {
	var out []rdast.Inline
	appendText := func(s string) {
		if s == "" {
			return
		}
		if n := len(out); n > 0 {
			if t, ok := out[n-1].(rdast.Text); ok {
				out[n-1] = rdast.Text{Value: t.Value + s}
				return
			}
		}
		out = append(out, rdast.Text{Value: s})
	}

	for {
		switch p.cur.Type {
		case rdlex.TokenEOF, rdlex.TokenRBrace:
			return out
		case rdlex.TokenText:
			appendText(p.cur.Literal)
			p.advance()
		case rdlex.TokenComment:
			// Comments carry no content into the tree.
			p.advance()
		case rdlex.TokenNewline:
			appendText("\n")
			p.advance()
		case rdlex.TokenLBracket:
			appendText("[")
			p.advance()
		case rdlex.TokenRBracket:
			appendText("]")
			p.advance()
		case rdlex.TokenLBrace:
			// A brace group with no preceding command: grouping only,
			// flattened into the surrounding sequence.
			inner := p.parseGroupInlines()
			out = append(out, inner...)
		case rdlex.TokenBackslash:
			p.advance()
			ident := p.cur
			if ident.Type != rdlex.TokenIdentifier {
				appendText("\\")
				continue
			}
			p.advance()
			if node, ok := p.parseCommand(ident.Literal); ok {
				out = append(out, node)
			}
		default:
			p.advance()
		}
	}
}

// parseCommand dispatches on a command name already consumed (the
// TokenBackslash and TokenIdentifier are both behind p.cur now). It
// returns ok=false for commands that contribute no node (currently
// unreachable, kept for symmetry with parseSection's dispatch).
func (p *Parser) parseCommand(name string) (rdast.Inline, bool) {
	switch name {
	case "code":
		return rdast.Code{Children: p.parseGroupInlines()}, true
	case "emph":
		return rdast.Emph{Children: p.parseGroupInlines()}, true
	case "strong":
		return rdast.Strong{Children: p.parseGroupInlines()}, true
	case "bold":
		return rdast.Bold{Children: p.parseGroupInlines()}, true
	case "cite":
		return rdast.Cite{Children: p.parseGroupInlines()}, true
	case "abbr":
		return rdast.Abbr{Children: p.parseGroupInlines()}, true

	case "verb":
		raw, _ := p.readVerbatimGroup()
		return rdast.Verb{Raw: raw}, true
	case "preformatted":
		raw, _ := p.readVerbatimGroup()
		return rdast.Preformatted{Raw: raw}, true
	case "Sexpr":
		raw, _ := p.readVerbatimGroup()
		return rdast.Sexpr{Raw: raw}, true

	case "eqn":
		latex, ascii := p.readOneOrTwoVerbatimGroups()
		return rdast.Eqn{Latex: latex, ASCII: ascii}, true
	case "deqn":
		latex, ascii := p.readOneOrTwoVerbatimGroups()
		return rdast.Deqn{Latex: latex, ASCII: ascii}, true

	case "link":
		return p.parseLink()
	case "linkS4class":
		return p.parseLinkS4class()
	case "href":
		url := flattenText(p.parseGroupInlines())
		text := p.parseGroupInlines()
		return rdast.Href{URL: url, Text: text}, true
	case "url":
		return rdast.Url{Value: flattenText(p.parseGroupInlines())}, true
	case "email":
		return rdast.Email{Value: flattenText(p.parseGroupInlines())}, true
	case "doi":
		return rdast.Doi{Value: flattenText(p.parseGroupInlines())}, true

	case "itemize":
		return rdast.Itemize{Items: p.parseItemList()}, true
	case "enumerate":
		return rdast.Enumerate{Items: p.parseItemList()}, true
	case "describe":
		return rdast.Describe{Items: p.parseDescribeList()}, true
	case "tabular":
		return p.parseTabular()

	case "R":
		return rdast.R{}, true
	case "dots":
		return rdast.Dots{}, true
	case "ldots":
		return rdast.Ldots{}, true
	case "cr":
		return rdast.Cr{}, true
	case "tab":
		return rdast.Tab{}, true

	case "if":
		format, _ := p.readVerbatimGroup()
		then := p.parseGroupInlines()
		return rdast.If{Format: format, Then: then}, true
	case "ifelse":
		format, _ := p.readVerbatimGroup()
		then := p.parseGroupInlines()
		els := p.parseGroupInlines()
		return rdast.Ifelse{Format: format, Then: then, Else: els}, true

	case "method":
		generic, class := p.readTwoVerbatimGroups()
		return rdast.Method{Kind: rdast.MethodGeneric, Generic: generic, Class: class}, true
	case "S3method":
		generic, class := p.readTwoVerbatimGroups()
		return rdast.Method{Kind: rdast.MethodS3, Generic: generic, Class: class}, true
	case "S4method":
		generic, class := p.readTwoVerbatimGroups()
		return rdast.Method{Kind: rdast.MethodS4, Generic: generic, Class: class}, true

	case "dontrun":
		return rdast.ExampleBlock{Kind: rdast.ExampleDontrun, Children: p.parseGroupInlines()}, true
	case "donttest":
		return rdast.ExampleBlock{Kind: rdast.ExampleDonttest, Children: p.parseGroupInlines()}, true
	case "dontshow":
		return rdast.ExampleBlock{Kind: rdast.ExampleDontshow, Children: p.parseGroupInlines()}, true
	case "testonly":
		return rdast.ExampleBlock{Kind: rdast.ExampleTestonly, Children: p.parseGroupInlines()}, true
	case "dontdiff":
		return rdast.ExampleBlock{Kind: rdast.ExampleDontdiff, Children: p.parseGroupInlines()}, true

	default:
		// Unknown command: fall back to an opaque Code node wrapping
		// whatever argument groups follow, so information is preserved
		// rather than silently dropped, and the lowerer still has
		// something renderable.
		var groups []rdast.Inline
		for p.cur.Type == rdlex.TokenLBrace {
			groups = append(groups, p.parseGroupInlines()...)
		}
		if groups == nil {
			groups = []rdast.Inline{rdast.Text{Value: name}}
		}
		return rdast.Code{Children: groups}, true
	}
}

func (p *Parser) readTwoVerbatimGroups() (string, string) {
	a, _ := p.readVerbatimGroup()
	b, _ := p.readVerbatimGroup()
	return a, b
}

func (p *Parser) readOneOrTwoVerbatimGroups() (string, *string) {
	a, _ := p.readVerbatimGroup()
	if p.cur.Type == rdlex.TokenLBrace {
		b, _ := p.readVerbatimGroup()
		return a, &b
	}
	return a, nil
}

func (p *Parser) parseLink() (rdast.Inline, bool) {
	opt, hasOpt := p.readOptionalBracket()
	text := p.parseGroupInlines()
	if !hasOpt {
		return rdast.Link{Target: flattenText(text), Text: text}, true
	}
	pkg, topic := splitPkgTopic(opt)
	if topic == "" {
		return rdast.Link{Target: flattenText(text), Package: &pkg, Text: text}, true
	}
	return rdast.Link{Target: topic, Package: &pkg, Text: text}, true
}

func (p *Parser) parseLinkS4class() (rdast.Inline, bool) {
	opt, hasOpt := p.readOptionalBracket()
	text := p.parseGroupInlines()
	class := flattenText(text)
	if !hasOpt {
		return rdast.LinkS4class{Class: class, Text: text}, true
	}
	pkg := opt
	return rdast.LinkS4class{Class: class, Package: &pkg, Text: text}, true
}

// splitPkgTopic splits a \link optional-argument body of the form
// "pkg" or "pkg:topic".
func splitPkgTopic(opt string) (pkg, topic string) {
	for i := 0; i < len(opt); i++ {
		if opt[i] == ':' {
			return opt[:i], opt[i+1:]
		}
	}
	return opt, ""
}
