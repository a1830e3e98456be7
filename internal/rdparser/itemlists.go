package rdparser

import (
	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rderrs"
	"rd2qmd/internal/rdlex"
)

// parseItemList parses the body of \itemize or \enumerate: each \item
// starts a new entry holding the content up to the next \item or the
// closing brace. Any content before the first \item is discarded.
// The current token must be TokenLBrace.
func (p *Parser) parseItemList() [][]rdast.Inline {
	if p.cur.Type != rdlex.TokenLBrace {
		return nil
	}
	p.advance()

	var items [][]rdast.Inline
	add := func(nodes ...rdast.Inline) {
		if n := len(items); n > 0 {
			items[n-1] = append(items[n-1], nodes...)
		}
	}
	for {
		switch p.cur.Type {
		case rdlex.TokenEOF:
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: p.cur.Start})
			return items
		case rdlex.TokenRBrace:
			p.advance()
			return items
		case rdlex.TokenBackslash:
			p.advance()
			if p.cur.Type == rdlex.TokenIdentifier && p.cur.Literal == "item" {
				p.advance()
				items = append(items, nil)
				continue
			}
			// Content before the first \item is dropped; later content joins the current item.
			if p.cur.Type == rdlex.TokenIdentifier {
				name := p.cur.Literal
				p.advance()
				node, _ := p.parseCommand(name)
				add(node)
			}
		case rdlex.TokenLBrace:
			add(p.parseGroupInlines()...)
		case rdlex.TokenText, rdlex.TokenNewline, rdlex.TokenLBracket, rdlex.TokenRBracket:
			add(rdast.Text{Value: tokenText(p.cur)})
			p.advance()
		default:
			p.advance()
		}
	}
}

// parseDescribeList parses the body of \describe: a sequence of
// \item{term}{description} entries.
func (p *Parser) parseDescribeList() []rdast.DescribeItem {
	if p.cur.Type != rdlex.TokenLBrace {
		return nil
	}
	p.advance()

	var items []rdast.DescribeItem
	for {
		switch p.cur.Type {
		case rdlex.TokenEOF:
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: p.cur.Start})
			return items
		case rdlex.TokenRBrace:
			p.advance()
			return items
		case rdlex.TokenBackslash:
			p.advance()
			if p.cur.Type == rdlex.TokenIdentifier && p.cur.Literal == "item" {
				p.advance()
				term := p.parseGroupInlines()
				desc := p.parseGroupInlines()
				items = append(items, rdast.DescribeItem{Term: term, Description: desc})
				continue
			}
			if p.cur.Type == rdlex.TokenIdentifier {
				p.advance()
			}
		default:
			p.advance()
		}
	}
}

// parseArgumentsBody parses an \arguments section: a sequence of
// \item{name[,name2,...]}{description} entries, interleaved with
// discarded whitespace. Current token must be TokenLBrace.
func (p *Parser) parseArgumentsBody() []rdast.Inline {
	if p.cur.Type != rdlex.TokenLBrace {
		return nil
	}
	p.advance()

	var out []rdast.Inline
	for {
		switch p.cur.Type {
		case rdlex.TokenEOF:
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: p.cur.Start})
			return out
		case rdlex.TokenRBrace:
			p.advance()
			return out
		case rdlex.TokenBackslash:
			p.advance()
			if p.cur.Type == rdlex.TokenIdentifier && p.cur.Literal == "item" {
				p.advance()
				namesRaw := flattenText(p.parseGroupInlines())
				desc := p.parseGroupInlines()
				out = append(out, rdast.ArgumentItem{
					Names:       splitArgNames(namesRaw),
					Description: desc,
				})
				continue
			}
			if p.cur.Type == rdlex.TokenIdentifier {
				p.advance()
			}
		default:
			p.advance()
		}
	}
}

// splitArgNames splits a "x, y, z" argument-name list on commas,
// trimming surrounding whitespace from each name.
func splitArgNames(raw string) []string {
	var names []string
	start := 0
	trim := func(s string) string {
		i, j := 0, len(s)
		for i < j && (s[i] == ' ' || s[i] == '\n' || s[i] == '\t') {
			i++
		}
		for j > i && (s[j-1] == ' ' || s[j-1] == '\n' || s[j-1] == '\t') {
			j--
		}
		return s[i:j]
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == ',' {
			if n := trim(raw[start:i]); n != "" {
				names = append(names, n)
			}
			start = i + 1
		}
	}
	if n := trim(raw[start:]); n != "" {
		names = append(names, n)
	}
	return names
}
