package rdparser

import (
	"strings"

	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rderrs"
)

// parseUsageBody captures a \usage section as raw, uninterpreted R source.
// Usage bodies are function call signatures, not prose, so they are read
// in verbatim mode rather than through the general inline grammar.
func (p *Parser) parseUsageBody() []rdast.Inline {
	raw, _ := p.readVerbatimGroup()
	return []rdast.Inline{rdast.Text{Value: raw}}
}

var exampleMarkers = []struct {
	literal string
	kind    rdast.ExampleKind
}{
	{`\dontrun{`, rdast.ExampleDontrun},
	{`\donttest{`, rdast.ExampleDonttest},
	{`\dontshow{`, rdast.ExampleDontshow},
	{`\testonly{`, rdast.ExampleTestonly},
	{`\dontdiff{`, rdast.ExampleDontdiff},
}

// parseExamplesBody captures an \examples section as raw R source,
// segmenting it on the \dontrun/\donttest/\dontshow/\testonly/\dontdiff
// example-control markers so that each becomes its own ExampleBlock
// wrapping a single verbatim Text leaf, while ordinary code outside those
// markers stays plain Text. This keeps example code byte-identical
// end-to-end without requiring the full inline grammar to run over R
// source, which is not Rd markup.
func (p *Parser) parseExamplesBody() []rdast.Inline {
	raw, _ := p.readVerbatimGroup()
	return splitExampleMarkers(raw, p)
}

func splitExampleMarkers(raw string, p *Parser) []rdast.Inline {
	var out []rdast.Inline
	i := 0
	for i < len(raw) {
		markerAt, kind, markerLen := nextMarker(raw, i)
		if markerAt < 0 {
			if rest := raw[i:]; rest != "" {
				out = append(out, rdast.Text{Value: rest})
			}
			break
		}
		if markerAt > i {
			out = append(out, rdast.Text{Value: raw[i:markerAt]})
		}
		bodyStart := markerAt + markerLen
		inner, end, ok := scanBalancedBrace(raw, bodyStart)
		if !ok {
			p.fail(&rderrs.UnclosedGroupError{OpenedAt: markerAt})
			out = append(out, rdast.Text{Value: raw[markerAt:]})
			break
		}
		out = append(out, rdast.ExampleBlock{
			Kind:     kind,
			Children: []rdast.Inline{rdast.Text{Value: inner}},
		})
		i = end
	}
	return out
}

// nextMarker finds the earliest example-control marker at or after from,
// returning its byte offset, kind, and literal length (including the
// opening brace), or -1 if none remain.
func nextMarker(raw string, from int) (int, rdast.ExampleKind, int) {
	best := -1
	var bestKind rdast.ExampleKind
	bestLen := 0
	for _, m := range exampleMarkers {
		if idx := strings.Index(raw[from:], m.literal); idx >= 0 {
			pos := from + idx
			if best < 0 || pos < best {
				best = pos
				bestKind = m.kind
				bestLen = len(m.literal)
			}
		}
	}
	return best, bestKind, bestLen
}

// scanBalancedBrace returns the content between a brace already opened
// (bodyStart points just past the opening '{') and its matching close,
// plus the offset just past that close.
func scanBalancedBrace(raw string, bodyStart int) (string, int, bool) {
	depth := 1
	i := bodyStart
	for i < len(raw) {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[bodyStart:i], i + 1, true
			}
		}
		i++
	}
	return raw[bodyStart:], len(raw), false
}
