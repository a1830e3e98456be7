// Package aliasindex builds and queries the topic→file-stem map used to
// resolve \link{} references that stay within the batch being converted.
package aliasindex

import (
	"sort"

	"rd2qmd/internal/rdast"
	"rd2qmd/internal/rderrs"
)

// Document pairs a source file stem (the filename without its ".Rd"
// extension) with its parsed tree, the unit the index is built from.
type Document struct {
	Stem string
	Doc  *rdast.RdDocument
}

// Index is an immutable topic→stem map. Build it once per batch, before
// any document is lowered; Resolve is safe for concurrent readers.
type Index struct {
	topics      map[string]string
	diagnostics []error
}

// Build collects every \name and \alias across docs into a topic→stem
// map. Collisions resolve to the lexicographically first file stem; all
// other contenders are recorded as DuplicateAliasWarning diagnostics, so
// the result is deterministic regardless of input order or goroutine
// scheduling.
func Build(docs []Document) *Index {
	winners := make(map[string]string)
	var diags []error

	sorted := make([]Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Stem < sorted[j].Stem })

	claim := func(topic, stem string) {
		existing, ok := winners[topic]
		if !ok {
			winners[topic] = stem
			return
		}
		if existing == stem {
			return
		}
		// existing sorts first lexicographically by construction since
		// docs are processed in stem order and winners are never
		// overwritten; stem is therefore always the later (losing) one.
		diags = append(diags, &rderrs.DuplicateAliasWarning{
			Topic:  topic,
			Winner: existing,
			Loser:  stem,
		})
	}

	for _, d := range sorted {
		if d.Doc == nil {
			continue
		}
		if name, ok := d.Doc.First(rdast.TagName); ok {
			if topic := flattenPlainText(name.Body); topic != "" {
				claim(topic, d.Stem)
			}
		}
		for _, alias := range d.Doc.Find(rdast.TagAlias) {
			if topic := flattenPlainText(alias.Body); topic != "" {
				claim(topic, d.Stem)
			}
		}
	}

	return &Index{topics: winners, diagnostics: diags}
}

// Resolve looks up the file stem that owns topic, if any.
func (idx *Index) Resolve(topic string) (string, bool) {
	stem, ok := idx.topics[topic]
	return stem, ok
}

// Diagnostics returns the DuplicateAliasWarning list accumulated during
// Build, in a stable order (sorted by topic then loser stem).
func (idx *Index) Diagnostics() []error {
	out := make([]error, len(idx.diagnostics))
	copy(out, idx.diagnostics)
	sort.Slice(out, func(i, j int) bool {
		a, aok := out[i].(*rderrs.DuplicateAliasWarning)
		b, bok := out[j].(*rderrs.DuplicateAliasWarning)
		if !aok || !bok {
			return false
		}
		if a.Topic != b.Topic {
			return a.Topic < b.Topic
		}
		return a.Loser < b.Loser
	})
	return out
}

// flattenPlainText extracts the literal text content of a Name/Alias
// body, which in practice is always a single Text node but is walked
// defensively in case a document wraps it in markup.
func flattenPlainText(nodes []rdast.Inline) string {
	var s string
	for _, n := range nodes {
		if t, ok := n.(rdast.Text); ok {
			s += t.Value
		}
	}
	return trimSpace(s)
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
