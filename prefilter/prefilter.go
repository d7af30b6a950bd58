// Package prefilter provides an advisory multi-literal scanner used to
// enrich parse-failure diagnostics with nearby known grammar keywords.
//
// The teacher engine's prefilter package exists to let a regex matcher
// skip regions of a byte haystack that provably cannot match before
// running the full NFA/DFA — a search-speed optimization keyed to a
// fixed byte alphabet. Terp's Σ is an opaque, generic type parameter
// (spec.md §3, §9 "Polymorphism over Σ and ID"), so no component may
// privilege one Σ binding with SIMD/byte scanning without narrowing the
// engine itself. This package repurposes the same underlying multi-
// pattern algorithm — Aho-Corasick, scanning once for many literals
// simultaneously rather than trying each in turn — for a diagnostic
// role instead: a LiteralSet built from a grammar's known literal
// keywords reports which of them occur in a window of already-consumed
// input, letting SyntaxError name nearby candidates (engine.SyntaxError's
// Near field) the way a hand-written parser's "did you mean" hint would.
//
// LiteralSet never participates in the match decision itself; Matcher
// alone has final say per spec.md §4.A.
package prefilter

import "github.com/itgcl/ahocorasick"

// LiteralSet is a built, read-only set of literal keyword strings ready
// to be scanned for. The zero value reports no candidates for any query.
type LiteralSet struct {
	am       *ahocorasick.Matcher
	literals []string
}

// Build constructs a LiteralSet over literals, deduplicating and
// discarding empty entries. An empty or nil literals yields a LiteralSet
// whose Candidates always returns nil.
func Build(literals []string) *LiteralSet {
	seen := make(map[string]bool, len(literals))
	uniq := make([]string, 0, len(literals))
	for _, l := range literals {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		uniq = append(uniq, l)
	}
	if len(uniq) == 0 {
		return &LiteralSet{}
	}
	return &LiteralSet{am: ahocorasick.NewStringMatcher(uniq), literals: uniq}
}

// Candidates returns every literal in the set occurring anywhere in
// text, in first-occurrence order with duplicates removed. It returns
// nil if the set is empty or none occur.
func (ls *LiteralSet) Candidates(text string) []string {
	if ls == nil || ls.am == nil || text == "" {
		return nil
	}
	idxs := ls.am.MatchString(text)
	if len(idxs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(idxs))
	out := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		lit := ls.literals[idx]
		if seen[lit] {
			continue
		}
		seen[lit] = true
		out = append(out, lit)
	}
	return out
}
