package terp

import (
	"cmp"

	"github.com/torao/terp/matcher"
)

// The minimal Matcher primitives spec.md §6 guarantees the engine
// provides without privileging any particular Σ domain, re-exported here
// so the common case needs no separate import of package matcher.
// Applications remain free to supply any matcher.Matcher of their own.

// Value matches a single symbol equal to want.
func Value[S comparable](want S) matcher.Matcher[S] { return matcher.Value(want) }

// Range matches a single symbol within [lo, hi] inclusive, under S's
// natural order.
func Range[S cmp.Ordered](lo, hi S) matcher.Matcher[S] { return matcher.Range(lo, hi) }

// Sequence matches the exact run of symbols in want, in order.
func Sequence[S comparable](want []S) matcher.Matcher[S] { return matcher.Sequence(want) }

// OneOfValueSet matches a single symbol that is a member of set.
func OneOfValueSet[S comparable](set ...S) matcher.Matcher[S] { return matcher.OneOfValueSet(set...) }

// OneOfSequenceSet matches the longest sequence in set that is a prefix
// of the buffer.
func OneOfSequenceSet[S comparable](set ...[]S) matcher.Matcher[S] {
	return matcher.OneOfSequenceSet(set...)
}
