package matcher

import "cmp"

// Value matches a single symbol equal to want. It is stable: once
// satisfied or refused at length 1, no further input changes the answer.
func Value[S comparable](want S) Matcher[S] {
	return Func[S](func(buf []S, eof bool) Result {
		if len(buf) == 0 {
			if eof {
				return Unmatch
			}
			return More
		}
		if buf[0] == want {
			return Match(1)
		}
		return Unmatch
	})
}

// Range matches a single symbol within [lo, hi] inclusive, under S's
// natural order. It is stable.
func Range[S cmp.Ordered](lo, hi S) Matcher[S] {
	return Func[S](func(buf []S, eof bool) Result {
		if len(buf) == 0 {
			if eof {
				return Unmatch
			}
			return More
		}
		if buf[0] >= lo && buf[0] <= hi {
			return Match(1)
		}
		return Unmatch
	})
}

// Sequence matches the exact run of symbols in want, in order. It is
// stable: any mismatching symbol in the run is a definite Unmatch as soon
// as it is seen.
func Sequence[S comparable](want []S) Matcher[S] {
	seq := append([]S(nil), want...)
	return Func[S](func(buf []S, eof bool) Result {
		n := len(seq)
		if n == 0 {
			return Match(0)
		}
		limit := n
		if len(buf) < limit {
			limit = len(buf)
		}
		for i := 0; i < limit; i++ {
			if buf[i] != seq[i] {
				return Unmatch
			}
		}
		if limit < n {
			if eof {
				return Unmatch
			}
			return More
		}
		return Match(n)
	})
}

// OneOfValueSet matches a single symbol that is a member of set. It is
// stable.
func OneOfValueSet[S comparable](set ...S) Matcher[S] {
	members := make(map[S]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	return Func[S](func(buf []S, eof bool) Result {
		if len(buf) == 0 {
			if eof {
				return Unmatch
			}
			return More
		}
		if _, ok := members[buf[0]]; ok {
			return Match(1)
		}
		return Unmatch
	})
}

// trieNode is one node of the prefix trie built by OneOfSequenceSet,
// grounded on the same sorted-common-prefix construction as a classic PEG
// string-set matcher, generalized from string keys to []S keys.
type trieNode[S comparable] struct {
	terminal bool
	children map[S]*trieNode[S]
}

func newTrieNode[S comparable]() *trieNode[S] {
	return &trieNode[S]{children: make(map[S]*trieNode[S])}
}

// OneOfSequenceSet matches the longest sequence in set that is a prefix of
// the buffer. Ties (two sequences of equal length both match) resolve to
// either, since they are indistinguishable by definition; grammars relying
// on that tie should not occur in a well-formed set (duplicate entries are
// simply redundant).
//
// Greedy: a match already found may still lengthen as more input arrives
// if a longer member of set shares the same prefix, so this matcher
// reports More past a satisfied prefix whenever a longer alternative is
// still reachable.
func OneOfSequenceSet[S comparable](set ...[]S) Matcher[S] {
	root := newTrieNode[S]()
	for _, seq := range set {
		n := root
		for _, sym := range seq {
			child, ok := n.children[sym]
			if !ok {
				child = newTrieNode[S]()
				n.children[sym] = child
			}
			n = child
		}
		n.terminal = true
	}

	return Func[S](func(buf []S, eof bool) Result {
		n := root
		bestLen := -1
		i := 0
		for {
			if n.terminal {
				bestLen = i
			}
			if i >= len(buf) {
				if len(n.children) == 0 || eof {
					break
				}
				return More
			}
			child, ok := n.children[buf[i]]
			if !ok {
				break
			}
			n = child
			i++
		}
		if bestLen < 0 {
			return Unmatch
		}
		return Match(bestLen)
	})
}
