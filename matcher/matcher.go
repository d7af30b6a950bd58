// Package matcher defines the Matcher contract — the one point where the
// engine in package engine delegates interpretation of concrete symbols to
// an application- or library-supplied decision function — plus a small set
// of built-in primitives (range, value, sequence, one-of-value-set,
// one-of-sequence-set) that cover the common cases without privileging any
// particular symbol domain.
//
// A Matcher is consulted with a prefix of the live input buffer and must
// answer one of three ways: the prefix matches with a known length, the
// prefix definitely does not match, or more symbols are needed before a
// decision can be made. Matchers never observe or mutate parser state and
// must be idempotent: the same buffer prefix always yields the same
// result.
package matcher

import "fmt"

// Kind identifies which variant of MatchResult is held.
type Kind uint8

const (
	// KindMatch means the prefix matches, with Length symbols consumed.
	KindMatch Kind = iota

	// KindUnmatch means the prefix definitely does not match; no amount
	// of additional input will change that.
	KindUnmatch

	// KindMore means the decision cannot be made with the symbols
	// buffered so far; the caller must supply more input (or, at
	// end-of-input, re-ask with eof=true, per the Matcher interface).
	KindMore
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "Match"
	case KindUnmatch:
		return "Unmatch"
	case KindMore:
		return "More"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result is a closed variant: Match(length), Unmatch, or More.
// Only Length is meaningful when Kind == KindMatch.
type Result struct {
	Kind   Kind
	Length int
}

// Match constructs a Result reporting a match of the given length.
func Match(length int) Result { return Result{Kind: KindMatch, Length: length} }

// Unmatch is the Result reporting a definite non-match.
var Unmatch = Result{Kind: KindUnmatch}

// More is the Result reporting that more input is needed to decide.
var More = Result{Kind: KindMore}

// Matcher is a pure function from a buffer prefix to a Result.
//
// Match(buf, eof) must be idempotent: called twice with an identical buf
// and eof it returns identical results. Monotonicity (spec.md §4.A):
//   - if Match(buf, false) == More, then for every strict prefix buf' of
//     buf, Match(buf', false) is also More or Unmatch;
//   - if Match(buf, false) == Match(n), then for any extension buf+x,
//     either Match(buf+x, false) == Match(n) (a "stable" matcher) or
//     Match(buf+x, false) == Match(n') with n' >= n (a "greedy" matcher).
//
// When eof is true the matcher is being asked with no further symbols
// ever arriving; More must not be returned (callers treat a lingering
// More at eof as Unmatch, per spec.md §6, but well-behaved matchers
// resolve the decision themselves).
type Matcher[S any] interface {
	Match(buf []S, eof bool) Result
}

// Func adapts a plain function to the Matcher interface.
type Func[S any] func(buf []S, eof bool) Result

// Match implements Matcher.
func (f Func[S]) Match(buf []S, eof bool) Result { return f(buf, eof) }
