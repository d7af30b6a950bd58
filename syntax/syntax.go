// Package syntax defines the grammar expression tree: terminals delegating
// to a matcher.Matcher, named references into a schema, concatenation,
// alternation, and bounded repetition.
//
// A Syntax value is immutable once built. Every node carries an implicit
// quantifier of exactly one occurrence; Rep is the only node that widens
// it. Following the teacher's NFA state representation (a Kind tag plus a
// small set of fields valid for that kind, see nfa.State), Syntax is a
// single tagged-union type rather than an interface hierarchy, so the
// executor can switch on Kind without type assertions.
package syntax

import (
	"fmt"
	"math"

	"github.com/torao/terp/matcher"
)

// Kind identifies which variant of Syntax a node represents.
type Kind uint8

const (
	// KindTerm is a terminal delegating to a Matcher.
	KindTerm Kind = iota

	// KindRef is a reference to another entry in the enclosing Schema.
	KindRef

	// KindConcat is left then right.
	KindConcat

	// KindAlt is left or right, longest-match wins.
	KindAlt

	// KindRep is inner repeated at least Min, at most Max times.
	KindRep
)

func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "Term"
	case KindRef:
		return "Ref"
	case KindConcat:
		return "Concat"
	case KindAlt:
		return "Alt"
	case KindRep:
		return "Rep"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Unbounded is the platform maximum for Rep's Max, meaning "no upper
// bound".
const Unbounded = math.MaxInt

// Syntax is a node in the grammar expression tree. Its Kind determines
// which of the remaining fields are valid, mirroring nfa.State's
// kind-tagged-union layout in the teacher engine.
type Syntax[S any, I comparable] struct {
	kind Kind

	// KindTerm
	term matcher.Matcher[S]

	// KindRef
	ref I

	// KindConcat, KindAlt
	left, right *Syntax[S, I]

	// KindRep
	inner    *Syntax[S, I]
	min, max int
}

// Kind returns the node's variant.
func (s *Syntax[S, I]) Kind() Kind { return s.kind }

// Matcher returns the delegate Matcher of a KindTerm node, or nil
// otherwise.
func (s *Syntax[S, I]) Matcher() matcher.Matcher[S] {
	if s.kind == KindTerm {
		return s.term
	}
	return nil
}

// Ref returns the referenced identifier for KindRef nodes, and the zero
// value of I otherwise.
func (s *Syntax[S, I]) Ref() I {
	if s.kind == KindRef {
		return s.ref
	}
	var zero I
	return zero
}

// Children returns the left and right operands of a KindConcat or KindAlt
// node, or (nil, nil) otherwise.
func (s *Syntax[S, I]) Children() (left, right *Syntax[S, I]) {
	if s.kind == KindConcat || s.kind == KindAlt {
		return s.left, s.right
	}
	return nil, nil
}

// Repetition returns the inner node and (min, max) bounds of a KindRep
// node, or (nil, 0, 0) otherwise.
func (s *Syntax[S, I]) Repetition() (inner *Syntax[S, I], min, max int) {
	if s.kind == KindRep {
		return s.inner, s.min, s.max
	}
	return nil, 0, 0
}

// String returns a human-readable representation of the node, in the
// style of nfa.State.String().
func (s *Syntax[S, I]) String() string {
	switch s.kind {
	case KindTerm:
		return "Term(...)"
	case KindRef:
		return fmt.Sprintf("Ref(%v)", s.ref)
	case KindConcat:
		return fmt.Sprintf("Concat(%s, %s)", s.left, s.right)
	case KindAlt:
		return fmt.Sprintf("Alt(%s, %s)", s.left, s.right)
	case KindRep:
		return fmt.Sprintf("Rep(%s, %d, %d)", s.inner, s.min, s.max)
	default:
		return "Syntax(invalid)"
	}
}
