package syntax

import "github.com/torao/terp/matcher"

// Term builds a terminal node delegating to m.
func Term[S any, I comparable](m matcher.Matcher[S]) *Syntax[S, I] {
	return &Syntax[S, I]{kind: KindTerm, term: m}
}

// Ref builds a reference to id, resolved within the enclosing Schema at
// parse time.
func Ref[S any, I comparable](id I) *Syntax[S, I] {
	return &Syntax[S, I]{kind: KindRef, ref: id}
}

// Concat builds left-then-right with no implicit separator.
func Concat[S any, I comparable](left, right *Syntax[S, I]) *Syntax[S, I] {
	return &Syntax[S, I]{kind: KindConcat, left: left, right: right}
}

// ConcatAll folds Concat over two or more operands, left-associatively.
// Given a single operand, it returns that operand unchanged.
func ConcatAll[S any, I comparable](first *Syntax[S, I], rest ...*Syntax[S, I]) *Syntax[S, I] {
	acc := first
	for _, next := range rest {
		acc = Concat(acc, next)
	}
	return acc
}

// Alt builds left-or-right; longest-match wins at parse time.
func Alt[S any, I comparable](left, right *Syntax[S, I]) *Syntax[S, I] {
	return &Syntax[S, I]{kind: KindAlt, left: left, right: right}
}

// AltAll folds Alt over two or more operands, left-associatively.
func AltAll[S any, I comparable](first *Syntax[S, I], rest ...*Syntax[S, I]) *Syntax[S, I] {
	acc := first
	for _, next := range rest {
		acc = Alt(acc, next)
	}
	return acc
}

// Rep builds inner repeated at least min, at most max times. max may be
// Unbounded. Panics if min < 0 or max < min.
func Rep[S any, I comparable](inner *Syntax[S, I], min, max int) *Syntax[S, I] {
	if min < 0 || max < min {
		panic("syntax: invalid repetition bounds")
	}
	return &Syntax[S, I]{kind: KindRep, inner: inner, min: min, max: max}
}

// Opt is Rep(inner, 0, 1): inner occurs zero or one time.
func Opt[S any, I comparable](inner *Syntax[S, I]) *Syntax[S, I] {
	return Rep(inner, 0, 1)
}

// Star is Rep(inner, 0, Unbounded): inner occurs zero or more times.
func Star[S any, I comparable](inner *Syntax[S, I]) *Syntax[S, I] {
	return Rep(inner, 0, Unbounded)
}

// Plus is Rep(inner, 1, Unbounded): inner occurs one or more times.
func Plus[S any, I comparable](inner *Syntax[S, I]) *Syntax[S, I] {
	return Rep(inner, 1, Unbounded)
}
