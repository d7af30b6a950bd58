package engine

import "fmt"

// SyntaxError reports that no live Path could consume the next symbol.
// It carries the location of the failure and the names of the
// non-terminals whose matchers most recently reported Unmatch, per
// spec.md §7.
// Near additionally lists any of Config.LiteralHints found by the
// executor's advisory prefilter.LiteralSet in the input consumed just
// before Index, when Σ is a rune or byte domain; it is nil otherwise or
// when no hints were configured.
type SyntaxError[I comparable] struct {
	Index int
	Names []I
	Near  []string
}

func (e *SyntaxError[I]) Error() string {
	if len(e.Near) == 0 {
		return fmt.Sprintf("terp: syntax error at index %d (tried: %v)", e.Index, e.Names)
	}
	return fmt.Sprintf("terp: syntax error at index %d (tried: %v, near: %v)", e.Index, e.Names, e.Near)
}

// UnexpectedEndOfInputError reports that, at finish(), zero Paths reached
// root completion.
type UnexpectedEndOfInputError struct{}

func (e *UnexpectedEndOfInputError) Error() string {
	return "terp: unexpected end of input"
}

// ErrUnexpectedEndOfInput is the sentinel instance tests and callers can
// compare against with errors.As/errors.Is.
var ErrUnexpectedEndOfInput = &UnexpectedEndOfInputError{}

// AmbiguityError reports that two or more Paths tied on longest consumed
// length at root completion — the grammar is ambiguous for this input.
type AmbiguityError struct {
	Consumed int
	Count    int
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("terp: ambiguous parse: %d paths tied at %d symbols consumed", e.Count, e.Consumed)
}

// ExplosionError reports that |L| exceeded Config.MaxLivePaths.
type ExplosionError struct {
	Limit int
}

func (e *ExplosionError) Error() string {
	return fmt.Sprintf("terp: live path set exceeded max_live_paths=%d", e.Limit)
}

// LeftRecursionError reports that a Path re-entered Ref(id) without
// having consumed any symbols since the previous entry.
type LeftRecursionError[I comparable] struct {
	ID I
}

func (e *LeftRecursionError[I]) Error() string {
	return fmt.Sprintf("terp: left recursion detected through %v", e.ID)
}

// RecursionLimitError reports that a Path's cursor stack grew past
// Config.MaxRecursionDepth, mirroring the teacher compiler's
// CompilerConfig.MaxRecursionDepth guard.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("terp: cursor stack exceeded max_recursion_depth=%d", e.Limit)
}
