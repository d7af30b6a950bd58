// Package schema implements the frozen, ordered ID -> Syntax mapping that
// is the grammar itself. A Schema is built once, frozen, and then shared
// by read-only reference across every parser instance that uses it —
// concurrent parsers sharing a Schema never contend, exactly as the
// teacher engine shares one compiled NFA across PikeVM instances.
package schema

import (
	"fmt"

	"github.com/torao/terp/internal/conv"
	"github.com/torao/terp/syntax"
)

// Schema is an ordered mapping from identifier to grammar expression.
// The zero value is not usable; construct with New.
type Schema[S any, I comparable] struct {
	order []I
	defs  map[I]*syntax.Syntax[S, I]
	root  I
	built bool
}

// New creates an empty, mutable Schema builder.
func New[S any, I comparable]() *Schema[S, I] {
	return &Schema[S, I]{defs: make(map[I]*syntax.Syntax[S, I])}
}

// Define adds id -> expr to the schema. Redefining an id that has already
// been defined is a construction error, per spec.md §4.C. Define panics if
// called after Freeze.
func (s *Schema[S, I]) Define(id I, expr *syntax.Syntax[S, I]) error {
	if s.built {
		panic("schema: Define called on a frozen Schema")
	}
	if _, exists := s.defs[id]; exists {
		return &DuplicateDefinitionError[I]{ID: id}
	}
	s.defs[id] = expr
	s.order = append(s.order, id)
	return nil
}

// Freeze validates the schema (every Ref resolves; the schema is
// non-empty) and fixes root as the entry point used by parsers. Cycles
// through Ref are permitted — they are checked at parse time as
// left-recursion divergence, not here — but an undefined reference is a
// construction-time error since it can never be satisfied by any input.
//
// After Freeze, the Schema is immutable: Define panics, and the returned
// Frozen's Root reports the frozen root.
func (s *Schema[S, I]) Freeze(root I) (*Frozen[S, I], error) {
	if len(s.defs) == 0 {
		return nil, ErrEmptySchema
	}
	if _, ok := s.defs[root]; !ok {
		return nil, &UndefinedRootError[I]{Root: root}
	}
	for _, id := range s.order {
		if err := checkRefs(s.defs[id], s.defs); err != nil {
			return nil, err
		}
	}
	s.built = true
	indices := make(map[*syntax.Syntax[S, I]]uint32)
	for _, id := range s.order {
		indexNodes(s.defs[id], indices)
	}
	return &Frozen[S, I]{defs: s.defs, order: s.order, root: root, nodeIndex: indices}, nil
}

// indexNodes assigns a dense, stable uint32 index to every Syntax node
// reachable from n, for use by a bounded-capacity sparse.SparseSet (see
// engine.Stats' PeakNodeCoverage) that would otherwise have no fixed
// universe to key on across an unbounded cursor stack. Already-indexed
// nodes (shared via Ref cycles, or literally the same *Syntax reused in
// two places) are left alone rather than double counted.
func indexNodes[S any, I comparable](n *syntax.Syntax[S, I], out map[*syntax.Syntax[S, I]]uint32) {
	if n == nil {
		return
	}
	if _, ok := out[n]; ok {
		return
	}
	out[n] = conv.IntToUint32(len(out))
	switch n.Kind() {
	case syntax.KindConcat, syntax.KindAlt:
		left, right := n.Children()
		indexNodes(left, out)
		indexNodes(right, out)
	case syntax.KindRep:
		inner, _, _ := n.Repetition()
		indexNodes(inner, out)
	}
}

func checkRefs[S any, I comparable](node *syntax.Syntax[S, I], defs map[I]*syntax.Syntax[S, I]) error {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case syntax.KindRef:
		id := node.Ref()
		if _, ok := defs[id]; !ok {
			return &UndefinedReferenceError[I]{ID: id}
		}
	case syntax.KindConcat, syntax.KindAlt:
		left, right := node.Children()
		if err := checkRefs(left, defs); err != nil {
			return err
		}
		if err := checkRefs(right, defs); err != nil {
			return err
		}
	case syntax.KindRep:
		inner, _, _ := node.Repetition()
		return checkRefs(inner, defs)
	}
	return nil
}

// Frozen is an immutable Schema handed to a parser. It is safe for
// concurrent use by any number of parsers.
type Frozen[S any, I comparable] struct {
	defs      map[I]*syntax.Syntax[S, I]
	order     []I
	root      I
	nodeIndex map[*syntax.Syntax[S, I]]uint32
}

// NodeCount returns the number of distinct Syntax nodes in the schema,
// the fixed universe size a caller can hand to sparse.NewSparseSet when
// tracking per-node membership across a generation of Paths.
func (f *Frozen[S, I]) NodeCount() int { return len(f.nodeIndex) }

// NodeIndex returns the dense index assigned to n at Freeze time, and
// whether n belongs to this schema at all.
func (f *Frozen[S, I]) NodeIndex(n *syntax.Syntax[S, I]) (uint32, bool) {
	idx, ok := f.nodeIndex[n]
	return idx, ok
}

// Root returns the entry-point identifier fixed at Freeze time.
func (f *Frozen[S, I]) Root() I { return f.root }

// Lookup returns the Syntax defined for id, and whether it was found.
func (f *Frozen[S, I]) Lookup(id I) (*syntax.Syntax[S, I], bool) {
	n, ok := f.defs[id]
	return n, ok
}

// IDs returns the defined identifiers in definition order.
func (f *Frozen[S, I]) IDs() []I {
	out := make([]I, len(f.order))
	copy(out, f.order)
	return out
}

// DuplicateDefinitionError reports that id was defined more than once.
type DuplicateDefinitionError[I comparable] struct{ ID I }

func (e *DuplicateDefinitionError[I]) Error() string {
	return fmt.Sprintf("schema: duplicate definition for %v", e.ID)
}

// UndefinedReferenceError reports that some Syntax referenced id but no
// such entry exists in the schema.
type UndefinedReferenceError[I comparable] struct{ ID I }

func (e *UndefinedReferenceError[I]) Error() string {
	return fmt.Sprintf("schema: undefined reference %v", e.ID)
}

// UndefinedRootError reports that Freeze was asked to root the schema at
// an id with no definition.
type UndefinedRootError[I comparable] struct{ Root I }

func (e *UndefinedRootError[I]) Error() string {
	return fmt.Sprintf("schema: undefined root %v", e.Root)
}

// ErrEmptySchema reports that Freeze was called with no definitions.
var ErrEmptySchema = fmt.Errorf("schema: empty schema")
