package engine

import (
	"github.com/torao/terp/event"
	"github.com/torao/terp/syntax"
)

// Status is the lifecycle state of a Path (spec.md §3, §4.D).
type Status uint8

const (
	// StatusLive means the path can still be advanced.
	StatusLive Status = iota

	// StatusBlocked means the path is waiting on more buffered symbols
	// before its current Term can decide Match/Unmatch.
	StatusBlocked

	// StatusCompleted means the path has finished matching the root with
	// no cursor frames remaining.
	StatusCompleted

	// StatusDead means the path has been pruned and is no longer
	// considered.
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusLive:
		return "Live"
	case StatusBlocked:
		return "Blocked"
	case StatusCompleted:
		return "Completed"
	case StatusDead:
		return "Dead"
	default:
		return "Status(?)"
	}
}

// frameKind tags the variant of a cursor-stack frame. Following the same
// kind-tag-plus-fields shape used throughout this port (see syntax.Kind,
// nfa.StateKind in the teacher engine), a Frame is one struct rather than
// an interface per continuation shape.
type frameKind uint8

const (
	// frameConcatRight resumes by descending into right once left
	// completes.
	frameConcatRight frameKind = iota

	// framePopRef resumes by emitting End(id) once the referenced body
	// completes, then treats the Ref node itself as completed.
	framePopRef

	// frameRepStep resumes by deciding whether to iterate repInner again
	// or stop, once one iteration completes.
	frameRepStep
)

type frame[S any, I comparable] struct {
	kind frameKind

	right *syntax.Syntax[S, I] // frameConcatRight

	id I // framePopRef

	repInner *syntax.Syntax[S, I] // frameRepStep: the repeated body
	repMin   int                  // frameRepStep
	repMax   int                  // frameRepStep
	repCount int                  // frameRepStep: iterations completed so far
}

// refEntry records an in-progress Ref(id) invocation for left-recursion
// detection: re-entering the same id with no consumption since entry is a
// non-terminating derivation (spec.md §4.D "Left recursion").
type refEntry[I comparable] struct {
	id            I
	consumedAtPos int
}

// Path is a single live parse candidate: a cursor through the Syntax
// tree, how much input it has consumed, its tentative event trail, and
// its lifecycle status (spec.md §3).
type Path[S any, I comparable] struct {
	// frames is the cursor stack: what to do once the node currently
	// being matched (current) completes.
	frames []frame[S, I]

	// current is the node being descended into. nil means "the last node
	// just completed; look at the top frame to decide what happens
	// next" — the zero-cost advance loop's pop state.
	current *syntax.Syntax[S, I]
	popping bool

	refStack []refEntry[I]

	consumed int // absolute index of the next symbol this path will read
	status   Status

	pending []event.Event[S, I]
}

func newPath[S any, I comparable](root *syntax.Syntax[S, I]) *Path[S, I] {
	return &Path[S, I]{current: root, status: StatusLive}
}

// clone returns an independent copy of p, used when forking at Alt and Rep
// choice points. Frame stacks, ref stacks, and pending events are copied
// by value so no two paths ever alias mutable state (spec.md §5).
func (p *Path[S, I]) clone() *Path[S, I] {
	cp := &Path[S, I]{
		current:  p.current,
		popping:  p.popping,
		consumed: p.consumed,
		status:   p.status,
	}
	cp.frames = append(cp.frames, p.frames...)
	cp.refStack = append(cp.refStack, p.refStack...)
	cp.pending = append(cp.pending, p.pending...)
	return cp
}
