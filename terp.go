// Package terp provides a streaming, schema-driven syntactic parser.
//
// terp marks up an arbitrary sequence of input symbols with nested
// begin/end labels according to an application-defined grammar (a
// Schema). Input arrives as fragments of unknown boundary; parse events
// are delivered to a caller-supplied callback as soon as their
// interpretation becomes unambiguous.
//
// The engine advances a set of live parse paths in parallel across each
// pushed fragment, discards dead paths, applies longest-match
// arbitration between surviving alternatives, and buffers emissions
// until only one interpretation of a given span remains.
//
// Basic usage:
//
//	sc := schema.New[rune, string]()
//	sc.Define("SUIT", syntax.Term[rune, string](matcher.OneOfValueSet([]rune("♠♣♦♥")...)))
//	sc.Define("RANK", syntax.Term[rune, string](matcher.OneOfValueSet([]rune("A23456789XJQK")...)))
//	sc.Define("CARD", syntax.ConcatAll(syntax.Ref[rune, string]("SUIT"), syntax.Ref[rune, string]("RANK")))
//
//	ctx, err := terp.New(sc, "CARD", func(ev event.Event[rune, string]) {
//	    fmt.Println(ev.Kind, ev.ID)
//	}, terp.DefaultOptions[rune]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ctx.Push([]rune("♠2")); err != nil {
//	    log.Fatal(err)
//	}
//	if err := ctx.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// Limitations: terp builds no AST of its own (§1 "AST construction after
// events... is a consumer's concern") and performs no error recovery
// beyond reporting the first unrecoverable mismatch.
package terp

import (
	"github.com/torao/terp/engine"
	"github.com/torao/terp/event"
	"github.com/torao/terp/schema"
)

// Options bundles everything a Context needs beyond the schema and root:
// executor tuning (Config) and, for character-domain Σ bindings, a
// newline predicate that enables running line/column counters on every
// emitted Location.
//
// Options is a plain struct rather than functional options, matching the
// teacher engine's Config-struct-plus-constructor idiom throughout this
// module.
type Options[S any] struct {
	// Config tunes the executor (MaxLivePaths, CoalesceFragments,
	// Parallelism, MaxRecursionDepth, LiteralHints). See
	// engine.DefaultConfig.
	Config engine.Config

	// Newline, if non-nil, marks which symbols end a line for
	// Location.Line/Column tracking (spec.md §6). Leave nil for
	// non-character Σ domains; every Location then reports Line 0,
	// Column equal to Index.
	Newline func(S) bool
}

// DefaultOptions returns Options with engine.DefaultConfig and no
// line/column tracking.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{Config: engine.DefaultConfig()}
}

// Context is the public façade described in spec.md §4.E: construct it
// over a Schema and root identifier, push fragments of input, receive
// parse events through a callback, and call Finish to confirm the parse.
//
// A Context is not safe for concurrent use by multiple goroutines; it is
// the Executor underneath a Context that parallelizes independent Paths
// within a single Push/Finish call, joining before that call returns.
type Context[S any, I comparable] struct {
	exec *engine.Executor[S, I]
}

// New constructs a Context parsing against sc rooted at root, delivering
// committed events to sink in order.
//
// New freezes sc as a side effect; sc must not be modified afterward (it
// is shared read-only with the Context, and with any other Context built
// from the same Frozen schema). New fails with one of
// schema.UndefinedReferenceError, schema.UndefinedRootError, or
// schema.ErrEmptySchema if sc or root is invalid, per spec.md §4.E's
// UndefinedRoot contract (generalized to the other schema-construction
// errors that Freeze detects). Duplicate definitions are reported
// earlier, by Schema.Define.
func New[S any, I comparable](sc *schema.Schema[S, I], root I, sink event.Sink[S, I], opts Options[S]) (*Context[S, I], error) {
	fr, err := sc.Freeze(root)
	if err != nil {
		return nil, err
	}
	return NewFromFrozen(fr, sink, opts), nil
}

// NewFromFrozen constructs a Context over an already-frozen schema,
// letting callers share one Frozen schema across many concurrent
// Contexts without re-validating it each time (spec.md §4.C: "concurrent
// parsers sharing a Schema do not contend").
func NewFromFrozen[S any, I comparable](fr *schema.Frozen[S, I], sink event.Sink[S, I], opts Options[S]) *Context[S, I] {
	tracker := event.NewTracker[S](opts.Newline)
	return &Context[S, I]{exec: engine.NewExecutor(fr, opts.Config, tracker, sink)}
}

// Push appends one or more fragments of input symbols, in order, and
// delivers any newly committed events to the callback before returning.
//
// Push fails with the first error reported by the executor (SyntaxError,
// Ambiguity, Explosion, or LeftRecursion); once it has failed, the
// Context is in a terminal error state and every subsequent Push or
// Finish call returns the same error immediately.
func (c *Context[S, I]) Push(fragments ...[]S) error {
	for _, f := range fragments {
		if err := c.exec.Push(f); err != nil {
			return err
		}
	}
	return nil
}

// Finish asserts end-of-input: Blocked paths are re-asked their pending
// Matchers as terminal, exactly one surviving Completed path must win
// (or the parse is ambiguous), and that path's entire remaining pending
// trail is emitted.
//
// Finish fails with UnexpectedEndOfInputError if no path completed the
// root, or with AmbiguityError if more than one tied on longest consumed
// length.
func (c *Context[S, I]) Finish() error {
	return c.exec.Finish()
}

// Failed returns the terminal error that ended this Context, if any. A
// Context that has not yet failed returns nil.
func (c *Context[S, I]) Failed() error {
	return c.exec.Failed()
}

// Stats returns a snapshot of the underlying executor's activity
// counters (forks, prunes, advance cycles, peak live-path count), useful
// for tuning Options.Config.MaxLivePaths.
func (c *Context[S, I]) Stats() engine.Stats {
	return c.exec.Stats()
}
