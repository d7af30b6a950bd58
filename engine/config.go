package engine

// Config controls executor behavior and performance characteristics,
// following the same doc-commented-struct-plus-Default shape as the
// teacher engine's meta.Config.
type Config struct {
	// MaxLivePaths upper-bounds |L|, the live path set. Exceeding it
	// raises Explosion (spec.md §7). A grammar with heavy ambiguity or
	// deep ungrounded repetition can fork paths faster than they are
	// pruned; this bound makes that cost observable instead of letting
	// the process exhaust memory.
	// Default: 4096
	MaxLivePaths int

	// CoalesceFragments merges consecutive Fragments events emitted from
	// within the same enclosing non-terminal into one event carrying the
	// concatenated symbols (spec.md §4.F). Purely an observable choice;
	// no event information is lost either way.
	// Default: true
	CoalesceFragments bool

	// Parallelism sets the size of the worker pool used to advance
	// independent paths within one advance cycle (spec.md §5). 1 advances
	// paths one at a time. A value <= 0 is
	// replaced by the default.
	// Default: runtime.GOMAXPROCS(0)
	Parallelism int

	// MaxRecursionDepth bounds the cursor-stack depth reachable by
	// Concat/Rep/Ref nesting, mirroring the teacher compiler's
	// CompilerConfig.MaxRecursionDepth guard against unbounded grammar
	// nesting blowing the stack.
	// Default: 4096
	MaxRecursionDepth int

	// LiteralHints, for rune- or byte-domain Σ, names known grammar
	// literals (keywords, punctuation) the executor should look for in
	// the input near a SyntaxError, surfaced as SyntaxError.Near. It has
	// no effect on parsing; it is a pure diagnostic aid built once over
	// an advisory prefilter.LiteralSet. Nil disables it.
	// Default: nil
	LiteralHints []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxLivePaths:      4096,
		CoalesceFragments: true,
		Parallelism:       defaultParallelism(),
		MaxRecursionDepth: 4096,
	}
}
