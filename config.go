package terp

import "github.com/torao/terp/engine"

// Config is engine.Config: MaxLivePaths, CoalesceFragments, Parallelism,
// MaxRecursionDepth, and LiteralHints. Aliased at the package root so callers need not
// import the engine package for the common case.
type Config = engine.Config

// DefaultConfig returns a Config with sensible defaults; see
// engine.DefaultConfig.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}
