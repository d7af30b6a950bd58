package terp

import (
	"github.com/torao/terp/engine"
	"github.com/torao/terp/schema"
)

// Error kinds surfaced by Schema.Define, New, Push, and Finish, aliased at the package
// root per spec.md §7. Callers should match with errors.As/errors.Is,
// never string comparison.
type (
	// SyntaxError: no live Path can consume the next symbol.
	SyntaxError[I comparable] = engine.SyntaxError[I]

	// AmbiguityError: two or more Paths tied on longest consumed length.
	AmbiguityError = engine.AmbiguityError

	// ExplosionError: |L| exceeded Config.MaxLivePaths.
	ExplosionError = engine.ExplosionError

	// LeftRecursionError: a Path re-entered Ref(id) without progress.
	LeftRecursionError[I comparable] = engine.LeftRecursionError[I]

	// RecursionLimitError: a cursor stack exceeded Config.MaxRecursionDepth.
	RecursionLimitError = engine.RecursionLimitError

	// UnexpectedEndOfInputError: at Finish, zero Paths reached root
	// completion.
	UnexpectedEndOfInputError = engine.UnexpectedEndOfInputError

	// DuplicateDefinitionError: a schema id was Define'd more than once.
	DuplicateDefinitionError[I comparable] = schema.DuplicateDefinitionError[I]

	// UndefinedReferenceError: a Ref(id) resolves to nothing in the schema.
	UndefinedReferenceError[I comparable] = schema.UndefinedReferenceError[I]

	// UndefinedRootError: New/Freeze was asked to root the schema at an
	// undefined id.
	UndefinedRootError[I comparable] = schema.UndefinedRootError[I]
)

// ErrUnexpectedEndOfInput is the sentinel UnexpectedEndOfInputError
// instance; compare with errors.Is.
var ErrUnexpectedEndOfInput = engine.ErrUnexpectedEndOfInput

// ErrEmptySchema is the sentinel reported when Freeze is called on a
// schema with no definitions at all.
var ErrEmptySchema = schema.ErrEmptySchema
