// Package eval bridges raw expression text to the expression-evaluation
// runtime (expr-lang) against a layered binding context.
//
// A [Context] is an explicit ordered chain of lookup layers: named
// arguments first, then any enclosing scopes, then globals. Earlier layers
// shadow later ones. [Context.Snapshot] flattens the chain into a single
// immutable layer so that every row of one render call observes consistent
// values, even when evaluation has side effects that mutate an outer scope.
//
// Evaluation is delegated wholesale to expr-lang and is neither sandboxed
// nor time-limited: expression text may perform arbitrary I/O or mutation,
// and a caller wanting cancellation or timeouts must wrap [Evaluate]
// itself. Results may be scalars or slices; slice results drive vectorized
// rendering.
package eval
