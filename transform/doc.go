// Package transform defines the pluggable hook that intercepts expression
// text before evaluation and its result after.
//
// Exactly one transformer governs a render call; it fully replaces default
// evaluation for every expression block in that call. Behaviors do not
// compose automatically: a transformer that only cares about some inputs
// delegates the rest, usually to [Default]. Composition is explicit, as in
// ShellQuote(Collapse(", ", "")).
package transform
