// Package weft interpolates expression blocks embedded in template strings.
//
// A template is literal text with expressions in curly braces (the
// delimiters are configurable). Each expression is evaluated against a
// binding context and its result spliced into the output:
//
//	rows, err := weft.Render(
//		[]string{"My name is {name}."},
//		eval.NewContext(map[string]any{"name": "Fred"}),
//	)
//	// rows == []string{"My name is Fred."}
//
// # Vectorized rendering
//
// Expression results may be sequences. The output row count is the least
// common multiple of all non-unit result lengths; scalars repeat on every
// row and shorter sequences are recycled. Two sequence lengths that are
// not multiples of one another still render, with a warning diagnostic on
// the configured logger. Any empty sequence yields zero rows.
//
// # Transformers
//
// A render call may substitute a single transformer for default
// evaluation; see package transform for the built-in behaviors (collapse,
// shell quoting, symbol lookup, format specs, error fallback, name=value).
// Specialized entry points live in package color (ANSI-styled output) and
// package sqlq (SQL-quoted output).
//
// # Lifecycle
//
// Templates are re-parsed on every call and the binding context is
// snapshotted once at call start. There is no cache: callers that render
// one template repeatedly can parse it themselves with package template
// and key on raw text plus delimiter pair.
package weft
