package eval

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Evaluate compiles source as an expr-lang expression and runs it against
// the flattened binding context. Results may be scalar or slice valued.
//
// Compilation failures (including references to unbound identifiers) and
// runtime failures both return an [*Error] wrapping the underlying cause
// and carrying the source text as a structured attribute. Evaluation is
// intentionally unsandboxed; see the package documentation.
func Evaluate(source string, ctx *Context) (any, error) {
	env := ctx.flatten()

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrCompile.Wrap(err).
			With(slog.String("source", source))
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	return result, nil
}
