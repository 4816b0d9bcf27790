package transform

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/weftio/weft/eval"
)

// Func intercepts one expression block: it receives the raw text between
// the delimiters and the render call's context snapshot, and returns the
// value to interpolate. Slice results broadcast across output rows.
type Func func(text string, ctx *eval.Context) (any, error)

// Default returns the default transformer: evaluate the raw text as an
// expression and surface any failure.
func Default() Func {
	return func(text string, ctx *eval.Context) (any, error) {
		return eval.Evaluate(text, ctx)
	}
}

// CollapseMarker is the trailing marker recognized by [Collapse] and
// [Lookup].
const CollapseMarker = "*"

// Collapse returns a transformer that joins sequence results into one
// string. Text ending in the collapse marker has the marker stripped and
// the remainder evaluated; a sequence result is joined with sep, using last
// (when non-empty) before the final element. Text without the marker
// delegates to [Default].
func Collapse(sep, last string) Func {
	return func(text string, ctx *eval.Context) (any, error) {
		trimmed := strings.TrimSpace(text)
		if !strings.HasSuffix(trimmed, CollapseMarker) {
			return eval.Evaluate(text, ctx)
		}

		inner := strings.TrimSuffix(trimmed, CollapseMarker)

		v, err := eval.Evaluate(inner, ctx)
		if err != nil {
			return nil, err
		}

		return eval.Join(v, sep, last, "NA"), nil
	}
}

// ShellQuote returns a transformer that delegates to next (or [Default]
// when nil) and shell-escapes the resulting text so it is safe as a single
// command argument. Sequence results are escaped element-wise.
func ShellQuote(next Func) Func {
	if next == nil {
		next = Default()
	}

	return func(text string, ctx *eval.Context) (any, error) {
		v, err := next(text, ctx)
		if err != nil {
			return nil, err
		}

		if eval.Len(v) == 1 {
			return shellquote.Join(eval.Stringify(eval.Index(v, 0), "NA")), nil
		}

		quoted := make([]string, 0, eval.Len(v))
		for _, s := range eval.StringifyAll(v, "NA") {
			quoted = append(quoted, shellquote.Join(s))
		}

		return quoted, nil
	}
}

// Lookup returns a transformer that substitutes raw text from a fixed
// symbol table instead of evaluating it as code. Text ending in the
// collapse marker matches every symbol with the remaining prefix; the
// results are joined with sep in symbol order. An unmatched symbol is an
// error.
func Lookup(table map[string]string, sep string) Func {
	return func(text string, ctx *eval.Context) (any, error) {
		key := strings.TrimSpace(text)

		if prefix, ok := strings.CutSuffix(key, CollapseMarker); ok {
			matches := make([]string, 0, len(table))

			for name := range table {
				if strings.HasPrefix(name, prefix) {
					matches = append(matches, name)
				}
			}

			if len(matches) == 0 {
				return nil, eval.ErrNoSuchSymbol.
					With(slog.String("symbol", prefix+CollapseMarker))
			}

			sort.Strings(matches)

			values := make([]string, len(matches))
			for i, name := range matches {
				values[i] = table[name]
			}

			return strings.Join(values, sep), nil
		}

		value, ok := table[key]
		if !ok {
			return nil, eval.ErrNoSuchSymbol.
				With(slog.String("symbol", key))
		}

		return value, nil
	}
}

// FormatSpec returns a transformer for "expr:fmt" blocks: the text is split
// at its last unescaped colon, the left side is evaluated by next (or
// [Default] when nil), and the result is formatted with the printf-style
// spec on the right (a missing "%" prefix is supplied). Text without a
// colon delegates unchanged. Sequence results format element-wise.
func FormatSpec(next Func) Func {
	if next == nil {
		next = Default()
	}

	return func(text string, ctx *eval.Context) (any, error) {
		expr, spec, ok := splitFormatSpec(text)
		if !ok {
			return next(text, ctx)
		}

		v, err := next(expr, ctx)
		if err != nil {
			return nil, err
		}

		if !strings.HasPrefix(spec, "%") {
			spec = "%" + spec
		}

		if !eval.IsVector(v) {
			return fmt.Sprintf(spec, v), nil
		}

		out := make([]string, eval.Len(v))
		for i := range out {
			out[i] = fmt.Sprintf(spec, eval.Index(v, i))
		}

		return out, nil
	}
}

// splitFormatSpec splits text at the last colon that is not escaped with a
// backslash. The escape is removed from the expression side.
func splitFormatSpec(text string) (expr, spec string, ok bool) {
	idx := -1

	for i := 0; i < len(text); i++ {
		if text[i] == ':' && (i == 0 || text[i-1] != '\\') {
			idx = i
		}
	}

	if idx < 0 {
		return text, "", false
	}

	expr = strings.ReplaceAll(text[:idx], `\:`, ":")
	spec = strings.TrimSpace(text[idx+1:])

	return strings.TrimSpace(expr), spec, spec != ""
}

// Fallback returns a transformer that evaluates normally but converts any
// evaluation error into the given literal value, so rendering continues.
func Fallback(value any) Func {
	return FallbackFunc(func(*eval.Context) (any, error) {
		return value, nil
	})
}

// FallbackExpr is like [Fallback], except the fallback is itself
// expression text, evaluated lazily and only when the primary expression
// fails.
func FallbackExpr(source string) Func {
	return FallbackFunc(func(ctx *eval.Context) (any, error) {
		return eval.Evaluate(source, ctx)
	})
}

// FallbackFunc returns a transformer whose fallback value is computed by
// fn on demand. Errors from fn itself propagate.
func FallbackFunc(fn func(*eval.Context) (any, error)) Func {
	return func(text string, ctx *eval.Context) (any, error) {
		v, err := eval.Evaluate(text, ctx)
		if err == nil {
			return v, nil
		}

		return fn(ctx)
	}
}

// NameValueMarker is the trailing marker recognized by [NameValue].
const NameValueMarker = "="

// NameValue returns a transformer for debugging output: text ending in "="
// has the marker stripped, the remainder evaluated by next (or [Default]
// when nil), and renders as "<expression text> = <value>". A multi-element
// sequence renders as "[v1, v2, ...]". Text without the marker delegates
// unchanged.
func NameValue(next Func) Func {
	if next == nil {
		next = Default()
	}

	return func(text string, ctx *eval.Context) (any, error) {
		trimmed := strings.TrimSpace(text)

		inner, ok := strings.CutSuffix(trimmed, NameValueMarker)
		if !ok {
			return next(text, ctx)
		}

		inner = strings.TrimSpace(inner)

		v, err := next(inner, ctx)
		if err != nil {
			return nil, err
		}

		rendered := eval.Stringify(eval.Index(v, 0), "NA")
		if eval.Len(v) > 1 {
			rendered = "[" + strings.Join(eval.StringifyAll(v, "NA"), ", ") + "]"
		}

		return inner + " = " + rendered, nil
	}
}
