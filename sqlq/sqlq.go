// Package sqlq renders templates into SQL with dialect-aware quoting.
//
// It differs from the base entry point only in post-processing: every
// substituted value passes through the quoting rules of a [Quoter] instead
// of plain stringification.
//
//	frag, err := sqlq.Render(
//		[]string{"SELECT * FROM {`tbl`} WHERE id IN ({ids*})"},
//		eval.NewContext(map[string]any{"tbl": "users", "ids": []any{1, 2, 3}}),
//		sqlq.SQLite{},
//	)
//	// SELECT * FROM "users" WHERE id IN (1, 2, 3)
//
// A backtick-wrapped expression requests identifier quoting; a trailing
// "*" collapses a sequence to a comma-joined, individually quoted list
// suitable for IN (...). A [Fragment] interpolated into an outer Render
// call is spliced verbatim, never re-quoted.
//
// Quoting failures (a value of a type the dialect cannot represent) are
// surfaced as errors and are not recoverable: they indicate a
// template/value mismatch the caller must fix.
package sqlq

import (
	"strings"

	"github.com/weftio/weft"
	"github.com/weftio/weft/eval"
	"github.com/weftio/weft/transform"
)

// Fragment is a rendered piece of SQL. It is a distinct marked type so
// that splicing a fragment into an outer query bypasses value quoting.
type Fragment string

// Quoter supplies the identifier and value quoting rules of one SQL
// dialect, typically matching a live connection's backend.
type Quoter interface {
	// QuoteIdentifier quotes a table or column name.
	QuoteIdentifier(name string) (string, error)

	// QuoteValue renders a Go value as a SQL literal.
	QuoteValue(v any) (string, error)
}

// ErrQuote is returned when a value's type has no SQL literal form in the
// target dialect.
var ErrQuote = eval.NewError("unsupported type for SQL quoting")

// Render is the query-construction entry point. Template parts and context
// behave exactly as in [weft.Render]; every substituted value is quoted by
// q. The rendered rows join with newline into a single [Fragment].
func Render(parts []string, ctx *eval.Context, q Quoter, opts ...weft.Option) (Fragment, error) {
	opts = append(opts,
		weft.WithTransformer(Transformer(q)),
		weft.WithNAMarker("NULL"),
	)

	rows, err := weft.Render(parts, ctx, opts...)
	if err != nil {
		return "", err
	}

	return Fragment(strings.Join(rows, "\n")), nil
}

// Transformer returns the quoting transformer used by [Render].
func Transformer(q Quoter) transform.Func {
	return func(text string, ctx *eval.Context) (any, error) {
		trimmed := strings.TrimSpace(text)

		// {`expr`} requests identifier quoting of the evaluated value.
		if inner, ok := cutBackticks(trimmed); ok {
			v, err := eval.Evaluate(inner, ctx)
			if err != nil {
				return nil, err
			}

			return quoteIdentifiers(v, q)
		}

		// {expr*} collapses to a comma-joined quoted list.
		if inner, ok := strings.CutSuffix(trimmed, transform.CollapseMarker); ok {
			v, err := eval.Evaluate(inner, ctx)
			if err != nil {
				return nil, err
			}

			quoted, err := quoteAll(v, q)
			if err != nil {
				return nil, err
			}

			return strings.Join(quoted, ", "), nil
		}

		v, err := eval.Evaluate(trimmed, ctx)
		if err != nil {
			return nil, err
		}

		return quoteValues(v, q)
	}
}

// quoteValue quotes one scalar, splicing fragments verbatim.
func quoteValue(v any, q Quoter) (string, error) {
	if frag, ok := v.(Fragment); ok {
		return string(frag), nil
	}

	return q.QuoteValue(v)
}

// quoteAll quotes every element of a possibly-vector value.
func quoteAll(v any, q Quoter) ([]string, error) {
	n := eval.Len(v)
	out := make([]string, n)

	for i := 0; i < n; i++ {
		s, err := quoteValue(eval.Index(v, i), q)
		if err != nil {
			return nil, err
		}

		out[i] = s
	}

	return out, nil
}

// quoteValues quotes a scalar directly, or element-wise for a vector so
// the quoted elements still broadcast across rows.
func quoteValues(v any, q Quoter) (any, error) {
	if !eval.IsVector(v) {
		return quoteValue(v, q)
	}

	return quoteAll(v, q)
}

// quoteIdentifiers identifier-quotes a scalar name or each name of a
// vector.
func quoteIdentifiers(v any, q Quoter) (any, error) {
	if !eval.IsVector(v) {
		return q.QuoteIdentifier(eval.Stringify(v, ""))
	}

	n := eval.Len(v)
	out := make([]string, n)

	for i := 0; i < n; i++ {
		s, err := q.QuoteIdentifier(eval.Stringify(eval.Index(v, i), ""))
		if err != nil {
			return nil, err
		}

		out[i] = s
	}

	return out, nil
}

// cutBackticks strips one pair of wrapping backticks.
func cutBackticks(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`' {
		return s[1 : len(s)-1], true
	}

	return "", false
}
