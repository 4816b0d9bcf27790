package weft

import (
	"log/slog"
	"strings"

	"github.com/weftio/weft/eval"
	"github.com/weftio/weft/template"
)

// Render parses the template parts against ctx and returns one string per
// broadcast row.
//
// Parts beyond the first are joined with the configured separator (newline
// by default) before parsing, mirroring multi-string call convention. The
// binding context is snapshotted once at call start; a nil ctx is an empty
// context. Each expression block is handed to the call's transformer
// exactly once, and sequence-valued results broadcast across rows.
//
// Errors are either a [*template.ParseError] (malformed template) or the
// error returned by the transformer, typically an [*eval.Error].
func Render(parts []string, ctx *eval.Context, opts ...Option) ([]string, error) {
	o := makeOptions(opts...)

	tmpl, err := parse(parts, o)
	if err != nil {
		return nil, err
	}

	return render(tmpl, ctx, o)
}

// RenderString is [Render] with the output rows joined by newline.
func RenderString(parts []string, ctx *eval.Context, opts ...Option) (string, error) {
	rows, err := Render(parts, ctx, opts...)
	if err != nil {
		return "", err
	}

	return strings.Join(rows, "\n"), nil
}

// parse joins the template parts and parses them with the call's options.
func parse(parts []string, o Options) (*template.Template, error) {
	return template.Parse(
		strings.Join(parts, o.separator),
		template.WithDelimiters(o.open, o.close),
		template.WithLiteralEscape(o.literalEscape),
		template.WithTrim(o.trim),
	)
}

// render evaluates and assembles a parsed template.
func render(tmpl *template.Template, ctx *eval.Context, o Options) ([]string, error) {
	snapshot := ctx.Snapshot()

	// Evaluate each expression block once; broadcasting indexes into the
	// results afterward.
	values := make([]any, len(tmpl.Segments))
	lengths := make([]int, 0, len(tmpl.Segments))

	for i, seg := range tmpl.Segments {
		if seg.Kind != template.KindExpression {
			continue
		}

		v, err := o.transformer(seg.RawText, snapshot)
		if err != nil {
			return nil, err
		}

		values[i] = v
		lengths = append(lengths, eval.Len(v))
	}

	rows, mismatch := broadcastLength(lengths)
	if mismatch {
		o.logger.Warn("sequence lengths are not multiples; recycling",
			slog.Any("lengths", lengths),
			slog.Int("rows", rows),
		)
	}

	out := make([]string, 0, rows)

	for row := 0; row < rows; row++ {
		var sb strings.Builder

		for i, seg := range tmpl.Segments {
			if seg.Kind == template.KindLiteral {
				sb.WriteString(seg.Text)

				continue
			}

			sb.WriteString(eval.Stringify(eval.Index(values[i], row), o.naMarker))
		}

		out = append(out, sb.String())
	}

	return out, nil
}
