// Package color renders templates with ANSI-styled expression blocks.
//
// Inside a block, an unprefixed leading word followed by a space names a
// style applied to the rendered remainder of that block. The remainder is
// itself a template, so styles nest:
//
//	color.Render([]string{"{red Hello {bold {name}}}"}, ctx)
//
// Blocks whose first word is not a known style fall through to default
// expression evaluation. Rendering always uses literal-escape mode, so
// unpaired quote and comment characters inside styled text are ordinary
// characters, exactly as in the base entry point with literal escaping.
package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weftio/weft"
	"github.com/weftio/weft/eval"
	"github.com/weftio/weft/transform"
)

// styles maps style names usable in templates to lipgloss styles.
// The color names follow the conventional 16-color terminal palette.
var styles = map[string]lipgloss.Style{
	"black":   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	"red":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"white":   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

	"bg_black":   lipgloss.NewStyle().Background(lipgloss.Color("0")),
	"bg_red":     lipgloss.NewStyle().Background(lipgloss.Color("1")),
	"bg_green":   lipgloss.NewStyle().Background(lipgloss.Color("2")),
	"bg_yellow":  lipgloss.NewStyle().Background(lipgloss.Color("3")),
	"bg_blue":    lipgloss.NewStyle().Background(lipgloss.Color("4")),
	"bg_magenta": lipgloss.NewStyle().Background(lipgloss.Color("5")),
	"bg_cyan":    lipgloss.NewStyle().Background(lipgloss.Color("6")),
	"bg_white":   lipgloss.NewStyle().Background(lipgloss.Color("7")),

	"bold":      lipgloss.NewStyle().Bold(true),
	"faint":     lipgloss.NewStyle().Faint(true),
	"italic":    lipgloss.NewStyle().Italic(true),
	"underline": lipgloss.NewStyle().Underline(true),
	"strike":    lipgloss.NewStyle().Strikethrough(true),
	"reverse":   lipgloss.NewStyle().Reverse(true),
}

// Style looks up a named style.
func Style(name string) (lipgloss.Style, bool) {
	s, ok := styles[name]

	return s, ok
}

// Render is the color-augmented render entry point. It behaves exactly as
// [weft.Render] with literal escaping enabled and [Transformer] active.
func Render(parts []string, ctx *eval.Context, opts ...weft.Option) ([]string, error) {
	opts = append(opts,
		weft.WithLiteralEscape(true),
		weft.WithTransformer(Transformer()),
	)

	return weft.Render(parts, ctx, opts...)
}

// Transformer returns the style-dispatching transformer used by [Render].
// A block whose first space-delimited word names a style has its remainder
// rendered recursively (nested blocks and all) and the style applied to
// the result; anything else evaluates as a normal expression.
func Transformer() transform.Func {
	var fn transform.Func

	fn = func(text string, ctx *eval.Context) (any, error) {
		name, rest, found := strings.Cut(text, " ")
		if !found {
			return eval.Evaluate(text, ctx)
		}

		style, ok := styles[name]
		if !ok {
			return eval.Evaluate(text, ctx)
		}

		rows, err := weft.Render([]string{rest}, ctx,
			weft.WithLiteralEscape(true),
			weft.WithTrim(false),
			weft.WithTransformer(fn),
		)
		if err != nil {
			return nil, err
		}

		styled := make([]string, len(rows))
		for i, row := range rows {
			styled[i] = style.Render(row)
		}

		if len(styled) == 1 {
			return styled[0], nil
		}

		return styled, nil
	}

	return fn
}
