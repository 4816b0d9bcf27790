package weft

import (
	"github.com/weftio/weft/log"
	"github.com/weftio/weft/transform"
)

// DefaultNAMarker is the text rendered for nil values.
const DefaultNAMarker = "NA"

// DefaultSeparator joins multi-part template inputs before parsing.
const DefaultSeparator = "\n"

// Options holds the resolved configuration of one render call.
type Options struct {
	open          string
	close         string
	literalEscape bool
	trim          bool
	transformer   transform.Func
	naMarker      string
	separator     string
	logger        log.Logger
}

// Option configures a render call.
type Option func(*Options)

func makeOptions(opts ...Option) Options {
	o := Options{
		open:      "{",
		close:     "}",
		trim:      true,
		naMarker:  DefaultNAMarker,
		separator: DefaultSeparator,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.transformer == nil {
		o.transformer = transform.Default()
	}

	return o
}

// WithDelimiters sets the open and close delimiter strings bounding
// expression blocks. Empty strings keep the defaults "{" and "}".
func WithDelimiters(open, close string) Option {
	return func(o *Options) {
		if open != "" {
			o.open = open
		}

		if close != "" {
			o.close = close
		}
	}
}

// WithLiteralEscape enables literal-escape mode: quote and comment
// characters inside expression blocks are ordinary text, and
// backslash-newline joins continuation lines before scanning.
func WithLiteralEscape(enable bool) Option {
	return func(o *Options) { o.literalEscape = enable }
}

// WithTrim controls whitespace trimming of multi-line templates.
// Trimming is on by default; see [template.Trim] for the rules.
func WithTrim(enable bool) Option {
	return func(o *Options) { o.trim = enable }
}

// WithTransformer replaces default evaluation for every expression block
// of the call with fn. Passing nil restores the default.
func WithTransformer(fn transform.Func) Option {
	return func(o *Options) { o.transformer = fn }
}

// WithNAMarker sets the text rendered for nil values.
func WithNAMarker(marker string) Option {
	return func(o *Options) { o.naMarker = marker }
}

// WithSeparator sets the string joining multi-part template inputs before
// parsing. The default is a newline.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithLogger supplies the logger that receives diagnostics such as
// broadcast warnings. The default zero-value logger is silent.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) { o.logger = logger }
}
