package template

import "strings"

// Kind discriminates the two segment variants.
type Kind int

const (
	// KindLiteral is plain text copied to the output unchanged.
	KindLiteral Kind = iota

	// KindExpression is text between delimiters, to be evaluated.
	KindExpression
)

// String returns a string representation of the segment kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindExpression:
		return "Expression"
	default:
		return "Unknown"
	}
}

// Segment is one parsed unit of a template.
//
// For literal segments, Text holds the cooked text with delimiter escapes
// resolved. For expression segments, RawText holds the verbatim text between
// the delimiters, including any nested delimiter pairs.
//
// Start and End are byte offsets into [Template.Source] covering the entire
// raw span of the segment, delimiters and escapes included.
type Segment struct {
	Kind    Kind
	Text    string
	RawText string
	Start   int
	End     int
}

// Template is an immutable parsed template.
type Template struct {
	// Source is the prepared input: the raw text after line-continuation
	// joining and whitespace trimming, exactly as the scanner saw it.
	Source string

	// Open and Close are the delimiter strings bounding expression blocks.
	Open  string
	Close string

	// LiteralEscape reports whether quote and comment characters inside
	// expression blocks were treated as ordinary text.
	LiteralEscape bool

	// Segments is the ordered segment sequence. Insertion order is output
	// order.
	Segments []Segment

	trim bool
}

// Reconstruct reassembles the prepared source from the segment spans.
// The result is byte-for-byte identical to [Template.Source].
func (t *Template) Reconstruct() string {
	var sb strings.Builder

	for _, seg := range t.Segments {
		sb.WriteString(t.Source[seg.Start:seg.End])
	}

	return sb.String()
}

// Expressions returns the expression segments in order.
func (t *Template) Expressions() []Segment {
	exprs := make([]Segment, 0, len(t.Segments))

	for _, seg := range t.Segments {
		if seg.Kind == KindExpression {
			exprs = append(exprs, seg)
		}
	}

	return exprs
}

// Option configures template parsing.
type Option func(*Template)

// DefaultOpen and DefaultClose are the delimiters used when none are given.
const (
	DefaultOpen  = "{"
	DefaultClose = "}"
)

// WithDelimiters sets the open and close delimiter strings.
// Empty strings leave the corresponding default in place.
func WithDelimiters(open, close string) Option {
	return func(t *Template) {
		if open != "" {
			t.Open = open
		}

		if close != "" {
			t.Close = close
		}
	}
}

// WithTrim controls whitespace trimming of multi-line templates.
// See [Trim] for the trimming rules. Single-line templates are never
// trimmed.
func WithTrim(enable bool) Option {
	return func(t *Template) {
		t.trim = enable
	}
}

// WithLiteralEscape controls literal-escape mode. When enabled, quote and
// comment characters inside expression blocks are ordinary text (only
// delimiter depth is tracked), and a backslash immediately followed by a
// newline joins the line with the next one before scanning.
func WithLiteralEscape(enable bool) Option {
	return func(t *Template) {
		t.LiteralEscape = enable
	}
}
